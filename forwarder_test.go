/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package jsend

import (
	"errors"
	"testing"

	"dirpx.dev/jsend/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	n    int
	err  error
	data any
}

func (c *call) sink(err error, data any) {
	c.n++
	c.err = err
	c.data = data
}

func TestForward_Success(t *testing.T) {
	for _, data := range []any{map[string]any{"foo": "bar"}, []any{1, 2, 3}, "you got it", 123, nil} {
		var c call
		Forward(Success(data), c.sink)

		require.Equal(t, 1, c.n)
		assert.NoError(t, c.err)
		assert.Equal(t, data, c.data)
	}
}

func TestForward_Fail(t *testing.T) {
	var c call
	data := map[string]any{"validation": false}
	Forward(Fail(data), c.sink)

	require.Equal(t, 1, c.n)
	require.Error(t, c.err)
	assert.ErrorIs(t, c.err, ErrFail)
	assert.Equal(t, "fail", c.err.Error())
	assert.Equal(t, data, c.data)
}

func TestForward_Error(t *testing.T) {
	tests := []struct {
		name     string
		env      Envelope
		wantCode any
		hasCode  bool
		wantData any
	}{
		{"message only", Error("something bad"), nil, false, nil},
		{"with code", Error("something bad", WithCode(123)), 123, true, nil},
		{"with code and data", Error("something bad", WithCode(123), WithData(map[string]any{"foo": "bar"})), 123, true, map[string]any{"foo": "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c call
			Forward(tt.env, c.sink)

			require.Equal(t, 1, c.n)
			var fe *ForwardError
			require.True(t, errors.As(c.err, &fe))
			assert.Equal(t, "something bad", fe.Message)
			assert.Equal(t, status.Error, fe.Status)
			assert.Equal(t, tt.hasCode, fe.HasCode)
			assert.Equal(t, tt.wantCode, fe.Code)
			assert.Equal(t, tt.wantCode, fe.ErrorCode())
			assert.NotErrorIs(t, c.err, ErrFail)
			assert.Equal(t, tt.wantData, c.data)
		})
	}
}

func TestForward_ZeroEnvelope(t *testing.T) {
	var c call
	Forward(Envelope{}, c.sink)

	require.Equal(t, 1, c.n)
	require.Error(t, c.err)
	assert.Equal(t, UnknownErrorMessage, c.err.Error())
	assert.Nil(t, c.data)
}

func TestForward_NilSink(t *testing.T) {
	assert.NotPanics(t, func() { Forward(Success(1), nil) })
}

func TestNormalizer_Forward(t *testing.T) {
	var c call
	NewNormalizer().Forward(nil, "payload", c.sink)
	assert.NoError(t, c.err)
	assert.Equal(t, "payload", c.data)

	NewNormalizer().Forward("broken", "payload", c.sink)
	require.Error(t, c.err)
	assert.Equal(t, "broken", c.err.Error())
	assert.Nil(t, c.data)
	assert.Equal(t, 2, c.n)
}
