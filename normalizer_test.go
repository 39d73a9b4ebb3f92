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
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct {
	msg  string
	code any
}

func (e codedErr) Error() string  { return e.msg }
func (e codedErr) ErrorCode() any { return e.code }

func TestFromArguments_Success(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"object data", map[string]any{"foo": "bar"}},
		{"array data", []any{1, 2, 3}},
		{"string data", "you got it"},
		{"numeric data", 123},
		{"null data", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromArguments(nil, tt.data)
			assert.Equal(t, map[string]any{"status": "success", "data": tt.data}, got.Map())
			assert.True(t, IsValid(got))
		})
	}
}

func TestFromArguments_FalsyErrors(t *testing.T) {
	for name, errArg := range map[string]any{
		"nil":            nil,
		"false":          false,
		"empty string":   "",
		"typed nil":      (*codedErr)(nil),
		"nil error":      error(nil),
		"nil map":        map[string]any(nil),
		"zero envelope":  Envelope{},
		"nil envelope":   (*Envelope)(nil),
		"zero env value": &Envelope{},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Success("d"), FromArguments(errArg, "d"))
		})
	}
}

func TestFromArguments_ErrorMessage(t *testing.T) {
	got := FromArguments("something bad", map[string]any{"ignored": true})
	assert.Equal(t, map[string]any{"status": "error", "message": "something bad"}, got.Map())
}

func TestFromArguments_StackError(t *testing.T) {
	got := FromArguments(errors.New("something bad"), nil)

	assert.Equal(t, "something bad", got.Message())
	data, ok := got.Data()
	require.True(t, ok)
	m, ok := data.(map[string]any)
	require.True(t, ok)
	stack, ok := m["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "something bad")
	assert.Contains(t, stack, "TestFromArguments_StackError")
	assert.Equal(t, "error", got.Status().String())
}

func TestFromArguments_WrappedStackError(t *testing.T) {
	inner := errors.New("disk full")
	got := FromArguments(fmt.Errorf("save: %w", inner), nil)

	assert.Equal(t, "save: disk full", got.Message())
	data, ok := got.Data()
	require.True(t, ok)
	assert.Contains(t, data.(map[string]any)["stack"], "disk full")
}

func TestFromArguments_PlainError(t *testing.T) {
	got := FromArguments(stderrors.New("plain"), "ignored")
	assert.Equal(t, map[string]any{"status": "error", "message": "plain"}, got.Map())

	got = FromArguments(codedErr{msg: "coded", code: 409}, nil)
	assert.Equal(t, map[string]any{"status": "error", "message": "coded", "code": 409}, got.Map())

	got = FromArguments(stderrors.New(""), nil)
	assert.Equal(t, UnknownErrorMessage, got.Message())
}

func TestFromArguments_Envelopes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want map[string]any
	}{
		{
			"error passthrough",
			map[string]any{"status": "error", "message": "something bad"},
			map[string]any{"status": "error", "message": "something bad"},
		},
		{
			"error passthrough with code and data",
			map[string]any{"status": "error", "message": "m", "code": 123, "data": []any{1}},
			map[string]any{"status": "error", "message": "m", "code": 123, "data": []any{1}},
		},
		{
			"fail degrades",
			map[string]any{"status": "fail", "data": map[string]any{"something": "bad"}},
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"fail preserves message",
			map[string]any{"status": "fail", "data": map[string]any{"something": "bad"}, "message": "Really bad!"},
			map[string]any{"status": "error", "message": "Really bad!"},
		},
		{
			"success degrades",
			map[string]any{"status": "success", "data": map[string]any{"something": "bad"}},
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"error without message degrades",
			map[string]any{"status": "error", "data": 1},
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"plain object with message",
			map[string]any{"message": "nope"},
			map[string]any{"status": "error", "message": "nope"},
		},
		{
			"plain object with empty message",
			map[string]any{"message": ""},
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"string map with message",
			map[string]string{"message": "x"},
			map[string]any{"status": "error", "message": "x"},
		},
		{
			"string map error passthrough",
			map[string]string{"status": "error", "message": "m"},
			map[string]any{"status": "error", "message": "m"},
		},
		{
			"plain object",
			map[string]any{"reason": "x"},
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"envelope value error",
			Error("typed", WithCode("E42")),
			map[string]any{"status": "error", "message": "typed", "code": "E42"},
		},
		{
			"envelope value fail",
			Fail(map[string]any{"field": "required"}),
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"envelope pointer success",
			ptr(Success(1)),
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"number",
			42,
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
		{
			"true",
			true,
			map[string]any{"status": "error", "message": UnknownErrorMessage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromArguments(tt.in, "data is ignored")
			assert.Equal(t, tt.want, got.Map())
			assert.True(t, IsValid(got))
		})
	}
}

func TestFromArguments_StrictPolicy(t *testing.T) {
	in := map[string]any{"status": "error", "message": 42, "code": 7}

	lax := NewNormalizer().FromArguments(in, nil)
	assert.Equal(t, map[string]any{"status": "error", "message": "42", "code": 7}, lax.Map())

	strict := NewNormalizer(WithStrict(true)).FromArguments(in, nil)
	assert.Equal(t, map[string]any{"status": "error", "message": UnknownErrorMessage}, strict.Map())
	assert.True(t, NewNormalizer(WithStrict(true)).Validator().IsValid(strict))
}

func TestFromArguments_Idempotent(t *testing.T) {
	err := errors.New("boom")
	inputs := [][2]any{
		{nil, map[string]any{"a": 1}},
		{"msg", nil},
		{err, nil},
		{map[string]any{"status": "fail", "data": 1, "message": "m"}, nil},
	}
	for _, in := range inputs {
		assert.Equal(t, FromArguments(in[0], in[1]), FromArguments(in[0], in[1]))
	}
}

func TestFromArguments_ForwardErrorRoundTrip(t *testing.T) {
	var got error
	Forward(Error("m", WithCode(123)), func(err error, _ any) { got = err })

	env := FromArguments(got, nil)
	assert.Equal(t, Error("m", WithCode(123)), env)
}
