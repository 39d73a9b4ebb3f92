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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingArgument(t *testing.T) {
	err := MissingArgument("Success", "data")

	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), "Success requires data")
	assert.True(t, IsUsageError(err))
}

func TestIsUsageError_Tiers(t *testing.T) {
	assert.False(t, IsUsageError(nil))
	assert.False(t, IsUsageError("Success requires data"))
	assert.False(t, IsUsageError(ErrMissingArgument), "sentinel alone is not an assertion failure")

	var forwarded error
	Forward(FromArguments(map[string]any{"status": "fail"}, nil), func(err error, _ any) { forwarded = err })
	assert.False(t, IsUsageError(forwarded), "normalization fallbacks are never usage errors")
}
