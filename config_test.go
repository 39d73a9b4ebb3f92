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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte("strict: true\n"))
	require.NoError(t, err)
	assert.True(t, c.Strict)

	c, err = ParseConfig([]byte(`{"strict": false}`))
	require.NoError(t, err)
	assert.False(t, c.Strict)

	c, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = ParseConfig([]byte("strict: true\nverbose: 1\n"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("strict: [\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsend.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, NewValidator(c.Options()...).Strict())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
