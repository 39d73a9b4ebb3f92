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
	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingArgument marks programmer errors raised by convenience
	// shortcuts called without their required argument. It is never produced
	// by normalization, which is total.
	ErrMissingArgument = errors.New("jsend: missing required argument")
)

// MissingArgument returns the usage error for op called without arg. The
// error is an assertion failure carrying a stack trace and wraps
// ErrMissingArgument. Callers are expected to panic with it.
func MissingArgument(op, arg string) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrMissingArgument, "%s requires %s", op, arg))
}

// IsUsageError reports whether v (typically a recovered panic value) is a
// usage error returned by MissingArgument.
func IsUsageError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return errors.IsAssertionFailure(err) && errors.Is(err, ErrMissingArgument)
}
