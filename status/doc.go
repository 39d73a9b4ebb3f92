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

// Package status provides parsing, normalization and validation for the
// discriminator of a jsend envelope.
//
// A "status" selects which of the three envelope variants a response is:
//
//   - "success": the call worked, "data" carries the result;
//   - "fail":    the call was rejected for an expected reason (validation,
//     precondition), "data" explains why;
//   - "error":   the call failed while processing, "message" explains why.
//
// IMPORTANT: no other value is a valid status. The empty status ("") means
// "not provided" and is rejected by Validate.
package status
