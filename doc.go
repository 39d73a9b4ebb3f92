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

// Package jsend standardizes ad-hoc application outputs into the jsend
// response envelope and validates that envelopes conform to its shape.
//
// An envelope is one of three variants, selected by its "status":
//
//	{"status": "success", "data": <any>}
//	{"status": "fail",    "data": <any>}
//	{"status": "error",   "message": <string>, "code": <any>?, "data": <any>?}
//
// Three pure components make up the package:
//
//   - Validator reports whether an object-like value is a valid envelope;
//   - Normalizer turns an (error, data) argument pair of arbitrary shape into
//     a valid Envelope, never failing;
//   - Forward decomposes an Envelope back into an (error, data) pair for
//     callback-style consumers.
//
// Components are configured once at construction with functional options
// (see WithStrict) and never change afterwards, so instances with different
// policies can coexist and be shared between goroutines.
//
// Transports live in subpackages: httpx installs a per-request Responder on
// net/http handlers, grpcx carries error envelopes as gRPC status details.
package jsend
