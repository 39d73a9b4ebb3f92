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

// Package httpx installs jsend on net/http handlers.
//
// Middleware attaches a Responder to every request context. Handlers then
// reply with one of:
//
//	httpx.FromContext(r.Context()).Send(err, data)   // normalized
//	httpx.FromContext(r.Context()).Success(data)
//	httpx.FromContext(r.Context()).Fail(map[string]any{"title": "required"})
//	httpx.FromContext(r.Context()).Error(err)
//
// Send never panics: any (error, data) pair becomes a valid envelope. The
// Success, Fail and Error shortcuts panic with a jsend usage error when their
// required argument is missing, because that is an integration bug rather
// than a runtime condition (see jsend.IsUsageError).
//
// Every envelope is written with HTTP 200 and Content-Type application/json;
// the envelope itself carries the outcome.
package httpx
