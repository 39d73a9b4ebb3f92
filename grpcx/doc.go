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

// Package grpcx carries jsend envelopes over gRPC.
//
// On the server, UnaryServerInterceptor normalizes plain handler errors into
// "error" envelopes and attaches them to the returned status as a
// google.protobuf.Struct detail. Errors that already carry a gRPC status are
// left alone.
//
// On the client, ExtractEnvelope recovers the envelope from a call error and
// Forward decomposes a unary call result into the (error, data) convention
// of jsend.Forward.
package grpcx
