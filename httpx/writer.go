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

package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/jsend"
	"dirpx.dev/jsend/adapter"
)

// Writer serializes envelopes into HTTP responses.
type Writer struct {
	// ProtoJSON selects protojson (through google.protobuf.Struct) instead of
	// encoding/json for the body.
	ProtoJSON bool
}

// Encode returns the body for env without writing anything.
func (w Writer) Encode(env jsend.Envelope) ([]byte, error) {
	if w.ProtoJSON {
		return adapter.MarshalProtoJSON(env)
	}
	return json.Marshal(env)
}

// Write serializes env and writes it to rw with HTTP 200.
//
// Nothing is written when encoding fails, so the caller can still produce
// another response.
func (w Writer) Write(rw http.ResponseWriter, env jsend.Envelope) error {
	b, err := w.Encode(env)
	if err != nil {
		return err
	}
	return writeBody(rw, b)
}

func writeBody(rw http.ResponseWriter, b []byte) error {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, err := rw.Write(b)
	return err
}
