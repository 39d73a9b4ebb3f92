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

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/jsend"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrNilStruct is returned when a nil *structpb.Struct is converted.
var ErrNilStruct = errors.New("jsend: nil struct")

// ToStruct converts an envelope into a google.protobuf.Struct carrying the
// wire shape.
//
// Payloads are first rendered through encoding/json, so any value that can be
// marshaled to JSON (structs with tags included) survives the conversion.
// Numbers become float64, as everywhere in google.protobuf.Value.
func ToStruct(e jsend.Envelope) (*structpb.Struct, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("jsend: convert envelope to struct: %w", err)
	}
	return s, nil
}

// FromStruct validates s under the policy selected by opts and converts it
// back into an envelope.
func FromStruct(s *structpb.Struct, opts ...jsend.Option) (jsend.Envelope, error) {
	if s == nil {
		return jsend.Envelope{}, ErrNilStruct
	}
	return jsend.NewValidator(opts...).Parse(s)
}

// ToAny packs the envelope as an anypb.Any holding a google.protobuf.Struct.
// This is the form used for gRPC status details.
func ToAny(e jsend.Envelope) (*anypb.Any, error) {
	s, err := ToStruct(e)
	if err != nil {
		return nil, err
	}
	return anypb.New(s)
}

// MarshalProtoJSON renders the envelope through protojson. The output is the
// same wire shape that json.Marshal produces, with protobuf's canonical
// number formatting.
func MarshalProtoJSON(e jsend.Envelope) ([]byte, error) {
	s, err := ToStruct(e)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{EmitUnpopulated: true}.Marshal(s)
}
