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
	"reflect"

	"dirpx.dev/jsend/apis"
	"dirpx.dev/jsend/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// AsMap returns the object-like view of v the way the Validator and
// Normalizer see it, or false when v is not a mapping. Any map with string
// keys counts as a mapping; other maps and structs do not. The returned map must
// be treated as read-only.
func AsMap(v any) (map[string]any, bool) {
	return fieldsOf(v)
}

// fieldsOf returns the object-like view of v, or false when v is not a
// mapping. Recognised mappings are Envelope, *Envelope, *structpb.Struct,
// any apis.FieldsProvider and any non-nil map with string keys.
//
// The returned map must be treated as read-only.
func fieldsOf(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, m != nil
	case Envelope:
		return m.Map(), true
	case *Envelope:
		if m == nil {
			return nil, false
		}
		return m.Map(), true
	case *structpb.Struct:
		if m == nil {
			return nil, false
		}
		return m.AsMap(), true
	case apis.FieldsProvider:
		if isNil(m) {
			return nil, false
		}
		f := m.Fields()
		return f, f != nil
	}
	return stringMap(v)
}

// stringMap copies a map with string-kinded keys into a map[string]any.
func stringMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// statusOf returns the status of a mapping without normalizing it.
// Anything but an exact variant name yields status.Empty.
func statusOf(m map[string]any) status.Status {
	var st status.Status
	switch s := m["status"].(type) {
	case string:
		st = status.Status(s)
	case status.Status:
		st = s
	default:
		return status.Empty
	}
	if !st.Valid() {
		return status.Empty
	}
	return st
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
