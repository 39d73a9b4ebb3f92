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

package grpcx

import (
	"context"

	"dirpx.dev/jsend"
	"dirpx.dev/jsend/adapter"
	"dirpx.dev/jsend/apis"
	"dirpx.dev/jsend/status"
	logging "github.com/ipfs/go-log/v2"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var log = logging.Logger("jsend/grpcx")

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors into "error" envelopes using n. A nil normalizer selects the
// default policy.
//
// Errors that already carry a gRPC status (status.FromError succeeds) are
// returned unchanged. Everything else becomes a codes.Unknown status whose
// message is the envelope message and whose details hold the envelope.
func UnaryServerInterceptor(n *jsend.Normalizer) grpc.UnaryServerInterceptor {
	if n == nil {
		n = jsend.NewNormalizer()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		env := n.FromArguments(err, nil)
		if env.Status() != status.Error {
			// typed nil error
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			return nil, err
		}
		return nil, Status(env).Err()
	}
}

// Status converts env into a gRPC status. "success" maps to codes.OK; the
// other variants map to codes.Unknown with the envelope attached as a
// google.protobuf.Struct detail.
func Status(env jsend.Envelope) *gstatus.Status {
	switch env.Status() {
	case status.Success:
		return gstatus.New(gcodes.OK, "")
	case status.Fail:
		return withEnvelope(gstatus.New(gcodes.Unknown, string(status.Fail)), env)
	default:
		if env.IsZero() {
			env = jsend.Error(jsend.UnknownErrorMessage)
		}
		return withEnvelope(gstatus.New(gcodes.Unknown, env.Message()), env)
	}
}

func withEnvelope(st *gstatus.Status, env jsend.Envelope) *gstatus.Status {
	s, err := adapter.ToStruct(env)
	if err != nil {
		log.Debugw("cannot convert jsend envelope, sending bare status", "error", err)
		return st
	}
	with, err := st.WithDetails(s)
	if err != nil {
		log.Debugw("cannot attach jsend envelope to status", "error", err)
		return st
	}
	return with
}

// ExtractEnvelope pulls a jsend envelope out of a gRPC error, if present.
func ExtractEnvelope(err error) (jsend.Envelope, bool) {
	if err == nil {
		return jsend.Envelope{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return jsend.Envelope{}, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		if env, err := adapter.FromStruct(s); err == nil {
			return env, true
		}
	}
	return jsend.Envelope{}, false
}

// Forward decomposes the result of a unary call into sink:
//
//   - no error: sink(nil, resp);
//   - an error carrying an envelope: jsend.Forward of that envelope;
//   - any other error: an "error" envelope with the status message and the
//     status code name as its code.
func Forward(resp any, err error, sink apis.Sink) {
	if err == nil {
		jsend.Forward(jsend.Success(resp), sink)
		return
	}
	if env, ok := ExtractEnvelope(err); ok {
		jsend.Forward(env, sink)
		return
	}
	st := gstatus.Convert(err)
	jsend.Forward(jsend.Error(st.Message(), jsend.WithCode(st.Code().String())), sink)
}
