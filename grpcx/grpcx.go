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
	"errors"
	"strconv"
	"syscall"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"dirpx.dev/convention"
	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/errno"
	"dirpx.dev/convention/internal/metrics"
)

// Domain is the ErrorInfo domain of every status built here.
const Domain = "convention.dirpx.dev"

// CorrelationHeader is the incoming metadata key read for correlation ids.
const CorrelationHeader = "x-correlation-id"

// ErrorInfo metadata keys.
const (
	KeyCode        = "code"
	KeyReturn      = "return"
	KeyReason      = "reason"
	KeyCorrelation = "correlation_id"
)

// Meta holds request-scoped extras added to the ErrorInfo metadata.
type Meta struct {
	CorrelationID string
	Tags          map[string]string
}

// MetaFn extracts Meta for a failed call. It may return the zero Meta.
type MetaFn func(ctx context.Context, e *convention.Error) Meta

// UnaryServerInterceptor maps handler errors through m.
//
// A *convention.Error anywhere in the chain is converted; a bare errno is
// first normalized with errno.Wrap. Other errors pass through untouched.
// When metaFn yields no correlation id, the incoming x-correlation-id
// metadata is used.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		e := convert(err)
		if e == nil {
			return nil, err
		}

		var meta Meta
		if metaFn != nil {
			meta = metaFn(ctx, e)
		}
		if meta.CorrelationID == "" {
			meta.CorrelationID = incomingCorrelation(ctx)
		}

		metrics.ObserveError(metrics.TransportGRPC, e.Code)
		return nil, Status(m, e, meta).Err()
	}
}

// convert never yields code.OK: a failing handler must not reach the client
// as a success.
func convert(err error) *convention.Error {
	var ce *convention.Error
	if errors.As(err, &ce) {
		if ce.Code == code.OK {
			return convention.E(code.HALError, ce.Message, convention.WithCauseOption(err))
		}
		return ce
	}
	var en syscall.Errno
	if errors.As(err, &en) {
		return errno.Wrap(err, err.Error())
	}
	return nil
}

func incomingCorrelation(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(CorrelationHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}

// Status builds the gRPC status of e. If the details cannot be attached the
// bare status is returned.
func Status(m apis.Mapper, e *convention.Error, meta Meta) *status.Status {
	st := status.New(m.GRPCStatus(e.Code, e.Reason), e.Message)

	md := make(map[string]string, len(meta.Tags)+4)
	for k, v := range meta.Tags {
		md[k] = v
	}
	md[KeyCode] = strconv.Itoa(int(e.Code))
	md[KeyReturn] = strconv.Itoa(e.Return())
	if e.Reason != "" {
		md[KeyReason] = e.Reason.String()
	}
	if meta.CorrelationID != "" {
		md[KeyCorrelation] = meta.CorrelationID
	}

	withInfo, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   e.Code.String(),
		Domain:   Domain,
		Metadata: md,
	})
	if err != nil {
		return st
	}
	return withInfo
}

// ExtractInfo returns the ErrorInfo of this package's domain carried by err.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FromStatus rebuilds the *convention.Error carried by a gRPC error. It
// reports false when err holds no ErrorInfo of this domain.
func FromStatus(err error) (*convention.Error, bool) {
	info, ok := ExtractInfo(err)
	if !ok {
		return nil, false
	}
	md := info.GetMetadata()

	c, perr := code.Parse(info.GetReason())
	if perr != nil {
		// Unmapped errno values travel as CODE(n); the numeric key still
		// carries them.
		n, aerr := strconv.Atoi(md[KeyCode])
		if aerr != nil {
			return nil, false
		}
		c = code.Code(n)
	}

	st, _ := status.FromError(err)
	e := convention.E(c, st.Message(), convention.WithReasonOption(md[KeyReason]))
	if id := md[KeyCorrelation]; id != "" {
		e = e.WithDetail(KeyCorrelation, id)
	}
	return e, true
}
