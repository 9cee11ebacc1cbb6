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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
)

// Option configures a mapper before it is frozen by New.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, g codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = g }
}

// WithHTTPOverride pins the HTTP status of c regardless of the reason.
// Overrides win over every other rule.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.override[c] = status }
}

// WithGRPCOverride pins the gRPC code of c regardless of the reason.
func WithGRPCOverride(c code.Code, g codes.Code) Option {
	return func(b *builder) { b.grpc.override[c] = g }
}

// WithHTTPPrefix adds a reason-prefix rule for c. The longest matching
// prefix wins; "*" matches one segment.
//
//	WithHTTPPrefix(code.CommConDenied, "errno.econnrefused", 503)
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) { b.http.addPrefix(c, prefix, status) }
}

// WithGRPCPrefix adds a reason-prefix rule for c.
func WithGRPCPrefix(c code.Code, prefix string, g codes.Code) Option {
	return func(b *builder) { b.grpc.addPrefix(c, prefix, g) }
}

// WithBandHTTP replaces the HTTP status used for codes of band bd that have
// no default of their own.
func WithBandHTTP(bd code.Band, status int) Option {
	return func(b *builder) { b.http.bands[bd] = status }
}

// WithBandGRPC replaces the gRPC code used for codes of band bd that have
// no default of their own.
func WithBandGRPC(bd code.Band, g codes.Code) Option {
	return func(b *builder) { b.grpc.bands[bd] = g }
}
