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

package convention

import "dirpx.dev/convention/reason"

// Option transforms an *Error under construction. Used with E.
type Option func(*Error) *Error

// WithReasonOption sets the reason. Invalid reasons are dropped so that
// construction never fails.
func WithReasonOption(r string) Option {
	return func(e *Error) *Error {
		parsed, err := reason.Parse(r)
		if err != nil {
			return e
		}
		return e.WithReason(parsed)
	}
}

// WithDetailOption adds a single detail.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithDetail(k, v)
	}
}

// WithDetailsOption merges several details.
func WithDetailsOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithDetails(kv)
	}
}

// WithCauseOption attaches a cause.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
