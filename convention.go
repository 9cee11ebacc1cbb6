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

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

// Error is a failure classified by a project code.
//
// It carries:
//   - Code: the project code (required, never code.OK);
//   - Reason: optional dotted refinement, e.g. "errno.econnreset";
//   - Message: human-oriented description;
//   - Details: flat key/value payload for logs and transport views;
//   - Cause: the wrapped underlying error, typically a syscall.Errno.
//
// All WithX helpers return a shallow copy, so an *Error can be shared across
// goroutines and refined in a functional style.
type Error struct {
	Code    code.Code
	Reason  reason.Reason
	Message string
	Details map[string]any
	Cause   error
}

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
)

// E builds a new Error and applies opts in order.
//
//	return convention.E(code.CommConDenied, "peer refused",
//	    convention.WithReasonOption("socket.connect"),
//	    convention.WithCauseOption(err),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements error.
//
// The format is "<NAME>(<value>): <message>", or with a reason
// "<NAME>(<value>):<reason>: <message>", e.g.
//
//	ESTD_ACCES(-1013):errno.eacces: open /dev/js0
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != reason.Empty {
		return fmt.Sprintf("%s(%d):%s: %s", e.Code, e.Code.Return(), e.Reason, e.Message)
	}
	return fmt.Sprintf("%s(%d): %s", e.Code, e.Code.Return(), e.Message)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code. A target with a
// reason must also match the reason.
//
//	errors.Is(err, convention.E(code.StdAcces, ""))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Reason == reason.Empty || t.Reason == e.Reason
}

// Return is the C-style return value of e: the negated code.
func (e *Error) Return() int {
	if e == nil {
		return 0
	}
	return e.Code.Return()
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.Code { return e.Code }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() reason.Reason { return e.Reason }

// ErrorDetails implements apis.DetailedError. Keys are sorted so views are
// stable.
func (e *Error) ErrorDetails() []apis.Detail {
	if len(e.Details) == 0 {
		return nil
	}
	out := make([]apis.Detail, 0, len(e.Details))
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, apis.Detail{Key: k, Value: fmt.Sprint(e.Details[k])})
	}
	return out
}

// WithReason returns a copy of e with r set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with msg as the message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a copy of e with one more detail. The details map is
// always copied.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a copy of e with kv merged into its details; kv wins on
// conflicts. An empty kv returns e unchanged.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CodeOf finds the project code of err. A nil err yields (code.OK, true).
// It reports false when nothing in the chain implements apis.CodedError.
func CodeOf(err error) (code.Code, bool) {
	if err == nil {
		return code.OK, true
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode(), true
	}
	return code.OK, false
}

// ReturnOf is the C-style return value of err: 0 for nil, the negated project
// code when the chain carries one, and the negated EHAL_ERROR otherwise.
func ReturnOf(err error) int {
	c, ok := CodeOf(err)
	if !ok {
		return code.HALError.Return()
	}
	return c.Return()
}
