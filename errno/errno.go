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

package errno

import (
	"errors"
	"strconv"
	"strings"
	"syscall"

	"dirpx.dev/convention"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

// Entry is one row of the normalization table.
type Entry struct {
	Errno syscall.Errno
	Code  code.Code
}

// ErrUnknownName is returned by Parse for names the platform does not define.
var ErrUnknownName = errors.New("convention: unknown errno name")

// byErrno indexes table. It is written once during initialization.
var byErrno = func() map[syscall.Errno]code.Code {
	m := make(map[syscall.Errno]code.Code, len(table))
	for _, e := range table {
		m[e.Errno] = e.Code
	}
	return m
}()

// Normalize maps a platform errno to the negated project code.
//
// 0 yields 0. A value the table does not know is returned negated (-p).
func Normalize(p int) int {
	if p == 0 {
		return 0
	}
	if c, ok := Lookup(p); ok {
		return c.Return()
	}
	return -p
}

// Lookup probes the table without the fallback. 0 resolves to code.OK.
func Lookup(p int) (code.Code, bool) {
	if p == 0 {
		return code.OK, true
	}
	c, ok := byErrno[syscall.Errno(p)]
	return c, ok
}

// Table returns a copy of the table in declaration order.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Name returns the platform symbolic name of e, e.g. "EACCES". Values the
// platform does not name render as "errno(<n>)".
func Name(e syscall.Errno) string {
	if n := platformName(e); n != "" {
		return n
	}
	return "errno(" + strconv.Itoa(int(e)) + ")"
}

// Parse accepts a platform name ("EACCES", "eacces") or a decimal value.
func Parse(s string) (syscall.Errno, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			n = -n
		}
		return syscall.Errno(n), nil
	}
	if e, ok := byName()[strings.ToUpper(s)]; ok {
		return e, nil
	}
	return 0, ErrUnknownName
}

// FromError finds a syscall.Errno in the chain of err and normalizes it.
// A nil err yields (0, true); a chain without an errno yields (0, false).
func FromError(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var en syscall.Errno
	if !errors.As(err, &en) {
		return 0, false
	}
	return Normalize(int(en)), true
}

// Wrap builds a *convention.Error from the errno found in err.
//
// The code is the mapped project code, the reason is "errno.<name>" and err
// is kept as the cause. An errno the table does not know keeps its raw value
// as the code, so Return() still yields -p. A chain without any errno is
// reported as EHAL_ERROR, and so is errno 0: an error never carries EOK.
// A nil err yields nil.
func Wrap(err error, msg string) *convention.Error {
	if err == nil {
		return nil
	}
	var en syscall.Errno
	if !errors.As(err, &en) || en == 0 {
		return convention.E(code.HALError, msg, convention.WithCauseOption(err))
	}
	c, ok := Lookup(int(en))
	if !ok {
		c = code.Code(en)
	}
	e := convention.E(c, msg,
		convention.WithCauseOption(err),
		convention.WithDetailOption("errno", int(en)),
	)
	if r, rerr := reason.Join("errno", platformName(en)); rerr == nil && r != reason.Empty {
		e = e.WithReason(r)
	}
	return e
}

// From coerces any error into a *convention.Error. An existing
// *convention.Error in the chain is returned as is, an errno goes through
// Wrap, anything else becomes EHAL_ERROR with err as the cause.
func From(err error) *convention.Error {
	if err == nil {
		return nil
	}
	var ce *convention.Error
	if errors.As(err, &ce) {
		return ce
	}
	return Wrap(err, err.Error())
}
