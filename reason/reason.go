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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason refines a project code with the place or platform condition that
// produced it.
//
// Reasons are dot-separated identifiers of one to four segments:
//
//   - "errno.eacces"       (platform errno that was normalized)
//   - "socket.bind"        (call site inside an OS-abstraction layer)
//   - "alloc.mmap"         (allocator back end)
//   - "ioctl.storage.read" (driver command family)
//
// Several platform errors share one project code (ECONNRESET and
// ECONNREFUSED both become ECOMM_CONDENIED); the reason is where the
// distinction survives.
type Reason string

const (
	// MinLength is the minimum length of a non-empty reason.
	MinLength = 3

	// MaxLength is the maximum length of a reason.
	MaxLength = 128

	// MaxSegments is the maximum number of dot-separated segments.
	MaxSegments = 4
)

// reasonFmt accepts 1..4 segments of [a-z][a-z0-9_]*. The repetition bound
// is MaxSegments-1.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match the
	// segment grammar.
	ErrReasonInvalidFormat = errors.New("convention: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("convention: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason". It is always valid.
var Empty Reason = ""

// Normalize lower-cases s, trims it, and maps '/' to '.' and '-' to '_'.
// The result still has to be validated.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse panics when s is invalid or empty.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("convention: empty reason in MustParse")
	}
	return r
}

// Join builds a reason from individual segments, normalizing each one.
//
//	reason.Join("errno", "EACCES") == "errno.eacces"
func Join(segs ...string) (Reason, error) {
	return Parse(strings.Join(segs, "."))
}

// Validate checks r. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r into its segments. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether r starts with the segments of p. Matching is
// segment-aligned: "errno.e" is not a prefix of "errno.eacces".
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	s, ps := string(r), string(p)
	if !strings.HasPrefix(s, ps) {
		return false
	}
	return len(s) == len(ps) || s[len(ps)] == '.'
}

// String returns r as a plain string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
