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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Code is a project error code.
//
// The value is stored positive (e.g. 1013 for ESTD_ACCES). Functions that
// follow the C-style "negative on failure" convention return it negated, see
// Return and FromReturn.
//
// It is defined as a separate type (not just int) so that other packages can
// state that they expect a project code and not a raw platform errno.
type Code int32

// Band is the hundreds-range a code belongs to.
type Band int32

// Known bands. BandNone is returned for OK and for values outside every band.
const (
	BandNone Band = 0
	BandStd  Band = 1000 // generic standard errors
	BandPar  Band = 1100 // parameter errors
	BandExec Band = 1200 // execution errors
	BandPerm Band = 1600 // permission errors
	BandComm Band = 1700 // communication errors
	BandList Band = 1800 // list errors
	BandHAL  Band = 1900 // hardware abstraction errors
)

var bandNames = map[Band]string{
	BandNone: "none",
	BandStd:  "std",
	BandPar:  "par",
	BandExec: "exec",
	BandPerm: "perm",
	BandComm: "comm",
	BandList: "list",
	BandHAL:  "hal",
}

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a project
	// code, or when a value is not part of the known code set.
	ErrCodeInvalid = errors.New("convention: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config files and JSON/YAML documents.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// byName is the reverse of names (plus aliases), built once.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names)+len(aliases))
	for c, n := range names {
		m[n] = c
	}
	for n, c := range aliases {
		m[n] = c
	}
	return m
}()

// String returns the symbolic name, e.g. "ESTD_ACCES". Codes outside the
// known set render as "CODE(<n>)".
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "CODE(" + strconv.Itoa(int(c)) + ")"
}

// Return yields the value a C-style function reports for c: the negation of
// the code, or 0 for OK.
func (c Code) Return() int {
	return -int(c)
}

// Band returns the band of c.
func (c Code) Band() Band {
	if c < Code(BandStd) || c >= 2000 {
		return BandNone
	}
	b := Band(c / 100 * 100)
	if _, ok := bandNames[b]; !ok {
		return BandNone
	}
	return b
}

// Known reports whether c is part of the defined code set. OK is known.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// String returns the short lowercase band name, e.g. "std".
func (b Band) String() string {
	if n, ok := bandNames[b]; ok {
		return n
	}
	return "band(" + strconv.Itoa(int(b)) + ")"
}

// FromReturn converts a C-style return value back into a Code.
// It reports false when v is positive or does not name a known code.
func FromReturn(v int) (Code, bool) {
	if v > 0 {
		return OK, false
	}
	c := Code(-v)
	return c, c.Known()
}

// All returns every known code (aliases excluded) in ascending order.
func All() []Code {
	out := make([]Code, 0, len(names))
	for c := range names {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Normalize brings a user-provided code string closer to canonical form:
// it trims spaces, upper-cases, and replaces '-' with '_'.
//
// It does NOT guarantee that the result names a code.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse accepts a symbolic name ("ESTD_ACCES", "estd-acces"), a positive
// code value ("1013") or a negated return value ("-1013"). Only known codes
// are accepted.
func Parse(s string) (Code, error) {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
		if n < 0 {
			n = -n
		}
		c := Code(n)
		if !c.Known() {
			return OK, ErrCodeInvalid
		}
		return c, nil
	}
	if c, ok := byName[Normalize(s)]; ok {
		return c, nil
	}
	return OK, ErrCodeInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports ErrCodeInvalid when c is not a known code.
func Validate(c Code) error {
	if !c.Known() {
		return ErrCodeInvalid
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler. Only known codes marshal.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
