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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  ESTD_IO  ", "ESTD_IO"},
		{"to upper", "estd_acces", "ESTD_ACCES"},
		{"dash to underscore", "eexec-to", "EEXEC_TO"},
		{"leading dash", "-1013", "_1013"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"symbolic", "ESTD_ACCES", StdAcces},
		{"lower with spaces", "  eexec_to ", ExecTimeout},
		{"alias", "ESTD_NOFILE", StdNoEnt},
		{"ok", "EOK", OK},
		{"positive value", "1702", CommConDenied},
		{"return value", "-1900", HALError},
		{"zero", "0", OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unknown name", "ESTD_NOPE"},
		{"gap value", "1015"},
		{"outside bands", "42"},
		{"garbage", "!@#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.in, got)
			}
			if got != OK {
				t.Fatalf("Parse(%q) on error must return OK, got %v", tt.in, got)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A CODE")
}

func TestCode_String(t *testing.T) {
	if got := StdAcces.String(); got != "ESTD_ACCES" {
		t.Fatalf("String() = %q, want ESTD_ACCES", got)
	}
	if got := Code(1015).String(); got != "CODE(1015)" {
		t.Fatalf("String() of unknown = %q, want CODE(1015)", got)
	}
}

func TestCode_Return(t *testing.T) {
	if StdAcces.Return() != -1013 {
		t.Fatalf("Return() = %d, want -1013", StdAcces.Return())
	}
	if ExecTimeout.Return() != -1200 {
		t.Fatalf("Return() = %d, want -1200", ExecTimeout.Return())
	}
	if OK.Return() != 0 {
		t.Fatalf("OK.Return() = %d, want 0", OK.Return())
	}
}

func TestFromReturn(t *testing.T) {
	if c, ok := FromReturn(-1705); !ok || c != CommBadLength {
		t.Fatalf("FromReturn(-1705) = %v,%v", c, ok)
	}
	if c, ok := FromReturn(0); !ok || c != OK {
		t.Fatalf("FromReturn(0) = %v,%v", c, ok)
	}
	if _, ok := FromReturn(1013); ok {
		t.Fatalf("positive return values are not codes")
	}
	if _, ok := FromReturn(-13); ok {
		t.Fatalf("negated raw errno must not resolve to a code")
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		c    Code
		want Band
	}{
		{OK, BandNone},
		{StdPerm, BandStd},
		{StdRange, BandStd},
		{ParBadValue, BandPar},
		{ExecInvCxt, BandExec},
		{PermWO, BandPerm},
		{CommBadContent, BandComm},
		{ListOverflow, BandList},
		{HALError, BandHAL},
		{Code(1350), BandNone},
		{Code(13), BandNone},
		{Code(2100), BandNone},
	}
	for _, tt := range tests {
		if got := tt.c.Band(); got != tt.want {
			t.Fatalf("%v.Band() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestAll_SortedAndKnown(t *testing.T) {
	all := All()
	if len(all) != len(names) {
		t.Fatalf("All() len=%d, want %d", len(all), len(names))
	}
	for i, c := range all {
		if !c.Known() {
			t.Fatalf("All()[%d]=%v is not known", i, c)
		}
		if i > 0 && all[i-1] >= c {
			t.Fatalf("All() not strictly ascending at %d", i)
		}
		if c != OK && c.Band() == BandNone {
			t.Fatalf("%v has no band", c)
		}
	}
}

func TestCode_MarshalText(t *testing.T) {
	text, err := ExecDeadlock.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "EEXEC_DEADLK" {
		t.Fatalf("MarshalText() = %q, want EEXEC_DEADLK", string(text))
	}
	if _, err := Code(7).MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unknown code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  ecomm-condenied  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != CommConDenied {
		t.Fatalf("UnmarshalText() = %v, want %v", c, CommConDenied)
	}

	var bad Code
	if err := bad.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}
