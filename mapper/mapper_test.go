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
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

func mustReason(s string) reason.Reason { return reason.MustParse(s) }

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tests := []struct {
		c    code.Code
		http int
		grpc codes.Code
	}{
		{code.OK, 200, codes.OK},
		{code.StdAcces, 403, codes.PermissionDenied},
		{code.StdNoEnt, 404, codes.NotFound},
		{code.StdIO, 500, codes.Internal},
		{code.StdExist, 409, codes.AlreadyExists},
		{code.ParNull, 400, codes.InvalidArgument},
		{code.ParRange, 400, codes.OutOfRange},
		{code.ExecTimeout, 504, codes.DeadlineExceeded},
		{code.ExecCleanup, 500, codes.Internal},
		{code.PermRO, 403, codes.PermissionDenied},
		{code.CommConDenied, 502, codes.Unavailable},
		{code.CommCRC, 502, codes.DataLoss},
		{code.ListOverflow, 507, codes.ResourceExhausted},
		{code.HALError, 500, codes.Internal},
		{code.Code(13), 500, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			st := m.Status(tt.c, reason.Empty)
			if st.HTTP != tt.http || st.GRPC != tt.grpc {
				t.Fatalf("Status(%v) = %d/%v, want %d/%v", tt.c, st.HTTP, st.GRPC, tt.http, tt.grpc)
			}
		})
	}
}

func TestEveryKnownCodeResolves(t *testing.T) {
	m := Default()
	for _, c := range code.All() {
		st := m.Status(c, reason.Empty)
		if st.HTTP < 200 || st.HTTP > 599 {
			t.Fatalf("%v resolved to HTTP %d", c, st.HTTP)
		}
		if c != code.OK && (st.HTTP < 400 || st.GRPC == codes.OK) {
			t.Fatalf("error code %v resolved to success %d/%v", c, st.HTTP, st.GRPC)
		}
	}
}

func TestPriority_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.CommConDenied, 503),
		WithHTTPPrefix(code.CommConDenied, "errno.econnreset", 599),
		WithHTTPOverride(code.CommConDenied, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.CommConDenied, mustReason("errno.econnreset")); got != 418 {
		t.Fatalf("override must win; got %d", got)
	}

	m, _ = New(
		WithHTTPDefault(code.CommConDenied, 503),
		WithHTTPPrefix(code.CommConDenied, "errno.econnreset", 599),
	)
	if got := m.HTTPStatus(code.CommConDenied, mustReason("errno.econnreset")); got != 599 {
		t.Fatalf("prefix must beat default; got %d", got)
	}
	if got := m.HTTPStatus(code.CommConDenied, mustReason("errno.econnrefused")); got != 503 {
		t.Fatalf("default expected; got %d", got)
	}
}

func TestPriority_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.StdIO, codes.Unavailable),
		WithGRPCPrefix(code.StdIO, "ioctl.*.read", codes.DataLoss),
		WithGRPCOverride(code.StdAgain, codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(code.StdIO, mustReason("ioctl.js.read")); got != codes.DataLoss {
		t.Fatalf("prefix expected; got %v", got)
	}
	if got := m.GRPCStatus(code.StdIO, reason.Empty); got != codes.Unavailable {
		t.Fatalf("default expected; got %v", got)
	}
	if got := m.GRPCStatus(code.StdAgain, mustReason("errno.eagain")); got != codes.Aborted {
		t.Fatalf("override expected; got %v", got)
	}
}

func TestBandDefaults(t *testing.T) {
	m, err := New(
		WithBandHTTP(code.BandHAL, http.StatusServiceUnavailable),
		WithBandGRPC(code.BandHAL, codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.HALError, reason.Empty)
	if st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("band override ignored: %+v", st)
	}
	// a per-code default still beats the band
	if got := m.HTTPStatus(code.ExecTimeout, reason.Empty); got != 504 {
		t.Fatalf("per-code default must beat band; got %d", got)
	}
}

func TestOKIsFixed(t *testing.T) {
	m, err := New(WithHTTPOverride(code.OK, 500), WithGRPCOverride(code.OK, codes.Internal))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.OK, reason.Empty); st.HTTP != 200 || st.GRPC != codes.OK {
		t.Fatalf("OK must stay 200/OK, got %+v", st)
	}
}

func TestPrefix_SegmentBoundary(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.CommNoCon, "socket.conn", 499))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.CommNoCon, mustReason("socket.connect")); got == 499 {
		t.Fatalf("matched across a segment boundary")
	}
}

func TestPrefix_Normalized(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.StdAcces, "  Errno/EACCES ", 401))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.StdAcces, mustReason("errno.eacces")); got != 401 {
		t.Fatalf("normalized prefix did not match; got %d", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "bad..prefix", "9x"} {
		if _, err := New(WithHTTPPrefix(code.StdIO, p, 500)); err == nil {
			t.Fatalf("prefix %q must be rejected", p)
		}
		if _, err := New(WithGRPCPrefix(code.StdIO, p, codes.Internal)); err == nil {
			t.Fatalf("grpc prefix %q must be rejected", p)
		}
	}
}

func TestNew_InvalidStatus(t *testing.T) {
	bad := []Option{
		WithHTTPOverride(code.StdAcces, 0),
		WithHTTPOverride(code.StdAcces, 600),
		WithHTTPDefault(code.ExecTimeout, 99),
		WithHTTPPrefix(code.StdIO, "errno.eio", -1),
		WithBandHTTP(code.BandComm, 1000),
		WithGRPCOverride(code.StdAcces, codes.Code(17)),
		WithGRPCPrefix(code.StdIO, "errno.eio", codes.Code(99)),
	}
	for i, opt := range bad {
		if _, err := New(opt); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("option %d: err = %v, want ErrInvalidStatus", i, err)
		}
	}
	if _, err := New(WithHTTPOverride(code.StdAcces, 100), WithHTTPOverride(code.StdIO, 599)); err != nil {
		t.Fatalf("boundary statuses rejected: %v", err)
	}
}

func TestImmutability(t *testing.T) {
	before := Default().HTTPStatus(code.StdAcces, reason.Empty)
	if _, err := New(WithHTTPDefault(code.StdAcces, 451)); err != nil {
		t.Fatalf("New: %v", err)
	}
	if after := Default().HTTPStatus(code.StdAcces, reason.Empty); after != before {
		t.Fatalf("building a mapper changed the defaults: %d -> %d", before, after)
	}
	if defaultHTTP[code.StdAcces] != 403 {
		t.Fatalf("package defaults mutated")
	}
}

func TestConcurrentUse(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.CommConDenied, "errno.econnrefused", 503))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := mustReason(fmt.Sprintf("errno.econnrefused.p%d", i))
			for j := 0; j < 500; j++ {
				if m.HTTPStatus(code.CommConDenied, r) != 503 {
					t.Errorf("unexpected status")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
