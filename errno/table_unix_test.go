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

//go:build linux || darwin || freebsd || netbsd || openbsd

package errno

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"
	"testing"

	"golang.org/x/sys/unix"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

// expected is written out independently of table.
var expected = map[syscall.Errno]int{
	unix.EPERM:           -1001,
	unix.ENOENT:          -1002,
	unix.ESRCH:           -1003,
	unix.EINTR:           -1004,
	unix.EIO:             -1005,
	unix.ENXIO:           -1006,
	unix.E2BIG:           -1007,
	unix.ENOEXEC:         -1008,
	unix.EBADF:           -1009,
	unix.ECHILD:          -1010,
	unix.EAGAIN:          -1011,
	unix.ENOMEM:          -1012,
	unix.EACCES:          -1013,
	unix.EFAULT:          -1014,
	unix.EBUSY:           -1016,
	unix.EEXIST:          -1017,
	unix.EXDEV:           -1018,
	unix.ENODEV:          -1019,
	unix.ENOTDIR:         -1020,
	unix.EISDIR:          -1021,
	unix.EINVAL:          -1022,
	unix.ENFILE:          -1023,
	unix.EMFILE:          -1024,
	unix.ENOTTY:          -1025,
	unix.EFBIG:           -1027,
	unix.ENOSPC:          -1028,
	unix.ESPIPE:          -1029,
	unix.EROFS:           -1030,
	unix.EMLINK:          -1031,
	unix.EPIPE:           -1032,
	unix.EDOM:            -1033,
	unix.ERANGE:          -1034,
	unix.EDEADLK:         -1205,
	unix.ETIMEDOUT:       -1200,
	unix.ELOOP:           -1102,
	unix.EAFNOSUPPORT:    -1107,
	unix.ENOBUFS:         -1012,
	unix.EPROTONOSUPPORT: -1103,
	unix.EADDRINUSE:      -1110,
	unix.ENOTSOCK:        -1109,
	unix.EADDRNOTAVAIL:   -1104,
	unix.ENAMETOOLONG:    -1119,
	unix.ECONNRESET:      -1702,
	unix.EDESTADDRREQ:    -1706,
	unix.EISCONN:         -1703,
	unix.EMSGSIZE:        -1705,
	unix.ENOTCONN:        -1704,
	unix.EOPNOTSUPP:      -1204,
	unix.ECONNREFUSED:    -1702,
	unix.EDQUOT:          -1101,
	unix.ENOPROTOOPT:     -1108,
	unix.EOVERFLOW:       -1101,
	unix.ETXTBSY:         -1600,
}

func TestNormalize_Table(t *testing.T) {
	for en, want := range expected {
		t.Run(Name(en), func(t *testing.T) {
			if got := Normalize(int(en)); got != want {
				t.Fatalf("Normalize(%s) = %d, want %d", Name(en), got, want)
			}
		})
	}
}

func TestNormalize_Scenarios(t *testing.T) {
	if got := Normalize(int(unix.EACCES)); got != -1013 {
		t.Fatalf("Normalize(EACCES) = %d, want -1013", got)
	}
	if got := Normalize(int(unix.ETIMEDOUT)); got != -1200 {
		t.Fatalf("Normalize(ETIMEDOUT) = %d, want -1200", got)
	}
}

func TestTable_MatchesExpected(t *testing.T) {
	tab := Table()
	if len(tab) != len(expected) {
		t.Fatalf("table has %d entries, want %d", len(tab), len(expected))
	}
	seen := make(map[syscall.Errno]bool, len(tab))
	for _, e := range tab {
		if seen[e.Errno] {
			t.Fatalf("%s appears twice", Name(e.Errno))
		}
		seen[e.Errno] = true
		if !e.Code.Known() {
			t.Fatalf("%s maps to unknown code %v", Name(e.Errno), e.Code)
		}
		if e.Code.Return() != expected[e.Errno] {
			t.Fatalf("%s maps to %v", Name(e.Errno), e.Code)
		}
	}
}

func TestNormalize_Unmapped(t *testing.T) {
	for _, en := range []syscall.Errno{unix.ENOTBLK, unix.ESHUTDOWN} {
		if _, ok := expected[en]; ok {
			t.Fatalf("%s unexpectedly mapped", Name(en))
		}
		if got := Normalize(int(en)); got != -int(en) {
			t.Fatalf("Normalize(%s) = %d, want %d", Name(en), got, -int(en))
		}
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if Normalize(int(unix.EACCES)) != -1013 {
					t.Errorf("concurrent Normalize drifted")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestName_Parse(t *testing.T) {
	if got := Name(unix.EACCES); got != "EACCES" {
		t.Fatalf("Name(EACCES) = %q", got)
	}
	if got := Name(syscall.Errno(4000)); got != "errno(4000)" {
		t.Fatalf("Name(4000) = %q", got)
	}
	e, err := Parse("econnreset")
	if err != nil || e != unix.ECONNRESET {
		t.Fatalf("Parse(econnreset) = %v,%v", e, err)
	}
}

func TestFromError_Chain(t *testing.T) {
	_, err := os.Open("/definitely/not/here")
	v, ok := FromError(err)
	if !ok || v != -1002 {
		t.Fatalf("FromError(ENOENT) = %d,%v", v, ok)
	}
}

func TestWrap_Errno(t *testing.T) {
	err := fmt.Errorf("send: %w", unix.ECONNRESET)
	e := Wrap(err, "send frame")

	if e.Code != code.CommConDenied {
		t.Fatalf("code = %v", e.Code)
	}
	if e.Reason != reason.Reason("errno.econnreset") {
		t.Fatalf("reason = %q", e.Reason)
	}
	if e.Return() != -1702 {
		t.Fatalf("Return() = %d", e.Return())
	}
	if !errors.Is(e, unix.ECONNRESET) {
		t.Fatalf("cause lost")
	}
	if e.Details["errno"] != int(unix.ECONNRESET) {
		t.Fatalf("errno detail = %v", e.Details["errno"])
	}
}

func TestWrap_UnmappedKeepsMagnitude(t *testing.T) {
	e := Wrap(unix.ENOTBLK, "mount")
	if e.Return() != -int(unix.ENOTBLK) {
		t.Fatalf("Return() = %d, want %d", e.Return(), -int(unix.ENOTBLK))
	}
	if e.Code.Known() {
		t.Fatalf("unmapped errno must not produce a known code")
	}
	if e.Reason != reason.Reason("errno.enotblk") {
		t.Fatalf("reason = %q", e.Reason)
	}
}
