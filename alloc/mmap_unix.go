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

package alloc

import (
	"os"

	"golang.org/x/sys/unix"

	"dirpx.dev/convention/bits"
	"dirpx.dev/convention/errno"
)

// Mmap allocates anonymous private mappings. The kernel zeroes the pages.
//
// Requests are rounded up to whole pages; the returned slice has the
// requested length and the rounded capacity. Free must receive a slice with
// the same base and capacity as the one Alloc returned.
type Mmap struct{}

var _ Allocator = Mmap{}

func (Mmap) Alloc(count, size int) ([]byte, error) {
	n, err := total(count, size)
	if err != nil || n == 0 {
		return nil, err
	}
	length := int(bits.Align(uint(n), uint(os.Getpagesize())))
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errno.Wrap(err, "mmap").WithDetail("op", "mmap")
	}
	return b[:n], nil
}

func (Mmap) Free(b []byte) error {
	if b == nil {
		return nil
	}
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		return errno.Wrap(err, "munmap").WithDetail("op", "munmap")
	}
	return nil
}
