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

// Package alloc is the allocator shim used by driver code that needs raw,
// zeroed buffers.
//
// Two back ends exist: Heap (the Go heap) and Mmap (anonymous private
// mappings, unix only). Default is chosen at build time: Heap, unless the
// module is built with the convention_mmap tag on a unix platform.
//
// Every back end returns zeroed memory and accepts Free(nil) as a no-op.
package alloc

import (
	mbits "math/bits"

	"dirpx.dev/convention"
	"dirpx.dev/convention/code"
)

// Allocator hands out zeroed byte buffers.
type Allocator interface {
	// Alloc returns count*size zeroed bytes. A zero-byte request returns
	// (nil, nil).
	Alloc(count, size int) ([]byte, error)
	// Free releases b. Free(nil) is a no-op.
	Free(b []byte) error
}

// Alloc allocates from Default.
func Alloc(count, size int) ([]byte, error) { return Default.Alloc(count, size) }

// Free releases b through Default.
func Free(b []byte) error { return Default.Free(b) }

// Heap allocates from the Go heap. Free is a no-op and the garbage collector
// reclaims the memory.
type Heap struct{}

var _ Allocator = Heap{}

func (Heap) Alloc(count, size int) ([]byte, error) {
	n, err := total(count, size)
	if err != nil || n == 0 {
		return nil, err
	}
	return make([]byte, n), nil
}

func (Heap) Free([]byte) error { return nil }

// total returns count*size, or an EPAR_RANGE error for negative inputs and
// products that do not fit an int.
func total(count, size int) (int, error) {
	if count < 0 || size < 0 {
		return 0, convention.E(code.ParRange, "negative allocation size",
			convention.WithReasonOption("alloc.size"),
			convention.WithDetailsOption(map[string]any{"count": count, "size": size}),
		)
	}
	hi, lo := mbits.Mul64(uint64(count), uint64(size))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, convention.E(code.ParRange, "allocation size overflows",
			convention.WithReasonOption("alloc.size"),
			convention.WithDetailsOption(map[string]any{"count": count, "size": size}),
		)
	}
	return int(lo), nil
}

const maxInt = int(^uint(0) >> 1)
