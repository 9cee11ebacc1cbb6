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

// Package bits holds small bit and alignment helpers for register and
// command-word code.
//
// All helpers are generic over unsigned integers and return new values; none
// of them modify their arguments.
package bits

import (
	mbits "math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// width is the bit width of T.
func width[T constraints.Unsigned]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// Align rounds size up to the next multiple of boundary. boundary must be a
// power of two; 0 returns size unchanged.
func Align[T constraints.Unsigned](size, boundary T) T {
	if boundary == 0 {
		return size
	}
	return (size + boundary - 1) &^ (boundary - 1)
}

// IsAligned reports whether v is a multiple of the power-of-two boundary.
func IsAligned[T constraints.Unsigned](v, boundary T) bool {
	return boundary == 0 || v&(boundary-1) == 0
}

// Bit returns a value with only bit n set. n at or above the width of T
// yields 0.
func Bit[T constraints.Unsigned](n int) T {
	if n < 0 || n >= width[T]() {
		return 0
	}
	return T(1) << n
}

// Mask returns a value with the low n bits set, saturating at the width of T.
func Mask[T constraints.Unsigned](n int) T {
	switch {
	case n <= 0:
		return 0
	case n >= width[T]():
		return ^T(0)
	}
	return T(1)<<n - 1
}

// FieldMask returns the mask for bits lo through hi, both inclusive. A
// negative lo or hi < lo yields 0.
//
//	FieldMask[uint32](29, 16) == 0x3fff0000
func FieldMask[T constraints.Unsigned](hi, lo int) T {
	if lo < 0 || hi < lo {
		return 0
	}
	return Mask[T](hi-lo+1) << lo
}

// Set returns v with the bits of mask set.
func Set[T constraints.Unsigned](v, mask T) T { return v | mask }

// Clear returns v with the bits of mask cleared.
func Clear[T constraints.Unsigned](v, mask T) T { return v &^ mask }

// Toggle returns v with the bits of mask flipped.
func Toggle[T constraints.Unsigned](v, mask T) T { return v ^ mask }

// Has reports whether every bit of mask is set in v.
func Has[T constraints.Unsigned](v, mask T) bool { return v&mask == mask }

// Pos returns the index of the lowest set bit of v at or above start.
// It reports false when there is none, including for v == 0.
func Pos[T constraints.Unsigned](v T, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= width[T]() {
		return 0, false
	}
	v >>= start
	if v == 0 {
		return 0, false
	}
	return start + mbits.TrailingZeros64(uint64(v)), true
}
