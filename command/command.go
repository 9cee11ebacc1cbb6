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

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// Word is a packed command word.
type Word uint32

// Direction tells whether a command transfers data to the device, from it,
// both or neither. The values are flags: DirReadWrite is DirRead|DirWrite.
type Direction uint32

const (
	DirNone      Direction = 0
	DirWrite     Direction = 1
	DirRead      Direction = 2
	DirReadWrite Direction = DirRead | DirWrite
)

// Field widths.
const (
	NumberBits = 8
	TypeBits   = 8
	SizeBits   = 14
	DirBits    = 2
)

// Field offsets.
const (
	NumberShift = 0
	TypeShift   = NumberShift + NumberBits
	SizeShift   = TypeShift + TypeBits
	DirShift    = SizeShift + SizeBits
)

// Field masks, applied after shifting.
const (
	NumberMask = 1<<NumberBits - 1
	TypeMask   = 1<<TypeBits - 1
	SizeMask   = 1<<SizeBits - 1
	DirMask    = 1<<DirBits - 1
)

// ErrFieldRange reports a field value that does not fit its width.
var ErrFieldRange = errors.New("convention: command field out of range")

// New packs the four fields into a word. Inputs are not masked.
func New(dir Direction, typ, nr, size uint32) Word {
	return Word(uint32(dir)<<DirShift |
		size<<SizeShift |
		typ<<TypeShift |
		nr<<NumberShift)
}

// NumberOnly builds a command without payload.
func NumberOnly(typ, nr uint32) Word {
	return New(DirNone, typ, nr, 0)
}

// Read builds a command that reads a T from the device.
func Read[T any](typ, nr uint32) Word {
	return New(DirRead, typ, nr, sizeOf[T]())
}

// Write builds a command that writes a T to the device.
func Write[T any](typ, nr uint32) Word {
	return New(DirWrite, typ, nr, sizeOf[T]())
}

// ReadWrite builds a command that exchanges a T in both directions.
func ReadWrite[T any](typ, nr uint32) Word {
	return New(DirReadWrite, typ, nr, sizeOf[T]())
}

func sizeOf[T any]() uint32 {
	var v T
	return uint32(unsafe.Sizeof(v))
}

// Number returns the number field.
func (w Word) Number() uint32 { return (uint32(w) >> NumberShift) & NumberMask }

// Type returns the type field.
func (w Word) Type() uint32 { return (uint32(w) >> TypeShift) & TypeMask }

// Size returns the payload size in bytes.
func (w Word) Size() uint32 { return (uint32(w) >> SizeShift) & SizeMask }

// Direction returns the direction flags.
func (w Word) Direction() Direction { return Direction((uint32(w) >> DirShift) & DirMask) }

// Fields is the unpacked form of a word.
type Fields struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Type      uint32    `json:"type" yaml:"type"`
	Number    uint32    `json:"number" yaml:"number"`
	Size      uint32    `json:"size" yaml:"size"`
}

// Decode unpacks w.
func Decode(w Word) Fields {
	return Fields{
		Direction: w.Direction(),
		Type:      w.Type(),
		Number:    w.Number(),
		Size:      w.Size(),
	}
}

// Fields is shorthand for Decode(w).
func (w Word) Fields() Fields { return Decode(w) }

// Word packs f. Like New it does not mask.
func (f Fields) Word() Word {
	return New(f.Direction, f.Type, f.Number, f.Size)
}

// Validate returns ErrFieldRange, wrapped with the field name, for the first
// field that does not fit its width.
func (f Fields) Validate() error {
	switch {
	case f.Direction > DirMask:
		return rangeErr("direction", uint32(f.Direction), DirMask)
	case f.Size > SizeMask:
		return rangeErr("size", f.Size, SizeMask)
	case f.Type > TypeMask:
		return rangeErr("type", f.Type, TypeMask)
	case f.Number > NumberMask:
		return rangeErr("number", f.Number, NumberMask)
	}
	return nil
}

func rangeErr(field string, v, maxV uint32) error {
	return fmt.Errorf("%w: %s=%d, max %d", ErrFieldRange, field, v, maxV)
}

// Check validates the fields New would pack.
func Check(dir Direction, typ, nr, size uint32) error {
	return Fields{Direction: dir, Type: typ, Number: nr, Size: size}.Validate()
}

// Checked is New with range validation. On error the word is 0.
func Checked(dir Direction, typ, nr, size uint32) (Word, error) {
	if err := Check(dir, typ, nr, size); err != nil {
		return 0, err
	}
	return New(dir, typ, nr, size), nil
}

// String renders w as "dir=R type=0x6a nr=0x11 size=1".
func (w Word) String() string {
	return fmt.Sprintf("dir=%s type=0x%02x nr=0x%02x size=%d",
		w.Direction(), w.Type(), w.Number(), w.Size())
}

// Hex renders w as a 0x-prefixed 8 digit hex string.
func (w Word) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}

// ParseWord accepts a decimal, 0x hex, 0o octal or 0b binary word.
func ParseWord(s string) (Word, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("convention: parse command word %q: %w", s, err)
	}
	return Word(v), nil
}

var dirNames = [...]string{
	DirNone:      "none",
	DirWrite:     "W",
	DirRead:      "R",
	DirReadWrite: "RW",
}

// String returns "none", "W", "R" or "RW".
func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "dir(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// ParseDirection accepts the String forms, case-insensitively, plus "read",
// "write", "readwrite" and the numeric values 0 to 3.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "", "0":
		return DirNone, nil
	case "w", "write", "1":
		return DirWrite, nil
	case "r", "read", "2":
		return DirRead, nil
	case "rw", "readwrite", "read_write", "3":
		return DirReadWrite, nil
	}
	return DirNone, fmt.Errorf("%w: direction %q", ErrFieldRange, s)
}
