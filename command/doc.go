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

// Package command packs and unpacks 32-bit device command words.
//
// A command word carries four fields, most significant first:
//
//	 31 30 29             16 15       8 7        0
//	+-----+-----------------+----------+----------+
//	| dir |      size       |   type   |  number  |
//	+-----+-----------------+----------+----------+
//
// The layout is bit-for-bit the generic Linux ioctl layout, so a word built
// here can be handed to ioctl(2) directly:
//
//	command.Read[uint8]('j', 0x11) == 0x80016a11 // JSIOCGAXES
//
// New and the typed constructors never mask their inputs. A field that does
// not fit its width spills into the neighbouring field. Use Check or Checked
// where the inputs are not compile-time constants.
package command
