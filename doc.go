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

// Package convention is the shared error and encoding convention used by
// driver, IOCTL and OS-abstraction code.
//
// The root package defines Error, the rich error value built around a project
// code (see package code). The other packages provide:
//
//   - errno: normalization of platform errno values to project codes;
//   - command: packing and unpacking of 32-bit device command words;
//   - alloc: the zeroing allocator shim;
//   - bits: bit and alignment helpers;
//   - mapper, grpcx, httpx: projection of project codes onto transports.
package convention
