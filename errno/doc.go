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

// Package errno normalizes platform errno values into the project code space.
//
// Normalize is the central operation. It looks the platform value up in a
// fixed table and returns the negated project code:
//
//	errno.Normalize(int(unix.EACCES))    // -1013 (ESTD_ACCES)
//	errno.Normalize(int(unix.ETIMEDOUT)) // -1200 (EEXEC_TO)
//	errno.Normalize(0)                   // 0
//
// Values missing from the table are returned negated and otherwise untouched,
// so a caller can still recover the original magnitude. Callers must not
// assume that every project code is reachable from a given platform.
//
// Several platform values share a project code. ECONNRESET and ECONNREFUSED
// both become ECOMM_CONDENIED; Wrap keeps the distinction in the reason
// ("errno.econnreset").
//
// The table is built once at package initialization and never changes, so
// every function here is safe for concurrent use.
package errno
