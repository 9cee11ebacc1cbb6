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

// Package code defines the project error code space.
//
// Project codes are stable integers grouped into bands:
//
//   - 1000s: generic standard errors (ESTD_*), one per classic errno;
//   - 1100s: parameter errors (EPAR_*);
//   - 1200s: execution errors (EEXEC_*);
//   - 1600s: permission errors (EPERM_*);
//   - 1700s: communication errors (ECOMM_*);
//   - 1800s: list errors (ELIST_*);
//   - 1900s: hardware abstraction errors (EHAL_*).
//
// A Code holds the positive number. Functions that follow the C convention
// return it negated (Code.Return), and 0 ("EOK") is the only non-negative
// value such a function ever produces.
//
// The numbers are part of the wire contract between modules and MUST NOT be
// renumbered.
package code
