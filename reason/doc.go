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

// Package reason defines the optional refinement attached to a project code.
//
// A code says what class of failure happened (ESTD_ACCES, ECOMM_CONDENIED).
// A reason says where it came from, e.g. the platform errno that was folded
// into the code ("errno.econnreset") or the abstraction-layer call that
// failed ("socket.connect").
//
// The zero value ("") means no reason and is always valid.
package reason
