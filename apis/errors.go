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

package apis

import (
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

// CodedError is an error classified by a project code.
//
// ErrorCode returns the positive code (e.g. code.StdAcces). Adapters turn it
// into the negated C-style value or a transport status as needed; they treat
// an unknown code as a hardware-abstraction failure.
type CodedError interface {
	error

	// ErrorCode returns the project code. It must not be code.OK.
	ErrorCode() code.Code
}

// ReasonedError carries a reason next to its code.
//
// The reason keeps what the code folds away, e.g. whether ECOMM_CONDENIED
// came from ECONNRESET or ECONNREFUSED.
type ReasonedError interface {
	error

	// ErrorReason returns the reason, possibly reason.Empty.
	ErrorReason() reason.Reason
}

// DetailedError exposes structured details. A nil slice means none.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}
