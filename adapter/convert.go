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

package adapter

import (
	"dirpx.dev/convention"
	"dirpx.dev/convention/apis"
)

// ToDescriptor flattens e and its resolved statuses for logs and traces.
func ToDescriptor(e *convention.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       e.Code.String(),
		Return:     e.Return(),
		Band:       e.Code.Band().String(),
		Reason:     e.Reason.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView builds the client-facing view of e. Details are copied without
// redaction; filtering is up to the caller.
func ToView(e *convention.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:    e.Code.String(),
		Return:  e.Return(),
		Reason:  e.Reason.String(),
		Message: e.Message,
		Details: e.ErrorDetails(),
	}
}
