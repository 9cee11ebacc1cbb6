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

// ErrorView is the client-facing snapshot of an error.
type ErrorView struct {
	// Code is the symbolic project code name, e.g. "ESTD_ACCES".
	Code string `json:"code" yaml:"code"`
	// Return is the negated numeric code as a C-style caller sees it.
	Return int `json:"return" yaml:"return"`
	// Reason is the optional dotted reason.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Message is the human-readable message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Details are copied from the error as-is, without redaction.
	Details []Detail `json:"details,omitempty" yaml:"details,omitempty"`
}

// ErrorDescriptor is the log/trace form of an error: the view's identity
// plus the transport statuses it was resolved to.
type ErrorDescriptor struct {
	Code       string `json:"code" yaml:"code"`
	Return     int    `json:"return" yaml:"return"`
	Band       string `json:"band" yaml:"band"`
	Reason     string `json:"reason,omitempty" yaml:"reason,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty" yaml:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code,omitempty" yaml:"grpc_code,omitempty"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}
