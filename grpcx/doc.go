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

// Package grpcx carries convention errors across gRPC.
//
// On the server, UnaryServerInterceptor turns a *convention.Error (or a raw
// syscall.Errno) returned by a handler into a gRPC status whose details hold
// a google.rpc.ErrorInfo:
//
//	reason:   "ESTD_ACCES"
//	domain:   "convention.dirpx.dev"
//	metadata: {"code": "1013", "return": "-1013", "reason": "errno.eacces", ...}
//
// On the client, FromStatus rebuilds the *convention.Error.
package grpcx
