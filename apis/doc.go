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

// Package apis holds the small contracts shared by the convention packages.
//
// Transport adapters and mappers program against these interfaces and view
// types instead of the concrete convention.Error, so a driver layer can bring
// its own error type as long as it can report a project code.
//
// The package only depends on code, reason and the gRPC codes enum.
package apis
