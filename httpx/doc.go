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

// Package httpx renders convention errors as HTTP JSON responses.
//
// The body is a flat JSON object:
//
//	{
//	  "code": "ESTD_ACCES",
//	  "return": -1013,
//	  "reason": "errno.eacces",
//	  "message": "open /dev/js0",
//	  "details": [{"key": "path", "value": "/dev/js0"}],
//	  "correlation_id": "6f1c..."
//	}
//
// Every response carries an X-Correlation-ID header, generated when the
// caller supplies none.
package httpx
