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

// Package mapper resolves project codes, optionally refined by a reason, to
// HTTP and gRPC statuses.
//
// # Resolution model
//
// For each transport the first matching tier wins:
//
//  1. code.OK, which is always 200 / codes.OK;
//  2. an exact override for the code;
//  3. the longest reason-prefix rule registered for the code;
//  4. the default of the code;
//  5. the default of the code's band;
//  6. the global fallback, 500 / codes.Internal.
//
// Prefix rules are segment-aware and "*" matches exactly one segment:
//
//	WithHTTPPrefix(code.CommConDenied, "errno.econnrefused", 503)
//	WithGRPCPrefix(code.StdIO, "ioctl.*.read", codes.DataLoss)
//
// Codes the normalizer passes through unmapped (raw errno magnitudes) have no
// band and land on the fallback.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.ExecTimeout, 408),
//	    mapper.WithBandHTTP(code.BandHAL, 503),
//	)
//
// A built mapper copies everything it was given and never changes, so one
// instance can be shared by every handler. Default returns the mapper built
// from the defaults alone.
//
// Explain prints which tier matched. Its output is meant for humans and
// tests, not for parsing.
package mapper
