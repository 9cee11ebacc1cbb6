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

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

var update = flag.Bool("update", false, "update golden files")

// Update with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.CommConDenied, "errno.econnrefused", 503),
		WithGRPCOverride(code.ExecTimeout, codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		c code.Code
		r reason.Reason
	}{
		{code.CommConDenied, mustReason("errno.econnrefused")},
		{code.ExecTimeout, reason.Empty},
		{code.HALError, mustReason("alloc.mmap")},
		{code.Code(13), reason.Empty},
		{code.OK, reason.Empty},
	}
	parts := make([]string, 0, len(cases))
	for _, tc := range cases {
		parts = append(parts, m.Explain(tc.c, tc.r))
	}
	got := strings.Join(parts, "\n---\n") + "\n"

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	trim := func(s string) string { return strings.TrimRight(s, "\r\n") }
	if trim(string(want)) != trim(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
