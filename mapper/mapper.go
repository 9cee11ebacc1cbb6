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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/mapper/internal/segmenttrie"
	"dirpx.dev/convention/reason"
)

// New builds an immutable mapper from the built-in defaults and opts.
//
// It fails when a prefix rule is malformed or a status is out of range
// (ErrInvalidStatus).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	h, err := b.http.freeze()
	if err != nil {
		return nil, err
	}
	g, err := b.grpc.freeze()
	if err != nil {
		return nil, err
	}
	return &mapper{http: h, grpc: g}, nil
}

var std = func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}()

// Default returns the mapper built from the defaults alone.
func Default() apis.Mapper { return std }

type source string

const (
	srcOK       source = "ok"
	srcOverride source = "override"
	srcPrefix   source = "prefix"
	srcDefault  source = "default"
	srcBand     source = "band"
	srcFallback source = "fallback"
)

// table is the frozen rule set of one transport.
type table[V any] struct {
	override map[code.Code]V
	tries    map[code.Code]*segmenttrie.Trie[V]
	defaults map[code.Code]V
	bands    map[code.Band]V
	ok       V
	fallback V
}

// resolve walks the tiers in order: OK, override, reason prefix, code
// default, band default, fallback.
func (t *table[V]) resolve(c code.Code, r reason.Reason) (V, source, string) {
	if c == code.OK {
		return t.ok, srcOK, ""
	}
	if v, ok := t.override[c]; ok {
		return v, srcOverride, ""
	}
	if r != reason.Empty {
		if v, pat, ok := t.tries[c].Lookup(string(r)); ok {
			return v, srcPrefix, pat
		}
	}
	if v, ok := t.defaults[c]; ok {
		return v, srcDefault, ""
	}
	if v, ok := t.bands[c.Band()]; ok {
		return v, srcBand, ""
	}
	return t.fallback, srcFallback, ""
}

type mapper struct {
	http *table[int]
	grpc *table[codes.Code]
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders the resolution trace, for example:
//
//	code=ECOMM_CONDENIED return=-1702 band=comm reason="errno.econnrefused"
//	http: source=prefix pattern="errno.econnrefused" -> 503
//	grpc: source=band -> Unavailable(14)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%s return=%d band=%s reason=%q\n", c, c.Return(), c.Band(), r)

	hv, hsrc, hpat := m.http.resolve(c, r)
	b.WriteString("http: ")
	writeSource(&b, hsrc, hpat)
	fmt.Fprintf(&b, " -> %d\n", hv)

	gv, gsrc, gpat := m.grpc.resolve(c, r)
	b.WriteString("grpc: ")
	writeSource(&b, gsrc, gpat)
	fmt.Fprintf(&b, " -> %s(%d)", gv, int(gv))

	return b.String()
}

func writeSource(b *strings.Builder, src source, pattern string) {
	fmt.Fprintf(b, "source=%s", src)
	if pattern != "" {
		fmt.Fprintf(b, " pattern=%q", pattern)
	}
}
