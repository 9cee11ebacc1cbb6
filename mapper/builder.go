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
	"errors"
	"fmt"
	"maps"
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/mapper/internal/segmenttrie"
	"dirpx.dev/convention/reason"
)

// ErrInvalidStatus is returned by New when an option carries a status the
// transport cannot send: HTTP outside 100..599, gRPC above Unauthenticated.
var ErrInvalidStatus = errors.New("mapper: invalid status")

func validHTTP(s int) bool { return s >= 100 && s <= 599 }

func validGRPC(c codes.Code) bool { return c <= codes.Unauthenticated }

type prefixRule[V any] struct {
	prefix string
	val    V
}

// rules collects the configuration of one transport.
type rules[V any] struct {
	name     string
	defaults map[code.Code]V
	override map[code.Code]V
	bands    map[code.Band]V
	prefixes map[code.Code][]prefixRule[V]
	ok       V
	fallback V
	valid    func(V) bool
}

func newRules[V any](name string, valid func(V) bool, defaults map[code.Code]V, bands map[code.Band]V, ok, fallback V) *rules[V] {
	return &rules[V]{
		name:     name,
		valid:    valid,
		defaults: maps.Clone(defaults),
		override: make(map[code.Code]V),
		bands:    maps.Clone(bands),
		prefixes: make(map[code.Code][]prefixRule[V]),
		ok:       ok,
		fallback: fallback,
	}
}

func (r *rules[V]) addPrefix(c code.Code, prefix string, v V) {
	r.prefixes[c] = append(r.prefixes[c], prefixRule[V]{prefix, v})
}

// freeze compiles the prefix rules and copies every map, so the returned
// table shares nothing with the builder.
func (r *rules[V]) freeze() (*table[V], error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	tries := make(map[code.Code]*segmenttrie.Trie[V], len(r.prefixes))
	for c, list := range r.prefixes {
		t := segmenttrie.New[V]()
		for _, pr := range list {
			p := reason.Normalize(pr.prefix)
			if err := t.Insert(p, pr.val); err != nil {
				return nil, fmt.Errorf("mapper: %s prefix %q for %s: %w", r.name, pr.prefix, c, err)
			}
		}
		tries[c] = t
	}
	return &table[V]{
		override: maps.Clone(r.override),
		tries:    tries,
		defaults: maps.Clone(r.defaults),
		bands:    maps.Clone(r.bands),
		ok:       r.ok,
		fallback: r.fallback,
	}, nil
}

func (r *rules[V]) check() error {
	for c, v := range r.override {
		if !r.valid(v) {
			return fmt.Errorf("%w: %s override for %s: %v", ErrInvalidStatus, r.name, c, v)
		}
	}
	for c, v := range r.defaults {
		if !r.valid(v) {
			return fmt.Errorf("%w: %s default for %s: %v", ErrInvalidStatus, r.name, c, v)
		}
	}
	for bd, v := range r.bands {
		if !r.valid(v) {
			return fmt.Errorf("%w: %s band %s: %v", ErrInvalidStatus, r.name, bd, v)
		}
	}
	for c, list := range r.prefixes {
		for _, pr := range list {
			if !r.valid(pr.val) {
				return fmt.Errorf("%w: %s prefix %q for %s: %v", ErrInvalidStatus, r.name, pr.prefix, c, pr.val)
			}
		}
	}
	return nil
}

type builder struct {
	http *rules[int]
	grpc *rules[codes.Code]
}

func newBuilder() *builder {
	return &builder{
		http: newRules("http", validHTTP, defaultHTTP, bandHTTP, http.StatusOK, http.StatusInternalServerError),
		grpc: newRules("grpc", validGRPC, defaultGRPC, bandGRPC, codes.OK, codes.Internal),
	}
}
