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

// Package segmenttrie indexes dotted reason prefixes for longest-prefix
// lookups. Matching is segment-aligned and "*" stands for exactly one
// segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned by Insert for empty, malformed or
// wildcard-only prefixes.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

const wildcard = "*"

// Trie maps reason prefixes to values. It is not safe for concurrent
// Insert; lookups on a trie that is no longer modified are.
type Trie[V any] struct {
	root node[V]
}

type node[V any] struct {
	next    map[string]*node[V]
	set     bool
	val     V
	pattern string
}

// New returns an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Insert stores val under prefix, e.g. "errno.econnreset" or "socket.*.bind".
// Inserting the same prefix twice replaces the value.
func (t *Trie[V]) Insert(prefix string, val V) error {
	segs, ok := split(prefix, true)
	if !ok || len(segs) == 0 || onlyWildcards(segs) {
		return ErrInvalidPrefix
	}
	n := &t.root
	for _, s := range segs {
		if n.next == nil {
			n.next = make(map[string]*node[V])
		}
		child := n.next[s]
		if child == nil {
			child = &node[V]{}
			n.next[s] = child
		}
		n = child
	}
	n.set, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix of r.
func (t *Trie[V]) Match(r string) (V, bool) {
	v, _, ok := t.Lookup(r)
	return v, ok
}

// Lookup is Match that also returns the stored pattern. On equal depth a
// literal segment beats "*". A malformed reason never matches.
func (t *Trie[V]) Lookup(r string) (V, string, bool) {
	var zero V
	if t == nil {
		return zero, "", false
	}
	segs, ok := split(r, false)
	if !ok {
		return zero, "", false
	}
	best, _ := t.root.walk(segs, 0, nil, -1)
	if best == nil {
		return zero, "", false
	}
	return best.val, best.pattern, true
}

// walk visits every path matching segs and returns the deepest node that
// holds a value. Literal children are visited first so they win ties.
func (n *node[V]) walk(segs []string, depth int, best *node[V], bestDepth int) (*node[V], int) {
	if n.set && depth > bestDepth {
		best, bestDepth = n, depth
	}
	if len(segs) == 0 || n.next == nil {
		return best, bestDepth
	}
	if c := n.next[segs[0]]; c != nil {
		best, bestDepth = c.walk(segs[1:], depth+1, best, bestDepth)
	}
	if c := n.next[wildcard]; c != nil {
		best, bestDepth = c.walk(segs[1:], depth+1, best, bestDepth)
	}
	return best, bestDepth
}

func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return nil, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if allowWildcard && seg == wildcard {
			continue
		}
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

func onlyWildcards(segs []string) bool {
	for _, s := range segs {
		if s != wildcard {
			return false
		}
	}
	return true
}

// validSegment matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		switch c := seg[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
