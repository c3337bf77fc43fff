// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted in-memory search index over headwords.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Index is a generic sorted array index. Values are ordered by their key and
// values with equal keys keep their original relative order.
type Index[V any] struct {
	values []V
	keys   []string
}

// New creates an index from the given values. key returns the search key of a
// value, typically a folded headword.
func New[V any](values []V, key func(V) string) *Index[V] {
	type keyed struct {
		key   string
		value V
	}
	sorted := make([]keyed, len(values))
	for i, v := range values {
		sorted[i] = keyed{key: key(v), value: v}
	}
	slices.SortStableFunc(sorted, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	idx := &Index[V]{
		values: make([]V, len(sorted)),
		keys:   make([]string, len(sorted)),
	}
	for i, kv := range sorted {
		idx.values[i] = kv.value
		idx.keys[i] = kv.key
	}
	return idx
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// Search performs a binary search over the index and returns values whose
// key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.keys), func(i int) int {
		return strings.Compare(query, idx.keys[i])
	})
	if !found {
		return nil
	}

	j := i
	for j < len(idx.keys) && idx.keys[j] == query {
		j++
	}
	return idx.values[i:j]
}

// Prefix returns values whose key starts with prefix.
func (idx *Index[V]) Prefix(prefix string) []V {
	i := sort.SearchStrings(idx.keys, prefix)
	j := i
	for j < len(idx.keys) && strings.HasPrefix(idx.keys[j], prefix) {
		j++
	}
	if i == j {
		return nil
	}
	return idx.values[i:j]
}
