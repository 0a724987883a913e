// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package table implements a prefix table keyed by short byte sequences,
// sized for magic-number lookups.
package table

// tableSize matches the uint16 hash space.
const tableSize = 1 << 16

const (
	// none: no stored key has a prefix hashing here.
	none = iota
	// presentMarker: some longer key passes through this hash position.
	presentMarker
	// elemMarker: a complete key hashes here.
	elemMarker
)

// PrefixTable maps byte-sequence keys to values of type T and answers
// "which stored keys are a prefix of this data" without scanning every key.
// The marker array prunes the walk: hashing folds each key byte in with a
// 2-bit shift, so keys up to eight bytes spread over the full 16-bit space,
// which covers every magic number this package is used for.
type PrefixTable[T any] struct {
	markers [tableSize]byte
	elems   map[string]T
}

// New returns an empty PrefixTable.
func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

// Insert stores v under key. Inserting an existing key replaces its value.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	var h uint16
	for _, b := range key {
		h = (h << 2) + uint16(b)
		// Never downgrade an elemMarker left by a shorter key.
		t.markers[h] = max(t.markers[h], presentMarker)
	}
	t.markers[h] = elemMarker
	t.elems[string(key)] = v
}

// Get returns the value stored under key.
func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Walk invokes onMatch for every stored key that is a prefix of data,
// shortest first, stopping early when onMatch returns true or when no stored
// key can extend the current prefix.
func (t *PrefixTable[T]) Walk(data []byte, onMatch func(T) bool) {
	var h uint16
	for i, b := range data {
		h = (h << 2) + uint16(b)

		marker := t.markers[h]
		if marker == none {
			return
		}
		if marker == elemMarker {
			v, ok := t.elems[string(data[:i+1])]
			if ok && onMatch(v) {
				return
			}
		}
	}
}

// Size returns the number of stored keys.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}
