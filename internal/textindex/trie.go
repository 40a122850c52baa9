// Package textindex provides a compressed prefix tree for keyword
// lookups. Uses go-radix so shared term prefixes are stored once.
package textindex

import (
	"github.com/armon/go-radix"
)

// Trie is a typed wrapper over a radix tree.
// Lookup and insert are O(k) in the key length; prefix walks are
// O(k + m) in the number of matches.
type Trie[V any] struct {
	tree *radix.Tree
	size int
}

// NewTrie creates a new empty radix tree.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{tree: radix.New()}
}

// Insert adds a key-value pair, replacing any existing value.
func (t *Trie[V]) Insert(key string, value V) {
	_, updated := t.tree.Insert(key, value)
	if !updated {
		t.size++
	}
}

// Get looks up an exact key.
func (t *Trie[V]) Get(key string) (V, bool) {
	val, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}
	return v, true
}

// WalkPrefix calls fn for every key starting with the given prefix.
// Returning true from fn stops the walk.
func (t *Trie[V]) WalkPrefix(prefix string, fn func(key string, value V) bool) {
	t.tree.WalkPrefix(prefix, func(k string, v interface{}) bool {
		val, ok := v.(V)
		if !ok {
			return false
		}
		return fn(k, val)
	})
}

// Keys returns all keys with the given prefix.
func (t *Trie[V]) Keys(prefix string) []string {
	var keys []string
	t.tree.WalkPrefix(prefix, func(k string, v interface{}) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Size returns the number of keys in the tree.
func (t *Trie[V]) Size() int {
	return t.size
}
