package textindex

import (
	"sort"
	"testing"
)

func TestInsertAndGet(t *testing.T) {
	trie := NewTrie[int]()
	trie.Insert("dismissal", 1)
	trie.Insert("discrimination", 2)

	if trie.Size() != 2 {
		t.Errorf("expected size 2, got %d", trie.Size())
	}

	v, ok := trie.Get("dismissal")
	if !ok || v != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", v, ok)
	}

	if _, ok := trie.Get("dismiss"); ok {
		t.Error("prefix should not match as exact key")
	}
}

func TestInsertReplaces(t *testing.T) {
	trie := NewTrie[int]()
	trie.Insert("tenancy", 1)
	trie.Insert("tenancy", 2)

	if trie.Size() != 1 {
		t.Errorf("expected size 1 after replace, got %d", trie.Size())
	}
	v, _ := trie.Get("tenancy")
	if v != 2 {
		t.Errorf("expected replaced value 2, got %d", v)
	}
}

func TestWalkPrefix(t *testing.T) {
	trie := NewTrie[int]()
	trie.Insert("dismissal", 1)
	trie.Insert("discrimination", 2)
	trie.Insert("deposit", 3)

	keys := trie.Keys("dis")
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "discrimination" || keys[1] != "dismissal" {
		t.Errorf("unexpected keys: %v", keys)
	}

	var visited int
	trie.WalkPrefix("d", func(key string, value int) bool {
		visited++
		return visited == 2 // stop early
	})
	if visited != 2 {
		t.Errorf("expected walk to stop after 2, visited %d", visited)
	}
}
