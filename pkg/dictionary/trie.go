// Package dictionary holds the word sets the checker consults: an exact-match
// trie and the loader that fills it from line-oriented wordlist files.
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// present is stored as the item of every member; a nil item marks a node
// that only exists because a longer word passes through it.
const present = true

// Trie is a set of strings with exact-match lookup.
// It compares bytes literally; callers normalize case before inserting.
type Trie struct {
	tree     *patricia.Trie
	hasEmpty bool
	size     int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{
		tree: patricia.NewTrie(),
	}
}

// Insert adds word to the set. Inserting an existing word is a no-op.
func (t *Trie) Insert(word string) {
	if word == "" {
		if !t.hasEmpty {
			t.hasEmpty = true
			t.size++
		}
		return
	}
	if t.tree.Insert(patricia.Prefix(word), present) {
		t.size++
	}
}

// Search reports whether word was inserted. Prefixes of longer members
// do not match.
func (t *Trie) Search(word string) bool {
	if word == "" {
		return t.hasEmpty
	}
	return t.tree.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of distinct members.
func (t *Trie) Len() int {
	return t.size
}
