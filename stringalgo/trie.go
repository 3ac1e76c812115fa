// SPDX-License-Identifier: MIT

package stringalgo

// Trie is a rooted tree of byte transitions holding a set of strings.
// Each node records whether a word ends there and how many inserted words
// pass through it, so prefix counts are answered in O(len(prefix)).
//
// The zero value is not usable; call NewTrie.
type Trie struct {
	next  []map[byte]int
	end   []bool
	count []int
	words int
}

// NewTrie returns an empty trie with just the root node.
func NewTrie() *Trie {
	return &Trie{
		next:  []map[byte]int{{}},
		end:   []bool{false},
		count: []int{0},
	}
}

// Insert adds word and reports whether it was new. Inserting the same
// word twice leaves the trie unchanged.
func (t *Trie) Insert(word string) bool {
	if t.Contains(word) {
		return false
	}
	node := 0
	t.count[node]++
	for i := 0; i < len(word); i++ {
		child, ok := t.next[node][word[i]]
		if !ok {
			child = len(t.next)
			t.next = append(t.next, map[byte]int{})
			t.end = append(t.end, false)
			t.count = append(t.count, 0)
			t.next[node][word[i]] = child
		}
		node = child
		t.count[node]++
	}
	t.end[node] = true
	t.words++

	return true
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	node, ok := t.walk(word)

	return ok && t.end[node]
}

// CountPrefix returns the number of inserted words starting with prefix.
// The empty prefix matches every word.
func (t *Trie) CountPrefix(prefix string) int {
	node, ok := t.walk(prefix)
	if !ok {
		return 0
	}

	return t.count[node]
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of trie nodes including the root.
func (t *Trie) Nodes() int { return len(t.next) }

func (t *Trie) walk(s string) (int, bool) {
	node := 0
	for i := 0; i < len(s); i++ {
		child, ok := t.next[node][s[i]]
		if !ok {
			return 0, false
		}
		node = child
	}

	return node, true
}
