// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

// matchTree indexes window positions by the MaxMatch bytes that follow them.
// Every first byte value has its own root in right[WindowSize+1:].
type matchTree struct {
	text   *[bufferSize]byte
	left   [WindowSize + 1]node
	right  [WindowSize + 257]node
	parent [WindowSize + 1]node

	matchPos node // position of the longest match found by the last insert
	matchLen int  // its length, 0 when nothing shares the first byte
}

// reset empties all subtrees.
func (t *matchTree) reset(text *[bufferSize]byte) {
	t.text = text
	for i := WindowSize + 1; i < len(t.right); i++ {
		t.right[i] = nilNode
	}
	for i := range t.parent {
		t.parent[i] = nilNode
	}
	t.matchPos = 0
	t.matchLen = 0
}

// insert adds position r and records the longest match against existing nodes.
// A node whose key equals r's on all MaxMatch bytes is replaced by r.
func (t *matchTree) insert(r node) {
	key := t.text[int(r) : int(r)+MaxMatch]
	p := rootOf(key[0])
	cmp := 1

	t.left[r], t.right[r] = nilNode, nilNode
	t.matchLen = 0

	for {
		if cmp >= 0 {
			if t.right[p] == nilNode {
				t.right[p] = r
				t.parent[r] = p
				return
			}
			p = t.right[p]
		} else {
			if t.left[p] == nilNode {
				t.left[p] = r
				t.parent[r] = p
				return
			}
			p = t.left[p]
		}

		i := 1
		for ; i < MaxMatch; i++ {
			if cmp = int(key[i]) - int(t.text[int(p)+i]); cmp != 0 {
				break
			}
		}

		if i > t.matchLen {
			t.matchPos = p
			t.matchLen = i
			if i >= MaxMatch {
				break
			}
		}
	}

	// Full-length duplicate: r takes over p's place in the tree.
	t.parent[r] = t.parent[p]
	t.left[r] = t.left[p]
	t.right[r] = t.right[p]
	t.parent[t.left[p]] = r
	t.parent[t.right[p]] = r
	t.replaceChild(t.parent[p], p, r)
	t.parent[p] = nilNode
}

// remove unlinks position p; absent positions are ignored.
func (t *matchTree) remove(p node) {
	if t.parent[p] == nilNode {
		return
	}

	var q node
	switch {
	case t.right[p] == nilNode:
		q = t.left[p]
	case t.left[p] == nilNode:
		q = t.right[p]
	default:
		// Promote the in-order predecessor.
		q = t.left[p]
		if t.right[q] != nilNode {
			for t.right[q] != nilNode {
				q = t.right[q]
			}
			t.right[t.parent[q]] = t.left[q]
			t.parent[t.left[q]] = t.parent[q]
			t.left[q] = t.left[p]
			t.parent[t.left[p]] = q
		}
		t.right[q] = t.right[p]
		t.parent[t.right[p]] = q
	}

	t.parent[q] = t.parent[p]
	t.replaceChild(t.parent[p], p, q)
	t.parent[p] = nilNode
}

// replaceChild points parent's link to old at repl instead.
// Roots only ever hold a right child.
func (t *matchTree) replaceChild(parent, old, repl node) {
	if t.right[parent] == old {
		t.right[parent] = repl
	} else {
		t.left[parent] = repl
	}
}
