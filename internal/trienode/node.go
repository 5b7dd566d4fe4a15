// Copyright 2023 Peter Hebert. Licensed under the MIT license.

// Package trienode implements the node representation shared by every
// fsmtrie mode. ASCII and extended-ASCII nodes use a fixed-width indexed
// child table (one slot per possible byte value); token nodes use a
// dynamically sized, ascending-sorted child list searched by binary search.
//
// Token-mode growth is deliberately modeled as a plain Go slice field on
// the node rather than a variable-length array tail requiring reallocation
// and parent fix-up: appending to a slice never changes the address of the
// node that owns it, which sidesteps the "parent must be told where its
// child moved" hazard entirely.
package trienode

import "sort"

// Node is a single trie node. Depending on the owning trie's mode, exactly
// one of the two child-table representations is populated.
type Node struct {
	Leaf    bool    // a key ends at this node
	Output  bool    // Aho-Corasick: this node or a failure-chain ancestor is a leaf
	Payload *string // optional caller-supplied string associated with a leaf
	Suffix  *Node   // Aho-Corasick failure link; nil for the root and before compile

	// Token is the 32-bit value labeling the edge from this node's parent.
	// Unused (zero) outside token mode and on the root.
	Token uint32

	byteChildren  []*Node // ASCII/EASCII: fixed width, indexed directly by byte value
	tokenChildren []*Node // Token: dynamic, strictly ascending by Token
}

// NewByteNode allocates a node with a fixed-width child table of the given
// size (128 for ASCII, 256 for EASCII).
func NewByteNode(size int) *Node {
	return &Node{byteChildren: make([]*Node, size)}
}

// NewTokenNode allocates a token-mode node labeled with the given edge
// value. The root of a token trie is created with NewTokenNode(0); its
// Token field is never consulted.
func NewTokenNode(token uint32) *Node {
	return &Node{Token: token}
}

// ByteChild returns the child reached by the given byte, or nil if absent.
// Valid only on ASCII/EASCII nodes.
func (n *Node) ByteChild(b byte) *Node {
	if int(b) >= len(n.byteChildren) {
		return nil
	}
	return n.byteChildren[b]
}

// EnsureByteChild returns the existing child on b, creating one (of the
// same child-table width as n) if absent. It reports whether a new node was
// created.
func (n *Node) EnsureByteChild(b byte) (child *Node, created bool) {
	if existing := n.byteChildren[b]; existing != nil {
		return existing, false
	}
	child = NewByteNode(len(n.byteChildren))
	n.byteChildren[b] = child
	return child, true
}

// ByteChildren returns the node's fixed-width child table in ascending
// index order. Callers must not mutate the returned slice.
func (n *Node) ByteChildren() []*Node {
	return n.byteChildren
}

// TokenChildCount returns the number of present token children.
func (n *Node) TokenChildCount() int {
	return len(n.tokenChildren)
}

// TokenChildAt returns the i-th token child in ascending token order.
func (n *Node) TokenChildAt(i int) *Node {
	return n.tokenChildren[i]
}

// tokenSearch locates the insertion point for token among the node's sorted
// token children: the index of the first child whose Token is >= token.
func (n *Node) tokenSearch(token uint32) int {
	return sort.Search(len(n.tokenChildren), func(i int) bool {
		return n.tokenChildren[i].Token >= token
	})
}

// FindTokenChild performs a binary search for the child labeled token.
func (n *Node) FindTokenChild(token uint32) (*Node, bool) {
	i := n.tokenSearch(token)
	if i < len(n.tokenChildren) && n.tokenChildren[i].Token == token {
		return n.tokenChildren[i], true
	}
	return nil, false
}

// EnsureTokenChild returns the existing child labeled token, or inserts a
// new one at its sorted position, keeping Token values strictly ascending.
// It reports whether a new node was created.
func (n *Node) EnsureTokenChild(token uint32) (child *Node, created bool) {
	i := n.tokenSearch(token)
	if i < len(n.tokenChildren) && n.tokenChildren[i].Token == token {
		return n.tokenChildren[i], false
	}
	child = NewTokenNode(token)
	n.tokenChildren = append(n.tokenChildren, nil)
	copy(n.tokenChildren[i+1:], n.tokenChildren[i:])
	n.tokenChildren[i] = child
	return child, true
}
