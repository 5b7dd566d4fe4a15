// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

import (
	"container/list"

	"github.com/farsightsec/fsmtrie/internal/trienode"
)

// compile builds Aho-Corasick failure links and output bits over the whole
// trie via a breadth-first traversal, grounded on the same queue-based BFS
// shape as _examples/itgcl-ahocorasick's buildTrie. It is a no-op if the
// trie is already compiled.
//
// Guarded by compileMu so that concurrent first-substring-searches (the one
// sharing hazard the concurrency model calls out, see spec.md §5) can't
// race to mutate node Suffix/Output fields at the same time; Insert and the
// other search methods are not safe to call concurrently with anything and
// are not protected by this lock.
func (t *Trie) compile() {
	t.compileMu.Lock()
	defer t.compileMu.Unlock()
	if t.compiled {
		return
	}

	queue := list.New()

	t.root.Suffix = nil
	for _, child := range t.root.ByteChildren() {
		if child == nil {
			continue
		}
		child.Suffix = t.root
		child.Output = child.Leaf
		queue.PushBack(child)
	}

	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(*trienode.Node)
		children := front.ByteChildren()
		for b, child := range children {
			if child == nil {
				continue
			}
			queue.PushBack(child)

			child.Suffix = t.root
			for suffix := front.Suffix; suffix != nil; suffix = suffix.Suffix {
				if sc := suffix.ByteChild(byte(b)); sc != nil {
					child.Suffix = sc
					break
				}
			}
			child.Output = child.Leaf || child.Suffix.Output
		}
	}

	t.compiled = true
}

// SubstringCallback is invoked once per occurrence found by SearchSubstring,
// with the payload of the key that matched, an offset into the subject, and
// the cookie passed to SearchSubstring. The offset is the match's last byte
// position plus one, minus the payload's length: it is the key's zero-based
// starting offset when the payload is as long as the key (for example when
// the key itself is the payload), and a key stored without a payload reports
// the position just past its last byte.
type SubstringCallback func(payload string, offset int, cookie any)

// SearchSubstring scans subject for every occurrence of every key inserted
// into the trie, using Aho-Corasick. The first call after an Insert that adds
// a new key incurs a one-time compilation cost; subsequent calls reuse the
// compiled automaton until the next such Insert (inserting a key that is
// already present leaves the compiled automaton in place).
//
// At a given ending position, the longest match is reported first and
// shorter suffix matches follow, since the walk proceeds leaf, then
// failure-link, then failure-link again. Across positions, matches are
// reported in strictly increasing ending-position order, since the subject
// is scanned left to right.
//
// SearchSubstring is not available in ModeToken.
func (t *Trie) SearchSubstring(subject string, cb SubstringCallback, cookie any) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}
	if t.mode == ModeToken {
		return t.failf(ErrModeMismatch, "SearchSubstring() is incompatible with %s mode fsmtrie", t.mode)
	}

	if !t.compiled {
		t.compile()
	}

	node := t.root
	for i := 0; i < len(subject); i++ {
		b := subject[i]
		next := node.ByteChild(b)
		for next == nil {
			node = node.Suffix
			if node == nil {
				next = t.root
				break
			}
			next = node.ByteChild(b)
		}
		node = next

		if node.Output {
			for n := node; n != nil; n = n.Suffix {
				if !n.Leaf {
					continue
				}
				var payload string
				payloadLen := 0
				if n.Payload != nil {
					payload = *n.Payload
					payloadLen = len(payload)
				}
				offset := i + 1 - payloadLen
				cb(payload, offset, cookie)
			}
		}
	}
	return nil
}
