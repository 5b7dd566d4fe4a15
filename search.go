// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

// Search looks up key in the trie. It returns found=true if key (or, with
// PartialMatch enabled, a non-empty proper prefix of some inserted key)
// exists. payload is the string supplied at insertion time when the match
// terminates at a leaf, and "" for a partial-match hit on a non-leaf node or
// when no payload was supplied.
//
// Search is only valid for ModeASCII and ModeEASCII tries; use SearchToken
// for ModeToken.
func (t *Trie) Search(key string) (found bool, payload string, err error) {
	if t.root == nil {
		return false, "", t.fail(ErrUninitialized)
	}
	if key == "" {
		return false, "", t.failf(ErrInvalidKey, "empty key")
	}
	if t.mode != ModeASCII && t.mode != ModeEASCII {
		return false, "", t.failf(ErrModeMismatch, "Search() is incompatible with %s mode fsmtrie", t.mode)
	}

	node := t.root
	for i := 0; i < len(key); i++ {
		b := key[i]
		if t.mode == ModeASCII && b > 127 {
			return false, "", t.failf(ErrInvalidKey, "key value %d out of range", b)
		}
		next := node.ByteChild(b)
		if next == nil {
			return false, "", nil
		}
		node = next
	}

	if node.Leaf && node.Payload != nil {
		payload = *node.Payload
	}
	found = t.partialMatch || node.Leaf
	return found, payload, nil
}

// SearchToken looks up the token sequence key in the trie. ModeToken does
// not support partial matching, so found is true only at a leaf.
func (t *Trie) SearchToken(key []uint32) (found bool, payload string, err error) {
	if t.root == nil {
		return false, "", t.fail(ErrUninitialized)
	}
	if len(key) == 0 {
		return false, "", t.failf(ErrInvalidKey, "empty key or keylen")
	}
	if t.mode != ModeToken {
		return false, "", t.failf(ErrModeMismatch, "SearchToken() is incompatible with %s mode fsmtrie", t.mode)
	}

	node := t.root
	for _, tok := range key {
		next, ok := node.FindTokenChild(tok)
		if !ok {
			return false, "", nil
		}
		node = next
	}

	if node.Leaf && node.Payload != nil {
		payload = *node.Payload
	}
	found = node.Leaf
	return found, payload, nil
}
