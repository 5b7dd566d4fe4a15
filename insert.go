// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

// Insert adds key to the trie with the given payload, which is stored
// verbatim at the leaf and returned by a later Search. Insert is only valid
// for ModeASCII and ModeEASCII tries; use InsertToken for ModeToken.
//
// Inserting a key that already exists is a silent no-op: neither the key
// count nor the stored payload changes, matching the original library's
// fsmtrie_insert behavior.
//
// Validation happens before any mutation, so a rejected key leaves the trie
// unchanged.
func (t *Trie) Insert(key, payload string) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}
	if t.mode != ModeASCII && t.mode != ModeEASCII {
		return t.failf(ErrModeMismatch, "Insert() is incompatible with %s mode fsmtrie", t.mode)
	}
	if err := t.ValidateKey(key); err != nil {
		return err
	}

	node := t.root
	for i := 0; i < len(key); i++ {
		child, created := node.EnsureByteChild(key[i])
		if created {
			t.nodeCount++
		}
		node = child
	}

	if node.Leaf {
		// Duplicate key: silent success, first payload wins, AC metadata
		// untouched because nothing about the trie's structure changed.
		return nil
	}

	node.Leaf = true
	if payload != "" {
		node.Payload = &payload
	}
	t.compiled = false
	t.keyCount++
	return nil
}

// InsertToken adds the token sequence key to the trie with the given
// payload. InsertToken is only valid for ModeToken tries.
func (t *Trie) InsertToken(key []uint32, payload string) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}
	if t.mode != ModeToken {
		return t.failf(ErrModeMismatch, "InsertToken() is incompatible with %s mode fsmtrie", t.mode)
	}
	if len(key) == 0 {
		return t.failf(ErrInvalidKey, "empty key")
	}
	if t.maxLen > 0 && uint32(len(key)) > t.maxLen {
		return t.failf(ErrInvalidKey, "token string too long (%d > %d)", len(key), t.maxLen)
	}

	node := t.root
	for _, tok := range key {
		child, created := node.EnsureTokenChild(tok)
		if created {
			t.nodeCount++
		}
		node = child
	}

	if node.Leaf {
		return nil
	}

	node.Leaf = true
	if payload != "" {
		node.Payload = &payload
	}
	t.compiled = false
	t.keyCount++
	return nil
}
