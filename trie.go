// Copyright 2023 Peter Hebert. Licensed under the MIT license.

// Package fsmtrie provides a trie-based dictionary supporting exact match,
// bounded-prefix match, bounded optimal-string-alignment approximate match,
// and Aho-Corasick multi-pattern substring search.
//
// A Trie operates in exactly one [Mode], fixed at construction by [New]. In
// ModeASCII and ModeEASCII, keys are byte strings inserted with Insert and
// looked up with Search, Search is additionally available, and substring
// and approximate search are both available. In ModeToken, keys are
// sequences of uint32 values inserted with InsertToken and looked up with
// SearchToken; approximate and substring search are not available in that
// mode.
//
// fsmtrie is a single-threaded, in-memory structure: it has no persistence,
// performs no deletion, and does not support concurrent mutation. See
// SPEC_FULL.md in this module's repository for the full design.
package fsmtrie

import (
	"sync"

	"github.com/farsightsec/fsmtrie/internal/trienode"
)

// Trie is a trie-based dictionary. The zero value is not usable; construct
// one with [New].
type Trie struct {
	root         *trienode.Node
	mode         Mode
	maxLen       uint32
	partialMatch bool

	nodeCount uint64
	keyCount  uint64

	compiled  bool
	compileMu sync.Mutex

	lastErr string
}

// New initializes a Trie from cfg. It returns an error if cfg describes an
// invalid combination of settings (currently: PartialMatch with ModeToken).
func New(cfg Config) (*Trie, error) {
	t := &Trie{
		mode:         cfg.Mode,
		maxLen:       cfg.MaxLen,
		partialMatch: cfg.PartialMatch,
	}

	switch cfg.Mode {
	case ModeASCII:
		t.root = trienode.NewByteNode(asciiSize)
	case ModeEASCII:
		t.root = trienode.NewByteNode(easciiSize)
	case ModeToken:
		if cfg.PartialMatch {
			return nil, t.failf(ErrModeMismatch, "partial match not allowed for %s fsmtries", cfg.Mode)
		}
		t.root = trienode.NewTokenNode(0)
	default:
		return nil, t.failf(ErrModeMismatch, "unrecognized mode %q", cfg.Mode)
	}

	return t, nil
}

// Mode returns the trie's mode.
func (t *Trie) Mode() Mode {
	return t.mode
}

// NodeCount returns the number of non-root nodes in the trie.
func (t *Trie) NodeCount() uint64 {
	return t.nodeCount
}

// KeyCount returns the number of distinct keys inserted into the trie.
func (t *Trie) KeyCount() uint64 {
	return t.keyCount
}

// LastError returns the most recent error message recorded by a failed
// operation on this trie, or "" if none has occurred.
func (t *Trie) LastError() string {
	return t.lastErr
}

// ValidateKey reports whether key is acceptable for insertion into t: it
// must be non-empty, no longer than t's MaxLen (if set), and, in ModeASCII,
// composed only of bytes in 0..127. ModeEASCII imposes no byte-range check.
// ModeToken keys are not validated by this method; see InsertToken.
func (t *Trie) ValidateKey(key string) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}
	if key == "" {
		return t.failf(ErrInvalidKey, "empty key")
	}
	if t.maxLen > 0 && uint32(len(key)) > t.maxLen {
		return t.failf(ErrInvalidKey, "key too long (%d > %d)", len(key), t.maxLen)
	}
	if t.mode == ModeASCII {
		for i := 0; i < len(key); i++ {
			if key[i] > 127 {
				return t.failf(ErrInvalidKey, "%q value at position %d out of range", key[i], i)
			}
		}
	}
	return nil
}
