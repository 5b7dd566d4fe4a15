// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

import (
	"github.com/farsightsec/fsmtrie/internal/trienode"
)

// ApproxCallback is invoked once per trie key whose optimal-string-alignment
// distance from the query lies within the search bound, with the matched
// key's payload, the computed distance, and the cookie passed to
// SearchApprox.
type ApproxCallback func(payload string, dist int, cookie any)

// simEntry is one (query column, edit-distance value) pair in a sparse
// dynamic-programming row; each row belongs to one trie depth.
type simEntry struct {
	index int
	value int
}

// approxSearch holds the single contiguous arena backing every row of the
// bounded edit-distance table for one SearchApprox call, plus the query and
// bound. Rows are packed back to back in the arena: row i+1 always begins
// immediately after row i ends, and since only one root-to-node path is
// being explored at any instant during the depth-first walk, sibling
// subtrees safely reuse the same arena region for their own row i+1 once
// the previous sibling's subtree has finished with it.
type approxSearch struct {
	key      []byte
	keyLen   int
	maxDist  int
	maxLen   int
	arena    []simEntry
	cb       ApproxCallback
	cookie   any
}

// SearchApprox reports every key in the trie whose optimal-string-alignment
// distance (Levenshtein distance extended to count an adjacent
// transposition as a single edit) from key is at most maxDist. It requires
// the trie to have been constructed with a nonzero MaxLen, since that bound
// sizes the search's scratch arena, and is not available in ModeToken.
func (t *Trie) SearchApprox(key string, maxDist int, cb ApproxCallback, cookie any) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}
	if t.maxLen == 0 {
		return t.failf(ErrMissingPrecondition, "SearchApprox() requires fsmtrie to be initialized with MaxLen")
	}
	if t.mode == ModeToken {
		return t.failf(ErrModeMismatch, "SearchApprox() is incompatible with %s mode fsmtrie", t.mode)
	}

	maxLen := int(t.maxLen)
	arenaCap := (2*maxDist + 1) * (maxLen + 1)

	s := &approxSearch{
		key:     []byte(key),
		keyLen:  len(key),
		maxDist: maxDist,
		maxLen:  maxLen,
		arena:   make([]simEntry, arenaCap),
		cb:      cb,
		cookie:  cookie,
	}

	rowLen := 0
	for j := 0; j <= maxDist && j < maxLen; j++ {
		s.arena[rowLen] = simEntry{index: j, value: j}
		rowLen++
	}

	s.descend(t.root, 0, 0, rowLen, 0, 0, 0)
	return nil
}

// descend walks one node of the trie at the given depth, whose row-depth
// sparse DP row occupies arena[rowStart:rowStart+rowLen]; the row for
// depth-1 (needed only for the transposition check) occupies
// arena[prevStart:prevStart+prevLen]. lastChar is the symbol that led from
// the parent of node to node (0, unused, at depth 0).
func (s *approxSearch) descend(node *trienode.Node, depth, rowStart, rowLen, prevStart, prevLen int, lastChar byte) {
	nextStart := rowStart + rowLen

	children := node.ByteChildren()
	for c, child := range children {
		if child == nil {
			continue
		}
		symbol := byte(c)
		cursor := nextStart

		if depth < s.maxDist {
			s.arenaAppend(&cursor, 0, depth+1)
		}

		for j := 0; j < rowLen; j++ {
			entry := s.arena[rowStart+j]
			index, value := entry.index, entry.value

			cost := 1
			if index < s.keyLen && s.key[index] == symbol {
				cost = 0
			}
			dist := value + cost

			// insertion into the query: previously appended entry in row depth+1
			if cursor > nextStart {
				prev := s.arena[cursor-1]
				if prev.index == index && prev.value+1 < dist {
					dist = prev.value + 1
				}
			}

			// deletion from the query: entry directly "above" in row depth
			if j+1 < rowLen {
				above := s.arena[rowStart+j+1]
				if above.index == index+1 && above.value+1 < dist {
					dist = above.value + 1
				}
			}

			// adjacent transposition, counted as a single edit
			if depth > 0 && index > 0 && index < s.keyLen &&
				s.key[index] == lastChar && s.key[index-1] == symbol {
				for k := 0; k < prevLen; k++ {
					diag := s.arena[prevStart+k]
					if diag.index >= index {
						break
					}
					if diag.index == index-1 && diag.value+1 < dist {
						dist = diag.value + 1
					}
				}
			}

			if dist <= s.maxDist && index < s.keyLen {
				s.arenaAppend(&cursor, index+1, dist)
			}
		}

		nextLen := cursor - nextStart
		if nextLen == 0 {
			// Adding this character pushed every candidate alignment over
			// the bound; prune this subtree.
			continue
		}

		if child.Leaf {
			last := s.arena[cursor-1]
			if last.index == s.keyLen {
				var payload string
				if child.Payload != nil {
					payload = *child.Payload
				}
				s.cb(payload, last.value, s.cookie)
			}
		}

		if depth+1 < s.maxLen {
			s.descend(child, depth+1, nextStart, nextLen, rowStart, rowLen, symbol)
		}
	}
}

// arenaAppend writes (index, value) at *cursor and advances it. Overrunning
// the arena is a fatal invariant violation: the arena is sized from MaxDist
// and MaxLen specifically so that every in-bound row fits, so reaching the
// end means the bookkeeping above this call is broken, not that the input
// was unusual.
func (s *approxSearch) arenaAppend(cursor *int, index, value int) {
	if *cursor >= len(s.arena) {
		panic("fsmtrie: approximate search arena exhausted")
	}
	s.arena[*cursor] = simEntry{index: index, value: value}
	*cursor++
}
