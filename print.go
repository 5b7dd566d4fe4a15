// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

import (
	"fmt"
	"io"

	"github.com/farsightsec/fsmtrie/internal/trienode"
)

// PrintLeaves writes a debug dump of the trie's contents to w, one line per
// entry as described below.
//
// In ModeASCII and ModeEASCII, a line is written only for leaves, each
// showing the reconstructed key and its payload. In ModeToken, a line is
// written for every node visited, leaf or not, showing the token path to
// that node and, when the node is a leaf, its payload; this mirrors the
// original library's token-mode debug dump, which has no notion of
// "interior node" worth hiding from the operator tracing a token path.
func (t *Trie) PrintLeaves(w io.Writer) error {
	if t.root == nil {
		return t.fail(ErrUninitialized)
	}

	switch t.mode {
	case ModeASCII, ModeEASCII:
		printByteLeaves(w, t.root, nil)
	case ModeToken:
		printTokenNodes(w, t.root, nil)
	default:
		return t.failf(ErrModeMismatch, "PrintLeaves() is incompatible with %s mode fsmtrie", t.mode)
	}
	return nil
}

func printByteLeaves(w io.Writer, node *trienode.Node, prefix []byte) {
	if node.Leaf {
		payload := ""
		if node.Payload != nil {
			payload = *node.Payload
		}
		fmt.Fprintf(w, "%s\t%s\n", prefix, payload)
	}
	for b, child := range node.ByteChildren() {
		if child == nil {
			continue
		}
		printByteLeaves(w, child, append(prefix, byte(b)))
	}
}

func printTokenNodes(w io.Writer, node *trienode.Node, path []uint32) {
	if len(path) > 0 {
		payload := ""
		if node.Payload != nil {
			payload = *node.Payload
		}
		if node.Leaf {
			fmt.Fprintf(w, "%v\t%s\n", path, payload)
		} else {
			fmt.Fprintf(w, "%v\n", path)
		}
	}
	for i := 0; i < node.TokenChildCount(); i++ {
		child := node.TokenChildAt(i)
		printTokenNodes(w, child, append(path, child.Token))
	}
}
