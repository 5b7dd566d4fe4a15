// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie_test

import (
	"errors"
	"testing"

	"github.com/farsightsec/fsmtrie"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsPartialMatchWithTokenMode(t *testing.T) {
	_, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeToken, PartialMatch: true})
	require.Error(t, err)
	require.True(t, errors.Is(err, fsmtrie.ErrModeMismatch))
}

func TestZeroValueConfigYieldsUsableASCIITrie(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{})
	require.NoError(t, err)
	require.Equal(t, fsmtrie.ModeASCII, tr.Mode())

	require.NoError(t, tr.Insert("hello", "world"))
	found, payload, err := tr.Search("hello")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "world", payload)
}

func TestValidateKeyRejectsEmptyTooLongAndNonASCII(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeASCII, MaxLen: 4})
	require.NoError(t, err)

	require.Error(t, tr.ValidateKey(""))
	require.Error(t, tr.ValidateKey("toolong"))
	require.Error(t, tr.ValidateKey(string([]byte{200})))
	require.NoError(t, tr.ValidateKey("ok"))
}

func TestNodeAndKeyCountsTrackInsertions(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeASCII})
	require.NoError(t, err)

	require.NoError(t, tr.Insert("cat", ""))
	require.NoError(t, tr.Insert("cats", ""))
	require.EqualValues(t, 2, tr.KeyCount())
	require.EqualValues(t, 4, tr.NodeCount())

	// Duplicate insert: counts unchanged.
	require.NoError(t, tr.Insert("cat", "ignored"))
	require.EqualValues(t, 2, tr.KeyCount())
	require.EqualValues(t, 4, tr.NodeCount())

	found, payload, err := tr.Search("cat")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "", payload)
}

func TestLastErrorRecordsMostRecentFailure(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeASCII})
	require.NoError(t, err)
	require.Equal(t, "", tr.LastError())

	_, _, err = tr.Search("")
	require.Error(t, err)
	require.NotEqual(t, "", tr.LastError())
}
