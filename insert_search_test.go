// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie_test

import (
	"testing"

	"github.com/farsightsec/fsmtrie"
	"github.com/stretchr/testify/require"
)

func TestInsertAndSearchASCIIPartialMatch(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{
		Mode:         fsmtrie.ModeASCII,
		MaxLen:       64,
		PartialMatch: true,
	})
	require.NoError(t, err)

	keys := []string{
		"foo", "bar", "baz", "brad", "brady", "foobarbaz",
		"farsightsecurity", "fsi", "fsizn", "love", "hate", "dogs",
		"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, k))
	}

	for _, k := range keys {
		found, payload, err := tr.Search(k)
		require.NoError(t, err)
		require.True(t, found, "key %q", k)
		require.Equal(t, k, payload)
	}

	for _, miss := range []string{"FAIL-1", "FAIL-2", "FAIL-3", "cats", "bradyy"} {
		found, _, err := tr.Search(miss)
		require.NoError(t, err)
		require.False(t, found, "key %q", miss)
	}

	for _, partial := range []string{"lov", "hat", "foob", "farsightsecurit"} {
		found, payload, err := tr.Search(partial)
		require.NoError(t, err)
		require.True(t, found, "key %q", partial)
		require.Equal(t, "", payload)
	}
}

func TestInsertAndSearchEASCIIUTF8(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{
		Mode:         fsmtrie.ModeEASCII,
		PartialMatch: true,
	})
	require.NoError(t, err)

	keys := []string{"ϜɑᚱՏᎥԌᎻᎢ", "rԱϺᎥ", "ѡіΝᛕᏞĚＮ"}
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, k))
	}
	for _, k := range keys {
		found, payload, err := tr.Search(k)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, k, payload)
	}

	for _, miss := range []string{"FAIL-1", "FAIL-2", "FAIL-3", "farsightsecurit", "cats", "bradyy", "hat"} {
		found, _, err := tr.Search(miss)
		require.NoError(t, err)
		require.False(t, found)
	}

	for _, partial := range []string{"ϜɑᚱՏᎥ", "rԱϺ", "ѡіΝᛕ"} {
		found, payload, err := tr.Search(partial)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "", payload)
	}
}

func TestInsertRejectsKeysOverMaxLength(t *testing.T) {
	longest := "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	tr, err := fsmtrie.New(fsmtrie.Config{
		Mode:   fsmtrie.ModeASCII,
		MaxLen: uint32(len(longest)),
	})
	require.NoError(t, err)

	require.NoError(t, tr.Insert(longest, longest))
	require.Error(t, tr.Insert(longest+"x", ""))
	require.Error(t, tr.Insert(longest+"xx", ""))
	require.Error(t, tr.Insert(longest+"xxx", ""))

	found, payload, err := tr.Search(longest)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, longest, payload)

	// Without PartialMatch, a shorter prefix is not found.
	found, _, err = tr.Search(longest[:10])
	require.NoError(t, err)
	require.False(t, found)
}

func TestInsertAndSearchToken(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeToken, MaxLen: 10})
	require.NoError(t, err)

	sequences := [][]uint32{
		{2370247590, 1095180747, 74714336, 3949875523, 1491746051,
			3884494044, 225220230, 4025198788, 2517868197, 880604605},
		{95487574, 1409786191, 193961985, 3871872763, 167319551,
			3652317314, 3835276744, 2979764266, 2736512810, 595523817},
		{1111211003, 1238082513, 3063407297, 2604351, 209841200,
			583699085, 1198663276, 576252664, 2278303155, 3116239803},
	}
	names := []string{"t1", "t2", "t3"}

	for i, seq := range sequences {
		require.NoError(t, tr.InsertToken(seq, names[i]))
	}
	for i, seq := range sequences {
		found, payload, err := tr.SearchToken(seq)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, names[i], payload)
	}

	for _, seq := range sequences {
		mutated := append([]uint32(nil), seq...)
		mutated[0]++
		found, _, err := tr.SearchToken(mutated)
		require.NoError(t, err)
		require.False(t, found)
	}
}

func TestInsertTokenRejectsWrongMode(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeASCII})
	require.NoError(t, err)
	require.Error(t, tr.InsertToken([]uint32{1, 2, 3}, ""))

	tokenTr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeToken})
	require.NoError(t, err)
	require.Error(t, tokenTr.Insert("foo", ""))
}

func TestDuplicateInsertIsSilentNoOp(t *testing.T) {
	tr, err := fsmtrie.New(fsmtrie.Config{Mode: fsmtrie.ModeASCII})
	require.NoError(t, err)

	require.NoError(t, tr.Insert("foo", "first"))
	require.NoError(t, tr.Insert("foo", "second"))

	_, payload, err := tr.Search("foo")
	require.NoError(t, err)
	require.Equal(t, "first", payload)
	require.EqualValues(t, 1, tr.KeyCount())
}
