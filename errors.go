// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// These errors can be returned by functions in this package. Errors are
// returned either as the bare sentinel or wrapped with pkg/errors; use
// [errors.Is] to check for the underlying sentinel.
var (
	ErrUninitialized       = errors.New("fsmtrie: uninitialized trie")
	ErrInvalidKey          = errors.New("fsmtrie: invalid key")
	ErrModeMismatch        = errors.New("fsmtrie: mode mismatch")
	ErrMissingPrecondition = errors.New("fsmtrie: missing precondition")
)

// fail stashes err's message into the trie's last-error slot (mirroring
// fsmtrie_get_error from the original library) and returns err unchanged so
// callers can write `return t.fail(err)`. The stack attached by pkg/errors
// is discarded from the stashed message (callers of LastError only ever saw
// a flat string in the original API) but is preserved on the returned error
// for anyone inspecting it with fmt's %+v.
func (t *Trie) fail(err error) error {
	t.lastErr = err.Error()
	return err
}

// failf wraps the given sentinel with a pkg/errors-annotated message and
// reason, then stashes and returns it via fail.
func (t *Trie) failf(sentinel error, format string, args ...any) error {
	return t.fail(pkgerrors.Wrapf(sentinel, format, args...))
}
