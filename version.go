// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package fsmtrie

// Version is the semantic version of this package. Unlike the original C
// library, no compatibility logic is built around it.
const Version = "1.0.0"
