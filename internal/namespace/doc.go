// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package namespace resolves the namespaces requested on the command line into the
// immutable Mapping that stage expressions are evaluated against.
// Namespaces cannot be loaded at run time, so every importable namespace is compiled
// in and registered by name; resolving a name builds the namespace from its registry
// entry.
package namespace
