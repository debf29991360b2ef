// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package functions contains the Go implementations of the members exposed by the
// importable namespaces and by the builtin scope. Functions take the value they
// operate on as their first argument so that they read naturally in stage
// expressions, e.g. strings.trim_prefix(?, "v").
package functions
