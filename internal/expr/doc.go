// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package expr compiles and evaluates the expressions used by pipeline stages.
// Expressions are written in the Risor scripting language, restricted to
// expressions, and run on the Risor virtual machine against an explicit, read-only
// environment of global values plus a set of per-evaluation bindings. Results are
// converted to plain Go values: nil, bool, int64, float64, string, []any and
// map[string]any.
package expr
