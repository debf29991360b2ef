// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements the output of a pipeline, sending the text
// representation of every result to the given io.Writer instance.
// Results are written back to back, with no separator, because each of them
// usually carries the terminator of the line it was computed from.
package writer
