// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package source provides the input of a pipeline as a lazy sequence of lines.
// Lines keep their terminators, and the input can be a file or the standard input.
package source
