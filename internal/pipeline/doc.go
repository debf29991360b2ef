// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline builds and runs a pipeline of expressions.
// A pipeline is parsed from a single command string, where each stage is separated
// by the || token, and it is applied stage by stage to every line of an input
// sequence, threading the running value through the stages.
package pipeline
