// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"strings"

	"github.com/mia-platform/pype/internal/expr"
)

const (
	// Separator divides the stages of a command.
	Separator = "||"
	// Binding is the name of the running value inside a stage expression.
	Binding = "value"
	// DefaultPlaceholder marks where the running value is consumed in a stage.
	DefaultPlaceholder = "?"
)

// Stage is one normalized expression of a pipeline.
type Stage struct {
	// Segment is the trimmed text of the stage as written in the command.
	Segment string
	// Expression is the segment with every placeholder replaced by Binding.
	Expression string
}

// Parse splits command into its stages. A segment without any placeholder is
// wrapped into a call receiving the running value, so that a bare function name
// is applied to it; every placeholder is then replaced by Binding.
// Separators and placeholders inside string literals are part of the literal and
// are left untouched. An empty placeholder falls back to DefaultPlaceholder.
func Parse(command, placeholder string) []Stage {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	segments := split(command)
	stages := make([]Stage, 0, len(segments))
	for _, segment := range segments {
		stages = append(stages, normalize(segment, placeholder))
	}

	return stages
}

// split divides command on every Separator found outside string literals.
func split(command string) [][]expr.Segment {
	stages := [][]expr.Segment{{}}
	for _, segment := range expr.Segments(command) {
		if segment.Literal {
			stages[len(stages)-1] = append(stages[len(stages)-1], segment)
			continue
		}

		for idx, part := range strings.Split(segment.Text, Separator) {
			if idx > 0 {
				stages = append(stages, []expr.Segment{})
			}
			if part != "" {
				stages[len(stages)-1] = append(stages[len(stages)-1], expr.Segment{Text: part})
			}
		}
	}

	return stages
}

func normalize(segments []expr.Segment, placeholder string) Stage {
	raw := new(strings.Builder)
	normalized := new(strings.Builder)
	consumed := false
	for _, segment := range segments {
		raw.WriteString(segment.Text)
		if segment.Literal {
			normalized.WriteString(segment.Text)
			continue
		}

		if strings.Contains(segment.Text, placeholder) {
			consumed = true
		}
		normalized.WriteString(strings.ReplaceAll(segment.Text, placeholder, Binding))
	}

	if !consumed {
		normalized.WriteString("(" + Binding + ")")
	}

	return Stage{
		Segment:    strings.TrimSpace(raw.String()),
		Expression: strings.TrimSpace(normalized.String()),
	}
}
