// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package expr

// Segment is a run of source text that is either code or a single quoted, double
// quoted or backtick template literal, quotes included.
type Segment struct {
	Text    string
	Literal bool
}

// Segments splits source into alternating runs of code and string literals, so that
// textual rewrites can skip the content of literals. An unterminated literal extends
// to the end of source.
func Segments(source string) []Segment {
	segments := make([]Segment, 0, 1)
	codeStart := 0
	for idx := 0; idx < len(source); idx++ {
		switch source[idx] {
		case '"', '\'', '`':
			if idx > codeStart {
				segments = append(segments, Segment{Text: source[codeStart:idx]})
			}

			end := literalEnd(source, idx)
			if end < 0 {
				end = len(source) - 1
			}
			segments = append(segments, Segment{Text: source[idx : end+1], Literal: true})
			idx = end
			codeStart = end + 1
		}
	}

	if codeStart < len(source) {
		segments = append(segments, Segment{Text: source[codeStart:]})
	}

	return segments
}

// literalEnd returns the offset of the quote closing the literal opened at start,
// or -1 when the literal is not terminated. Backslash escapes are honoured except in
// backtick templates.
func literalEnd(source string, start int) int {
	quote := source[start]
	for idx := start + 1; idx < len(source); idx++ {
		switch source[idx] {
		case '\\':
			if quote != '`' {
				idx++
			}
		case quote:
			return idx
		}
	}

	return -1
}
