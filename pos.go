package jsoncore

import "sort"

// position tracks the parser's current place in the input as a byte
// offset plus 1-based line/column, updated incrementally as bytes are
// consumed (spec §4.4: "\n advances the line counter and resets the
// column").
type position struct {
	offset int
	line   int
	column int
}

func startPosition() position {
	return position{offset: 0, line: 1, column: 1}
}

// advance moves the position past a single consumed byte b.
func (p position) advance(b byte) position {
	p.offset++
	if b == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	return p
}

// LineIndex resolves byte offsets to 1-based line/column pairs without a
// parse, by binary-searching over cached line-start offsets. This is the
// same technique the teacher library uses to convert a grammar-tool
// cursor into a human-readable location. Neither the parser (which tracks
// line/column incrementally through position) nor the CLI uses it; it is
// exported for callers that want a location for a byte offset that
// wasn't produced by walking the input themselves.
type LineIndex struct {
	input     []byte
	lineStart []int
}

// NewLineIndex builds a LineIndex over input. Construction is O(n).
func NewLineIndex(input []byte) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{input: input, lineStart: lineStart}
}

// LineCol returns the 1-based line and column for a byte offset.
func (li *LineIndex) LineCol(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.input) {
		offset = len(li.input)
	}
	idx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	lineStart := li.lineStart[idx]
	return idx + 1, offset - lineStart + 1
}
