package jsoncore

import (
	"math"

	"github.com/clarete/jsoncore/internal/simd"
)

// parseNumber consumes an RFC 8259 number starting at p.pos and returns
// the reference of a new KindInt or KindFloat node, or a number error.
// It enforces the grammar strictly: a lone "0" or "[1-9][0-9]*" integer
// part, an optional ".[0-9]+" fraction, an optional "[eE][+-]?[0-9]+"
// exponent. Integer overflow past int64 range transparently promotes to
// float, matching spec §4.4.
func (p *parser) parseNumber() (nodeRef, error) {
	start := p.pos
	text := p.src[start.offset:]
	i := 0

	if i < len(text) && text[i] == '-' {
		i++
	}

	if i >= len(text) || !isDigit(text[i]) {
		return nilRef, p.errorAt(ErrorNumber, start, "expected digit")
	}
	if text[i] == '0' {
		i++
		if i < len(text) && isDigit(text[i]) {
			return nilRef, p.errorAtOffset(ErrorNumber, start.offset+i, "leading zero in multi-digit integer")
		}
	} else {
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}

	isFloat := false

	if i < len(text) && text[i] == '.' {
		isFloat = true
		i++
		fracStart := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == fracStart {
			return nilRef, p.errorAtOffset(ErrorNumber, start.offset+i, "expected digit after '.'")
		}
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		isFloat = true
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		expStart := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == expStart {
			return nilRef, p.errorAtOffset(ErrorNumber, start.offset+i, "expected digit in exponent")
		}
	}

	lexeme := text[:i]
	p.advanceN(i)

	if !isFloat {
		if iv, consumed := simd.ParseIntLane(lexeme, len(lexeme)); consumed == len(lexeme) && withinIntPayload(iv) {
			return p.newInt(iv), nil
		}
		// Overflowed either the 60-bit payload or int64 itself (which
		// parse_int_lane reports as consumed == 0): fall through to float
		// conversion (spec §4.4, §8 boundary case).
	}

	fv, err := simd.ParseFloat(lexeme)
	if err != nil || math.IsNaN(fv) || math.IsInf(fv, 0) {
		return nilRef, p.errorAtOffset(ErrorNumber, start.offset, "number out of range")
	}
	return p.newFloat(fv), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// maxIntPayload is the largest magnitude the 60-bit integer payload slot
// can hold (spec §8: "Integer at ±(2^60 - 1): stored as int; one past:
// stored as float"). Values within int64 range but past this magnitude
// still promote to float, even though this implementation's node.child
// field is a full 64-bit word: the boundary is part of the documented,
// testable behavior, not an artifact of the original 60-bit packed slot.
const maxIntPayload = int64(1)<<60 - 1

func withinIntPayload(v int64) bool {
	return v <= maxIntPayload && v >= -maxIntPayload
}
