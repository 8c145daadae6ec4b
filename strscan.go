package jsoncore

import (
	"errors"

	"github.com/clarete/jsoncore/internal/simd"
)

var (
	errInvalidUnicodeEscape = errors.New("invalid \\u escape")
	errUnpairedSurrogate    = errors.New("unpaired UTF-16 surrogate in \\u escape")
)

// parseString implements spec §4.4's two-pass string decode. The first
// pass walks the quoted body using the scan_string primitive to skip runs
// of plain bytes, validating every escape sequence it encounters
// (including \uXXXX surrogate pairs) and computing the final decoded byte
// length without writing anything out. Only if an escape was actually
// present does a second pass run, writing the decoded bytes into either
// the node's inline short-string slot or a freshly reserved string-arena
// span (spec §4.4: "allocation decision depends on whether escapes were
// present and on final length").
func (p *parser) parseString() (nodeRef, error) {
	start := p.pos
	bodyStart := start.offset + 1 // skip opening quote

	decodedLen, hasEscapes, end, err := p.scanStringBody(bodyStart)
	if err != nil {
		return nilRef, err
	}

	ref := p.nodes.alloc()
	n := p.nodes.at(ref)

	if !hasEscapes && decodedLen <= maxShortStringLen {
		n.tag = KindShortString
		n.smallLen = uint8(decodedLen)
		copy(n.small[:decodedLen], p.src[bodyStart:bodyStart+decodedLen])
	} else if !hasEscapes {
		n.tag = KindLongString
		n.strLen = uint32(decodedLen)
		offset, dst := p.strs.reserve(decodedLen)
		n.strOffset = uint32(offset)
		copy(dst, p.src[bodyStart:bodyStart+decodedLen])
	} else {
		dst := make([]byte, decodedLen)
		if err := decodeEscapes(p.src[bodyStart:end], dst); err != nil {
			return nilRef, p.errorAtOffset(ErrorString, bodyStart, err.Error())
		}
		if decodedLen <= maxShortStringLen {
			n.tag = KindShortString
			n.smallLen = uint8(decodedLen)
			copy(n.small[:decodedLen], dst)
		} else {
			n.tag = KindLongString
			n.strLen = uint32(decodedLen)
			offset, out := p.strs.reserve(decodedLen)
			n.strOffset = uint32(offset)
			copy(out, dst)
		}
	}

	// end points one byte past the closing quote.
	p.advanceN(end + 1 - start.offset)
	return ref, nil
}

// scanStringBody validates and measures a string body starting just past
// the opening quote, returning the decoded byte length, whether any
// escape sequence was present, and the absolute offset of the closing
// quote. It never allocates; the decode pass (decodeEscapes) is a second,
// separate walk run only when needed.
func (p *parser) scanStringBody(bodyStart int) (decodedLen int, hasEscapes bool, quoteOffset int, err error) {
	i := bodyStart
	for {
		if i >= len(p.src) {
			return 0, false, 0, p.errorAtOffset(ErrorString, i, "unterminated string")
		}
		skip := simd.ScanString(p.src[i:])
		decodedLen += skip
		i += skip
		if i >= len(p.src) {
			return 0, false, 0, p.errorAtOffset(ErrorString, i, "unterminated string")
		}
		c := p.src[i]
		if c == '"' {
			return decodedLen, hasEscapes, i, nil
		}
		if c < 0x20 {
			return 0, false, 0, p.errorAtOffset(ErrorString, i, "raw control byte in string")
		}
		// c == '\\'
		hasEscapes = true
		i++
		if i >= len(p.src) {
			return 0, false, 0, p.errorAtOffset(ErrorString, i, "unterminated escape")
		}
		switch p.src[i] {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			decodedLen++
			i++
		case 'u':
			n, newI, uerr := scanUnicodeEscape(p.src, i+1)
			if uerr != nil {
				return 0, false, 0, p.errorAtOffset(ErrorString, i-1, uerr.Error())
			}
			decodedLen += n
			i = newI
		default:
			return 0, false, 0, p.errorAtOffset(ErrorString, i, "invalid escape character")
		}
	}
}

// scanUnicodeEscape validates one or two \uXXXX forms starting right
// after the 'u' at src[at:at+4], combining a UTF-16 surrogate pair into a
// single code point per spec §4.4 ("D800-DBFF + DC00-DFFF combine via
// 0x10000 + ((hi-0xD800)<<10) + (lo-0xDC00)"). Returns the number of UTF-8
// bytes the code point will occupy and the offset just past what it
// consumed.
func scanUnicodeEscape(src []byte, at int) (utf8Len int, next int, err error) {
	hi, ok := hex4(src, at)
	if !ok {
		return 0, 0, errInvalidUnicodeEscape
	}
	at += 4

	if hi >= 0xD800 && hi <= 0xDBFF {
		if at+1 >= len(src) || src[at] != '\\' || src[at+1] != 'u' {
			return 0, 0, errUnpairedSurrogate
		}
		lo, ok := hex4(src, at+2)
		if !ok || lo < 0xDC00 || lo > 0xDFFF {
			return 0, 0, errUnpairedSurrogate
		}
		cp := 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
		return utf8EncodedLen(cp), at + 6, nil
	}
	if hi >= 0xDC00 && hi <= 0xDFFF {
		return 0, 0, errUnpairedSurrogate
	}
	return utf8EncodedLen(hi), at, nil
}

func hex4(src []byte, at int) (int, bool) {
	if at+4 > len(src) {
		return 0, false
	}
	v := 0
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(src[at+i])
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

func utf8EncodedLen(cp int) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

// decodeEscapes runs the second pass: body is the raw source bytes
// between the quotes (escapes still encoded), dst is exactly as long as
// the decoded string scanStringBody computed. Simple escapes map to their
// canonical single byte (spec §9 resolves the "t" ambiguity to the
// canonical 0x09 tab, not the spec text's typo'd 0x0A); \uXXXX forms
// (and surrogate pairs) are UTF-8 encoded in place without being
// validated again, since scanStringBody has already rejected bad ones.
func decodeEscapes(body []byte, dst []byte) error {
	i, o := 0, 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			dst[o] = c
			o++
			i++
			continue
		}
		i++
		switch body[i] {
		case '"':
			dst[o] = '"'
		case '\\':
			dst[o] = '\\'
		case '/':
			dst[o] = '/'
		case 'b':
			dst[o] = 0x08
		case 'f':
			dst[o] = 0x0C
		case 'n':
			dst[o] = 0x0A
		case 'r':
			dst[o] = 0x0D
		case 't':
			dst[o] = 0x09
		case 'u':
			hi, _ := hex4(body, i+1)
			i += 5
			cp := hi
			if hi >= 0xD800 && hi <= 0xDBFF {
				lo, _ := hex4(body, i+2)
				cp = 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
				i += 6
			}
			o += encodeUTF8(dst[o:], cp)
			continue
		}
		o++
		i++
	}
	return nil
}

func encodeUTF8(dst []byte, cp int) int {
	switch {
	case cp < 0x80:
		dst[0] = byte(cp)
		return 1
	case cp < 0x800:
		dst[0] = byte(0xC0 | cp>>6)
		dst[1] = byte(0x80 | cp&0x3F)
		return 2
	case cp < 0x10000:
		dst[0] = byte(0xE0 | cp>>12)
		dst[1] = byte(0x80 | (cp>>6)&0x3F)
		dst[2] = byte(0x80 | cp&0x3F)
		return 3
	default:
		dst[0] = byte(0xF0 | cp>>18)
		dst[1] = byte(0x80 | (cp>>12)&0x3F)
		dst[2] = byte(0x80 | (cp>>6)&0x3F)
		dst[3] = byte(0x80 | cp&0x3F)
		return 4
	}
}
