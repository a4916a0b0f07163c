// If you are AI: This file decodes Java-style modified UTF-8, the string
// encoding AMF3 payloads carry. It is not strict UTF-8.

package amf

import (
	"unicode/utf16"
)

// decodeModifiedUTF8 converts modified UTF-8 bytes into a Go string. The
// dialect only has 1-, 2- and 3-byte sequences; supplementary code points
// arrive as surrogate pairs of two 3-byte sequences, which are combined
// here. Four-byte UTF-8 sequences are rejected, and unpaired surrogates
// decode to U+FFFD. Errors cite the offset of the offending sequence start
// within raw.
func decodeModifiedUTF8(raw []byte) (string, error) {
	units := make([]uint16, 0, len(raw))
	pos := 0
	for pos < len(raw) {
		c1 := int(raw[pos])
		pos++
		if c1 <= 0x7F {
			units = append(units, uint16(c1))
			continue
		}
		switch c1 >> 4 {
		case 12, 13:
			if pos >= len(raw) {
				return "", &MalformedUTF8Error{Offset: pos - 1}
			}
			c2 := int(raw[pos])
			pos++
			if c2&0xC0 != 0x80 {
				return "", &MalformedUTF8Error{Offset: pos - 2}
			}
			units = append(units, uint16((c1&0x1F)<<6|c2&0x3F))
		case 14:
			if pos+1 >= len(raw) {
				return "", &MalformedUTF8Error{Offset: pos - 1}
			}
			c2 := int(raw[pos])
			c3 := int(raw[pos+1])
			pos += 2
			if c2&0xC0 != 0x80 || c3&0xC0 != 0x80 {
				return "", &MalformedUTF8Error{Offset: pos - 3}
			}
			units = append(units, uint16((c1&0x0F)<<12|(c2&0x3F)<<6|c3&0x3F))
		default:
			return "", &MalformedUTF8Error{Offset: pos - 1}
		}
	}
	return string(utf16.Decode(units)), nil
}
