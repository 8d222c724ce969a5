package textinterp

import (
	"fmt"
	"strings"
)

// canonicalEscapes maps a code point back to its single-character C escape,
// mirroring singleEscapes in reverse (spec.md §4.2.3).
var canonicalEscapes = map[rune]byte{
	'\'': '\'', '"': '"', '\\': '\\',
	'\a': 'a', '\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't', '\v': 'v',
}

// Encode produces a portable, ASCII-safe C-literal body for d: the three
// characters requiring escape ("'\) and the control characters that have one
// (\a \b \f \n \r \t \v) use their canonical single-character escape form,
// other code points below 0x20 use \xHH, and code points from 0x7F up use
// \uHHHH (or \UHHHHHHHH above the BMP). If maxLen is non-zero, the output
// is truncated at the escape boundary so no escape sequence is ever split
// (spec.md §4.2.3).
func Encode(d Decoded, maxLen int) string {
	runes := toRunes(d)

	var sb strings.Builder
	for _, r := range runes {
		var piece string
		switch {
		case canonicalEscapes[r] != 0:
			piece = "\\" + string(canonicalEscapes[r])
		case r < 0x20:
			piece = fmt.Sprintf("\\x%02X", r)
		case r < 0x7F:
			piece = string(r)
		case r <= 0xFFFF:
			piece = fmt.Sprintf("\\u%04X", r)
		default:
			piece = fmt.Sprintf("\\U%08X", r)
		}

		if maxLen > 0 && sb.Len()+len(piece) > maxLen {
			break
		}
		sb.WriteString(piece)
	}
	return sb.String()
}

// toRunes normalizes any Decoded payload (including a UTF-16 surrogate
// stream) back into a flat code-point sequence for encoding.
func toRunes(d Decoded) []rune {
	switch d.Encoding {
	case ASCII, UTF8:
		return []rune(d.Narrow)
	case UTF32, Wide:
		return d.Wide32
	case UTF16:
		var out []rune
		units := d.Wide16
		for i := 0; i < len(units); i++ {
			u := units[i]
			if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
				lo := units[i+1]
				if lo >= 0xDC00 && lo <= 0xDFFF {
					r := (rune(u)-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000
					out = append(out, r)
					i++
					continue
				}
			}
			out = append(out, rune(u))
		}
		return out
	default:
		return nil
	}
}
