package pigment

import (
	"fmt"
	"strings"
)

// decodeHex turns the text of a hex color literal into an RGBA value.
// Accepted digit counts after prefix stripping are 3, 4, 6 and 8;
// 3- and 4-digit shorthand replicates each nibble into both positions
// of its byte.  The span anchors any diagnostic at the whole literal.
func decodeHex(text string, span Span) (RGBA, *Diagnostic) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "#")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return Fallback, newDiagnostic(DiagnosticKind_HexEmpty, span,
			"Hex string is empty")
	}

	digits := []rune(s)
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return Fallback, newDiagnostic(DiagnosticKind_HexUnsupportedLength, span,
			"Unsupported hex string length %d: expected 3, 4, 6 or 8 digits", len(digits))
	}

	nibbles := make([]uint8, len(digits))
	for i, c := range digits {
		n, ok := hexNibble(c)
		if !ok {
			return Fallback, newDiagnostic(DiagnosticKind_HexInvalidCharacter, span,
				"Invalid hex character `%c`", c)
		}
		nibbles[i] = n
	}

	var r, g, b, a uint8
	switch len(nibbles) {
	case 3: // r g b, each nibble doubled
		r, g, b, a = nibbles[0]*17, nibbles[1]*17, nibbles[2]*17, 0xFF
	case 4: // r g b a, each nibble doubled
		r, g, b, a = nibbles[0]*17, nibbles[1]*17, nibbles[2]*17, nibbles[3]*17
	case 6: // rr gg bb
		r = nibbles[0]<<4 | nibbles[1]
		g = nibbles[2]<<4 | nibbles[3]
		b = nibbles[4]<<4 | nibbles[5]
		a = 0xFF
	case 8: // rr gg bb aa
		r = nibbles[0]<<4 | nibbles[1]
		g = nibbles[2]<<4 | nibbles[3]
		b = nibbles[4]<<4 | nibbles[5]
		a = nibbles[6]<<4 | nibbles[7]
	}

	return RGBA{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}, nil
}

// ParseHex decodes a hex color string outside of any source context,
// for callers like the fallback color configuration.
func ParseHex(text string) (RGBA, error) {
	c, diag := decodeHex(text, Span{})
	if diag != nil {
		return Fallback, fmt.Errorf("%s", diag.Message)
	}
	return c, nil
}

func hexNibble(c rune) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint8(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint8(c-'A') + 10, true
	default:
		return 0, false
	}
}
