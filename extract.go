package pigment

// ByteChannel is an 8-bit channel value.  It only ever gets built from
// integers already checked against [0,255], so it is in range by
// construction.
type ByteChannel uint8

// extractByte interprets an argument as one 0-255 channel integer.
// Only integer literals qualify, with an optional single unary minus;
// the group names the variant's channel wording in range diagnostics.
func extractByte(expr Node, group string) (ByteChannel, *Diagnostic) {
	var value float64
	switch n := expr.(type) {
	case *IntegerNode:
		value = float64(n.Value)
	case *NegateNode:
		inner, ok := n.Expr.(*IntegerNode)
		if !ok {
			return 0, newDiagnostic(DiagnosticKind_InvalidNumericLiteral, expr.Span(),
				"Expected an integer literal")
		}
		value = -float64(inner.Value)
	default:
		return 0, newDiagnostic(DiagnosticKind_InvalidNumericLiteral, expr.Span(),
			"Expected an integer literal")
	}

	if value < 0 || value > 255 {
		return 0, newDiagnostic(DiagnosticKind_ValueOutOfRange, expr.Span(),
			"%s must be in the range 0...255, got %s", group, formatNumber(value))
	}
	return ByteChannel(value), nil
}

// extractAlpha interprets an argument as the alpha channel: an integer
// or float literal, optionally negated, in [0,1].
func extractAlpha(expr Node) (float64, *Diagnostic) {
	value, ok := numericLiteralValue(expr)
	if !ok {
		return 0, newDiagnostic(DiagnosticKind_InvalidNumericLiteral, expr.Span(),
			"Expected a number literal")
	}
	if value < 0 || value > 1 {
		return 0, newDiagnostic(DiagnosticKind_ValueOutOfRange, expr.Span(),
			"Alpha must be in the range 0...1, got %s", formatNumber(value))
	}
	return value, nil
}

// numericLiteralValue recognizes the numeric literal shapes: integer,
// float, and a single unary minus in front of either.
func numericLiteralValue(expr Node) (float64, bool) {
	switch n := expr.(type) {
	case *IntegerNode:
		return float64(n.Value), true
	case *FloatNode:
		return n.Value, true
	case *NegateNode:
		inner, ok := numericLiteralValue(n.Expr)
		if !ok {
			return 0, false
		}
		return -inner, true
	default:
		return 0, false
	}
}

// extractHexString accepts only a string literal made of exactly one
// literal text segment.  Interpolation, or any segmentation other than
// one, is rejected even when no interpolation marker is present.
func extractHexString(expr Node) (string, *Diagnostic) {
	str, ok := expr.(*StringNode)
	if !ok {
		return "", newDiagnostic(DiagnosticKind_HexNonStringLiteral, expr.Span(),
			"Hex value must be a string literal")
	}
	if len(str.Segments) != 1 || !str.Segments[0].IsLiteral() {
		return "", newDiagnostic(DiagnosticKind_HexInterpolatedString, expr.Span(),
			"Hex string must be a single literal segment without interpolation")
	}
	return str.Segments[0].(*TextSegment).Value, nil
}
