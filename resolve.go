package pigment

// RGBA is the resolver's sole successful output: four channels in
// [0,1].  HSL/HSB percentages above 100 can overdrive channels past
// that range; Clamped gives callers a gamut-safe view when they need
// one.
type RGBA struct {
	R float64
	G float64
	B float64
	A float64
}

// Fallback is the sentinel substituted whenever resolution fails, so
// downstream emission can still produce a syntactically valid result.
var Fallback = RGBA{}

// Clamped returns the color with every channel clamped to [0,1].
func (c RGBA) Clamped() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Resolve validates one invocation and converts it into its canonical
// RGBA value.  It short-circuits on the first failure: at most one
// Diagnostic comes out of one call, alongside the Fallback color.
func Resolve(inv *Invocation) (RGBA, *Diagnostic) {
	if len(inv.Args) == 0 {
		return Fallback, newDiagnostic(DiagnosticKind_MissingArgument, inv.NameSpan,
			"Missing color format argument")
	}

	first := inv.Args[0]
	if !first.Labeled() {
		return Fallback, newDiagnostic(DiagnosticKind_MissingLabel, first.Expr.Span(),
			"First argument must carry a color format label")
	}

	variant, ok := LookupVariant(first.Label)
	if !ok {
		return Fallback, newDiagnostic(DiagnosticKind_UnknownLabel, first.LabelSpan,
			"Unknown color format `%s`", first.Label)
	}

	if len(inv.Args) != variant.Arity() {
		return Fallback, newDiagnostic(DiagnosticKind_UnexpectedArgumentCount, inv.NameSpan,
			"%s expects %d arguments, got %d", variant.DisplayName(), variant.Arity(), len(inv.Args))
	}

	if variant == Variant_Hex {
		text, diag := extractHexString(first.Expr)
		if diag != nil {
			return Fallback, diag
		}
		return decodeHex(text, first.Expr.Span())
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		b, diag := extractByte(inv.Args[i].Expr, variant.ComponentGroup())
		if diag != nil {
			return Fallback, diag
		}
		channels[i] = float64(b)
	}

	alpha := 1.0
	if variant.HasAlpha() {
		a, diag := extractAlpha(inv.Args[3].Expr)
		if diag != nil {
			return Fallback, diag
		}
		alpha = a
	}

	switch variant {
	case Variant_RGB, Variant_RGBA:
		return RGBA{
			R: channels[0] / 255.0,
			G: channels[1] / 255.0,
			B: channels[2] / 255.0,
			A: alpha,
		}, nil
	case Variant_HSL, Variant_HSLA:
		// channel integers feed the converter as raw percentages,
		// without rescaling from the 0-255 range
		r, g, b := HSLToRGB(channels[0], channels[1], channels[2])
		return RGBA{R: r, G: g, B: b, A: alpha}, nil
	default:
		r, g, b := HSBToRGB(channels[0], channels[1], channels[2])
		return RGBA{R: r, G: g, B: b, A: alpha}, nil
	}
}
