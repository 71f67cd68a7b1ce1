package pigment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOne(t *testing.T, source string) (RGBA, *Diagnostic) {
	t.Helper()
	return Resolve(mustInvocation(t, source))
}

func spanSource(source string, s Span) string {
	return string([]rune(source)[s.Start.Cursor:s.End.Cursor])
}

func TestResolveHex(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected RGBA
	}{
		{
			name:     "white shorthand",
			source:   `#color(hex: "#FFF")`,
			expected: RGBA{R: 1, G: 1, B: 1, A: 1},
		},
		{
			name:   "shorthand with alpha",
			source: `#color(hex: "#0F8C")`,
			expected: RGBA{
				R: 0,
				G: 1,
				B: float64(0x88) / 255,
				A: float64(0xCC) / 255,
			},
		},
		{
			name:   "full six digits",
			source: `#color(hex: "1A2B3C")`,
			expected: RGBA{
				R: float64(0x1A) / 255,
				G: float64(0x2B) / 255,
				B: float64(0x3C) / 255,
				A: 1,
			},
		},
		{
			name:     "prefixed with 0x",
			source:   `#color(hex: "0xFF0000")`,
			expected: RGBA{R: 1, G: 0, B: 0, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, diag := resolveOne(t, tt.source)
			require.Nil(t, diag)
			assert.Equal(t, tt.expected, color)
		})
	}
}

func TestResolveComponents(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected RGBA
	}{
		{
			name:   "rgb",
			source: `#color(rgb: 0, 128, 255)`,
			expected: RGBA{
				R: 0,
				G: 128.0 / 255,
				B: 1,
				A: 1,
			},
		},
		{
			name:   "rgba",
			source: `#color(rgba: 154, 234, 98, 0.5)`,
			expected: RGBA{
				R: 154.0 / 255,
				G: 234.0 / 255,
				B: 98.0 / 255,
				A: 0.5,
			},
		},
		{
			name:     "rgb with underscored digits",
			source:   `#color(rgb: 2_5_5, 0, 0)`,
			expected: RGBA{R: 1, G: 0, B: 0, A: 1},
		},
		{
			name:     "integer alpha",
			source:   `#color(rgba: 0, 0, 0, 1)`,
			expected: RGBA{R: 0, G: 0, B: 0, A: 1},
		},
		{
			name:     "uppercase label",
			source:   `#color(RGB: 255, 0, 0)`,
			expected: RGBA{R: 1, G: 0, B: 0, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, diag := resolveOne(t, tt.source)
			require.Nil(t, diag)
			assert.Equal(t, tt.expected, color)
		})
	}
}

func TestResolveConverted(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected RGBA
	}{
		{
			name:     "hsl green",
			source:   `#color(hsl: 120, 100, 50)`,
			expected: RGBA{R: 0, G: 1, B: 0, A: 1},
		},
		{
			name:     "hsla with alpha",
			source:   `#color(hsla: 120, 100, 50, 0.25)`,
			expected: RGBA{R: 0, G: 1, B: 0, A: 0.25},
		},
		{
			name:     "hsb azure",
			source:   `#color(hsb: 200, 60, 80)`,
			expected: RGBA{R: 0.32, G: 0.64, B: 0.8, A: 1},
		},
		{
			name:     "hsba black",
			source:   `#color(hsba: 0, 0, 0, 0.5)`,
			expected: RGBA{R: 0, G: 0, B: 0, A: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, diag := resolveOne(t, tt.source)
			require.Nil(t, diag)
			assert.InDelta(t, tt.expected.R, color.R, channelDelta)
			assert.InDelta(t, tt.expected.G, color.G, channelDelta)
			assert.InDelta(t, tt.expected.B, color.B, channelDelta)
			assert.InDelta(t, tt.expected.A, color.A, channelDelta)
		})
	}
}

func TestResolveOverdrivenChannelsSurvive(t *testing.T) {
	color, diag := resolveOne(t, `#color(hsl: 0, 200, 50)`)
	require.Nil(t, diag)
	assert.Greater(t, color.R, 1.0)
	assert.Less(t, color.G, 0.0)

	clamped := color.Clamped()
	assert.Equal(t, 1.0, clamped.R)
	assert.Equal(t, 0.0, clamped.G)
	assert.Equal(t, 1.0, clamped.A)
}

func TestResolveDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		kind    DiagnosticKind
		message string
		anchor  string
	}{
		{
			name:    "no arguments",
			source:  `#color()`,
			kind:    DiagnosticKind_MissingArgument,
			message: "Missing color format argument",
			anchor:  "#color",
		},
		{
			name:    "unlabeled first argument",
			source:  `#color(10, 20, 30)`,
			kind:    DiagnosticKind_MissingLabel,
			message: "First argument must carry a color format label",
			anchor:  "10",
		},
		{
			name:    "unknown label",
			source:  `#color(cmyk: 1, 2, 3)`,
			kind:    DiagnosticKind_UnknownLabel,
			message: "Unknown color format `cmyk`",
			anchor:  "cmyk",
		},
		{
			name:    "too few arguments",
			source:  `#color(rgb: 10, 20)`,
			kind:    DiagnosticKind_UnexpectedArgumentCount,
			message: "RGB expects 3 arguments, got 2",
			anchor:  "#color",
		},
		{
			name:    "too many arguments",
			source:  `#color(hsl: 1, 2, 3, 4)`,
			kind:    DiagnosticKind_UnexpectedArgumentCount,
			message: "HSL expects 3 arguments, got 4",
			anchor:  "#color",
		},
		{
			name:    "hex expects a single argument",
			source:  `#color(hex: "#FFF", 1)`,
			kind:    DiagnosticKind_UnexpectedArgumentCount,
			message: "Hex expects 1 arguments, got 2",
			anchor:  "#color",
		},
		{
			name:    "hex from a number",
			source:  `#color(hex: 123)`,
			kind:    DiagnosticKind_HexNonStringLiteral,
			message: "Hex value must be a string literal",
			anchor:  "123",
		},
		{
			name:    "hex with interpolation",
			source:  `#color(hex: "#\(digits)")`,
			kind:    DiagnosticKind_HexInterpolatedString,
			message: "Hex string must be a single literal segment without interpolation",
			anchor:  `"#\(digits)"`,
		},
		{
			name:    "empty hex string",
			source:  `#color(hex: "")`,
			kind:    DiagnosticKind_HexEmpty,
			message: "Hex string is empty",
			anchor:  `""`,
		},
		{
			name:    "hex length",
			source:  `#color(hex: "#12345")`,
			kind:    DiagnosticKind_HexUnsupportedLength,
			message: "Unsupported hex string length 5: expected 3, 4, 6 or 8 digits",
			anchor:  `"#12345"`,
		},
		{
			name:    "hex digit",
			source:  `#color(hex: "#GG0000")`,
			kind:    DiagnosticKind_HexInvalidCharacter,
			message: "Invalid hex character `G`",
			anchor:  `"#GG0000"`,
		},
		{
			name:    "channel above range",
			source:  `#color(rgb: 256, 0, 0)`,
			kind:    DiagnosticKind_ValueOutOfRange,
			message: "RGB components must be in the range 0...255, got 256.0",
			anchor:  "256",
		},
		{
			name:    "negative channel",
			source:  `#color(rgb: -1, 0, 0)`,
			kind:    DiagnosticKind_ValueOutOfRange,
			message: "RGB components must be in the range 0...255, got -1.0",
			anchor:  "-1",
		},
		{
			name:    "hsl channel above range",
			source:  `#color(hsl: 361, 0, 0)`,
			kind:    DiagnosticKind_ValueOutOfRange,
			message: "HSL components must be in the range 0...255, got 361.0",
			anchor:  "361",
		},
		{
			name:    "float channel",
			source:  `#color(rgb: 1.5, 0, 0)`,
			kind:    DiagnosticKind_InvalidNumericLiteral,
			message: "Expected an integer literal",
			anchor:  "1.5",
		},
		{
			name:    "opaque channel",
			source:  `#color(rgb: width, 0, 0)`,
			kind:    DiagnosticKind_InvalidNumericLiteral,
			message: "Expected an integer literal",
			anchor:  "width",
		},
		{
			name:    "alpha above range",
			source:  `#color(rgba: 0, 0, 0, 2)`,
			kind:    DiagnosticKind_ValueOutOfRange,
			message: "Alpha must be in the range 0...1, got 2.0",
			anchor:  "2",
		},
		{
			name:    "negative alpha",
			source:  `#color(rgba: 0, 0, 0, -0.5)`,
			kind:    DiagnosticKind_ValueOutOfRange,
			message: "Alpha must be in the range 0...1, got -0.5",
			anchor:  "-0.5",
		},
		{
			name:    "opaque alpha",
			source:  `#color(rgba: 0, 0, 0, opacity)`,
			kind:    DiagnosticKind_InvalidNumericLiteral,
			message: "Expected a number literal",
			anchor:  "opacity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, diag := resolveOne(t, tt.source)
			require.NotNil(t, diag)
			assert.Equal(t, tt.kind, diag.Kind)
			assert.Equal(t, DiagnosticSeverity_Error, diag.Severity)
			assert.Equal(t, tt.message, diag.Message)
			assert.Equal(t, tt.anchor, spanSource(tt.source, diag.Span))
			assert.Equal(t, Fallback, color)
		})
	}
}

func TestResolveChecksArityBeforeValues(t *testing.T) {
	// 999 is out of range, but the argument count is wrong first
	_, diag := resolveOne(t, `#color(rgb: 999, 0)`)
	require.NotNil(t, diag)
	assert.Equal(t, DiagnosticKind_UnexpectedArgumentCount, diag.Kind)
}

func TestResolveStopsAtFirstFailure(t *testing.T) {
	_, diag := resolveOne(t, `#color(rgb: 300, bad, -1)`)
	require.NotNil(t, diag)
	assert.Equal(t, DiagnosticKind_ValueOutOfRange, diag.Kind)
	assert.Equal(t, "RGB components must be in the range 0...255, got 300.0", diag.Message)
}
