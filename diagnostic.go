package pigment

import (
	"fmt"
	"strconv"
	"strings"
)

// DiagnosticKind is the closed set of ways a color literal can fail to
// resolve.  Every kind renders one message; there are no warnings.
type DiagnosticKind int

const (
	DiagnosticKind_MissingArgument DiagnosticKind = iota
	DiagnosticKind_MissingLabel
	DiagnosticKind_UnknownLabel
	DiagnosticKind_UnexpectedArgumentCount
	DiagnosticKind_HexNonStringLiteral
	DiagnosticKind_HexInterpolatedString
	DiagnosticKind_HexEmpty
	DiagnosticKind_HexUnsupportedLength
	DiagnosticKind_HexInvalidCharacter
	DiagnosticKind_InvalidNumericLiteral
	DiagnosticKind_ValueOutOfRange
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticKind_MissingArgument:
		return "missing-argument"
	case DiagnosticKind_MissingLabel:
		return "missing-label"
	case DiagnosticKind_UnknownLabel:
		return "unknown-label"
	case DiagnosticKind_UnexpectedArgumentCount:
		return "unexpected-argument-count"
	case DiagnosticKind_HexNonStringLiteral:
		return "hex-non-string-literal"
	case DiagnosticKind_HexInterpolatedString:
		return "hex-interpolated-string"
	case DiagnosticKind_HexEmpty:
		return "hex-empty"
	case DiagnosticKind_HexUnsupportedLength:
		return "hex-unsupported-length"
	case DiagnosticKind_HexInvalidCharacter:
		return "hex-invalid-character"
	case DiagnosticKind_InvalidNumericLiteral:
		return "invalid-numeric-literal"
	case DiagnosticKind_ValueOutOfRange:
		return "value-out-of-range"
	default:
		return "unknown"
	}
}

type DiagnosticSeverity int

const (
	DiagnosticSeverity_Error DiagnosticSeverity = 1
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticSeverity_Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one fully rendered resolution failure, anchored to the
// source span that should be underlined: the offending argument, the
// whole hex literal for structural hex errors, or the macro name token
// when there is no argument to point at.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity DiagnosticSeverity
	Message  string
	Span     Span
	FilePath string
}

// FormatCLI renders the diagnostic the way command line tools print
// them: `path:line:col: error: message`.
func (d Diagnostic) FormatCLI() string {
	if d.FilePath == "" {
		return fmt.Sprintf("%s: %s: %s", d.Span.Start, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%s: %s: %s", d.FilePath, d.Span.Start, d.Severity, d.Message)
}

func newDiagnostic(kind DiagnosticKind, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: DiagnosticSeverity_Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}
}

// formatNumber renders a numeric value for diagnostics, always with at
// least one decimal digit, so `300` reads as `300.0`.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// DiagnosticList aggregates the diagnostics of one expansion batch.
// Resolution never aggregates within a single invocation; the list
// holds at most one entry per bad call site.
type DiagnosticList struct {
	Diagnostics []Diagnostic
}

// Error implements the error interface, formatting all diagnostics.
func (e *DiagnosticList) Error() string {
	if len(e.Diagnostics) == 0 {
		return "color literal error (no details)"
	}
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].FormatCLI()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors found:\n", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		b.WriteString("  ")
		b.WriteString(d.FormatCLI())
		b.WriteRune('\n')
	}
	return b.String()
}

// ErrorCount returns the number of error-level diagnostics.
func (e *DiagnosticList) ErrorCount() int {
	count := 0
	for _, d := range e.Diagnostics {
		if d.Severity == DiagnosticSeverity_Error {
			count++
		}
	}
	return count
}

// NewDiagnosticList creates a DiagnosticList from a list of
// diagnostics.  Returns nil if there are no diagnostics.
func NewDiagnosticList(diagnostics []Diagnostic) error {
	if len(diagnostics) == 0 {
		return nil
	}
	return &DiagnosticList{Diagnostics: diagnostics}
}
