package pigment

import (
	"os"
	"strings"
)

// Expander rewrites every `#color(...)` invocation in an input text
// into the configured output surface.  Expansion always runs to the
// end of the input: a failed invocation contributes one diagnostic and
// the fallback color, never an aborted batch.
type Expander struct {
	cfg      *Config
	emitter  Emitter
	fallback RGBA
	filePath string
}

func NewExpander(cfg *Config) (*Expander, error) {
	emitter, err := NewEmitter(cfg.GetString("emit.target"), cfg)
	if err != nil {
		return nil, err
	}
	fallback, err := ParseFallback(cfg.GetString("expand.fallback"))
	if err != nil {
		return nil, err
	}
	return &Expander{cfg: cfg, emitter: emitter, fallback: fallback}, nil
}

// SetFilePath defines the path reported by diagnostics.  That is used
// in error messages.
func (e *Expander) SetFilePath(path string) {
	e.filePath = path
}

// Expand rewrites the input and returns the expanded text together
// with the diagnostics of every invocation that failed to resolve, in
// source order.  A non-nil error means the source itself is malformed
// and no output was produced.
func (e *Expander) Expand(input string) (string, []Diagnostic, error) {
	var (
		out   strings.Builder
		diags []Diagnostic
	)
	runes := []rune(input)
	parser := NewInvocationParser(input)
	last := 0
	for {
		inv, err := parser.NextInvocation()
		if err != nil {
			return "", nil, err
		}
		if inv == nil {
			break
		}

		out.WriteString(string(runes[last:inv.Span().Start.Cursor]))

		color, diag := Resolve(inv)
		if diag != nil {
			diag.FilePath = e.filePath
			diags = append(diags, *diag)
			color = e.fallback
		}
		out.WriteString(e.emitter.Emit(color))
		last = inv.Span().End.Cursor
	}
	out.WriteString(string(runes[last:]))
	return out.String(), diags, nil
}

// ExpandFile expands the contents of one file.  Diagnostics carry the
// file's path.
func (e *Expander) ExpandFile(path string) (string, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	e.SetFilePath(path)
	return e.Expand(string(data))
}
