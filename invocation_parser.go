package pigment

import (
	"strconv"
	"strings"
)

// MacroName is the token that opens a color literal in the source
// text.  The scanner only recognizes it when immediately followed by
// an open parenthesis.
const MacroName = "#color"

// InvocationParser scans an input text for `#color(...)` call sites
// and parses each one into an Invocation.  Text between call sites is
// skipped; the expander recovers it through the invocation spans.
type InvocationParser struct {
	BaseParser
}

func NewInvocationParser(input string) *InvocationParser {
	p := &InvocationParser{}
	p.SetInput([]rune(input))
	return p
}

// NextInvocation advances the cursor to the next `#color(` occurrence
// and parses the whole invocation.  It returns nil when the input is
// exhausted.  A malformed invocation (unterminated string or argument
// list) is a ParsingError: the surrounding source can't be expanded.
func (p *InvocationParser) NextInvocation() (*Invocation, error) {
	for {
		switch p.Peek() {
		case eof:
			return nil, nil
		case '#':
			start := p.Location()
			if _, err := p.ExpectLiteral(MacroName); err != nil {
				p.Any()
				continue
			}
			nameSpan := NewSpan(start, p.Location())
			if p.Peek() != '(' {
				continue
			}
			return p.ParseInvocation(start, nameSpan)
		default:
			p.Any()
		}
	}
}

// GR: Invocation <- '#color' '(' Spacing (Argument (',' Spacing Argument)*)? ')'
func (p *InvocationParser) ParseInvocation(start Location, nameSpan Span) (*Invocation, error) {
	if _, err := p.ExpectRune('('); err != nil {
		return nil, err
	}
	p.ParseSpacing()

	var args []Argument
	if p.Peek() != ')' {
		head, err := p.ParseArgument()
		if err != nil {
			if isthrown(err) {
				return nil, err
			}
			return nil, p.Throw("Expected argument expression", NewSpan(p.Location(), p.Location()))
		}
		tail, err := ZeroOrMore(p, func(pp Parser) (Argument, error) {
			if _, err := pp.ExpectRune(','); err != nil {
				return Argument{}, err
			}
			p.ParseSpacing()
			arg, err := p.ParseArgument()
			if err != nil {
				if isthrown(err) {
					return Argument{}, err
				}
				return Argument{}, p.Throw("Expected argument expression", NewSpan(p.Location(), p.Location()))
			}
			return arg, nil
		})
		if err != nil {
			return nil, err
		}
		args = append([]Argument{head}, tail...)
	}

	if _, err := p.ExpectRune(')'); err != nil {
		return nil, p.Throw("Missing `)` closing the color literal", NewSpan(start, p.Location()))
	}
	return NewInvocation(args, nameSpan, NewSpan(start, p.Location())), nil
}

// GR: Argument <- (Identifier Spacing ':' Spacing)? Expression Spacing
func (p *InvocationParser) ParseArgument() (Argument, error) {
	type label struct {
		name string
		span Span
	}
	lbl, err := Optional(p, func(pp Parser) (label, error) {
		start := p.Location()
		name, err := p.parseIdentifier()
		if err != nil {
			return label{}, err
		}
		end := p.Location()
		p.ParseSpacing()
		if _, err := p.ExpectRune(':'); err != nil {
			return label{}, err
		}
		return label{name: name, span: NewSpan(start, end)}, nil
	})
	if err != nil {
		return Argument{}, err
	}
	p.ParseSpacing()

	expr, err := p.ParseExpression()
	if err != nil {
		return Argument{}, err
	}
	p.ParseSpacing()

	return Argument{Label: lbl.name, LabelSpan: lbl.span, Expr: expr}, nil
}

// GR: Expression <- Number !Operand / String !Operand / Opaque
func (p *InvocationParser) ParseExpression() (Node, error) {
	return Choice(p, []ParserFn[Node]{
		func(pp Parser) (Node, error) { return p.parseDelimited(p.ParseNumber) },
		func(pp Parser) (Node, error) { return p.parseDelimited(p.ParseString) },
		func(pp Parser) (Node, error) { return p.ParseOpaque() },
	})
}

// parseDelimited admits a literal only when an argument boundary comes
// next.  A literal followed by more tokens (`1 + 2`, `"a" + "b"`) is
// part of a larger expression and falls through to Opaque.
func (p *InvocationParser) parseDelimited(fn func() (Node, error)) (Node, error) {
	node, err := fn()
	if err != nil {
		return nil, err
	}
	mark := p.Location()
	p.ParseSpacing()
	c := p.Peek()
	p.Backtrack(mark)
	if c != ',' && c != ')' && c != eof {
		return nil, p.NewError("Expected argument boundary")
	}
	return node, nil
}

// GR: Number <- '-'? Digits ('.' Digits)? !IdentCont
// GR: Digits <- [0-9] ([0-9] / '_')*
//
// Underscore digit separators are legal anywhere after the first
// digit and are stripped before the value is parsed.
func (p *InvocationParser) ParseNumber() (Node, error) {
	start := p.Location()
	sign, err := Optional(p, p.ExpectRuneFn('-'))
	if err != nil {
		return nil, err
	}
	numStart := p.Location()

	if err := p.parseDigits(); err != nil {
		return nil, err
	}
	isFloat := false
	if p.Peek() == '.' {
		p.Any()
		if err := p.parseDigits(); err != nil {
			// `1.` is not a number; let Opaque take the
			// whole thing
			return nil, p.NewError("Malformed number")
		}
		isFloat = true
	}

	// reject things like `1px` so they fall through to Opaque
	if _, err := Not(p, func(pp Parser) (rune, error) { return p.parseIdentRune() }); err != nil {
		return nil, err
	}

	end := p.Location()
	raw := p.text(numStart, end)
	clean := strings.ReplaceAll(raw, "_", "")

	var node Node
	if isFloat {
		value, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, p.NewError("Malformed number")
		}
		node = NewFloatNode(value, raw, NewSpan(numStart, end))
	} else {
		value, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			return nil, p.NewError("Malformed number")
		}
		node = NewIntegerNode(value, raw, NewSpan(numStart, end))
	}
	if sign == '-' {
		return NewNegateNode(node, NewSpan(start, end)), nil
	}
	return node, nil
}

func (p *InvocationParser) parseDigits() error {
	if _, err := p.ExpectRange('0', '9'); err != nil {
		return err
	}
	_, err := ZeroOrMore(p, func(pp Parser) (rune, error) {
		return Choice(p, []ParserFn[rune]{
			p.ExpectRangeFn('0', '9'),
			p.ExpectRuneFn('_'),
		})
	})
	return err
}

// GR: String <- '"' Segment* '"'
// GR: Segment <- Interpolation / Text
//
// Double-quoted, with backslash escapes and `\(...)` interpolation.
// A plain string yields exactly one text segment; an empty string
// yields one empty text segment.
func (p *InvocationParser) ParseString() (Node, error) {
	start := p.Location()
	if _, err := p.ExpectRune('"'); err != nil {
		return nil, err
	}

	var (
		segments []StringSegment
		text     strings.Builder
		raw      strings.Builder
		textLoc  = p.Location()
	)
	flushText := func(end Location) {
		if raw.Len() > 0 {
			segments = append(segments, NewTextSegment(text.String(), raw.String(), NewSpan(textLoc, end)))
			text.Reset()
			raw.Reset()
		}
	}

	for {
		switch p.Peek() {
		case eof:
			return nil, p.Throw("Unterminated string literal", NewSpan(start, p.Location()))
		case '"':
			end := p.Location()
			p.Any()
			flushText(end)
			if len(segments) == 0 {
				segments = append(segments, NewTextSegment("", "", NewSpan(end, end)))
			}
			return NewStringNode(segments, NewSpan(start, p.Location())), nil
		case '\\':
			escStart := p.Location()
			p.Any()
			c, err := p.Any()
			if err != nil {
				return nil, p.Throw("Unterminated string literal", NewSpan(start, p.Location()))
			}
			if c == '(' {
				flushText(escStart)
				seg, err := p.parseInterpolation(escStart)
				if err != nil {
					return nil, err
				}
				segments = append(segments, seg)
				textLoc = p.Location()
				continue
			}
			raw.WriteRune('\\')
			raw.WriteRune(c)
			switch c {
			case 'n':
				text.WriteRune('\n')
			case 't':
				text.WriteRune('\t')
			case 'r':
				text.WriteRune('\r')
			default:
				// `\"`, `\\` and anything unrecognized
				// come through verbatim
				text.WriteRune(c)
			}
		default:
			c, _ := p.Any()
			text.WriteRune(c)
			raw.WriteRune(c)
		}
	}
}

// parseInterpolation consumes the body of a `\(...)` segment.  The
// cursor sits right after the open parenthesis.  Nested parentheses
// and nested strings are skipped atomically.
func (p *InvocationParser) parseInterpolation(start Location) (StringSegment, error) {
	bodyStart := p.Location()
	depth := 1
	for {
		switch p.Peek() {
		case eof:
			return nil, p.Throw("Unterminated string interpolation", NewSpan(start, p.Location()))
		case '(':
			depth++
			p.Any()
		case ')':
			depth--
			if depth == 0 {
				bodyEnd := p.Location()
				p.Any()
				raw := p.text(bodyStart, bodyEnd)
				return NewInterpolationSegment(raw, NewSpan(start, p.Location())), nil
			}
			p.Any()
		case '"':
			if err := p.skipQuoted(); err != nil {
				return nil, err
			}
		default:
			p.Any()
		}
	}
}

// GR: Opaque <- (!(',' / ')') .)+  balanced on parens/brackets/braces
//
// The catch-all shape: identifiers, calls, arithmetic.  The resolver
// reports these as non-literal without ever looking inside.
func (p *InvocationParser) ParseOpaque() (Node, error) {
	start := p.Location()
	end := start
	depth := 0
	for {
		c := p.Peek()
		switch {
		case c == eof:
			goto done
		case depth == 0 && (c == ',' || c == ')'):
			goto done
		case c == '(' || c == '[' || c == '{':
			depth++
		case depth > 0 && (c == ')' || c == ']' || c == '}'):
			depth--
		case c == '"':
			if err := p.skipQuoted(); err != nil {
				return nil, err
			}
			end = p.Location()
			continue
		}
		p.Any()
		if !isSpaceRune(c) {
			end = p.Location()
		}
	}
done:
	if end == start {
		return nil, p.NewError("Expected expression")
	}
	return NewOpaqueNode(p.text(start, end), NewSpan(start, end)), nil
}

// skipQuoted consumes a double-quoted string atomically, so quote
// contents can't unbalance an enclosing scan.  The cursor sits on the
// opening quote.
func (p *InvocationParser) skipQuoted() error {
	start := p.Location()
	p.Any()
	for {
		switch p.Peek() {
		case eof:
			return p.Throw("Unterminated string literal", NewSpan(start, p.Location()))
		case '\\':
			p.Any()
			p.Any()
		case '"':
			p.Any()
			return nil
		default:
			p.Any()
		}
	}
}

// GR: Identifier <- IdentStart IdentCont*
// GR: IdentStart <- [a-zA-Z_]
// GR: IdentCont  <- IdentStart / [0-9]
func (p *InvocationParser) parseIdentifier() (string, error) {
	head, err := Choice(p, []ParserFn[rune]{
		p.ExpectRangeFn('a', 'z'),
		p.ExpectRangeFn('A', 'Z'),
		p.ExpectRuneFn('_'),
	})
	if err != nil {
		return "", err
	}
	tail, err := ZeroOrMore(p, func(pp Parser) (rune, error) {
		return p.parseIdentRune()
	})
	if err != nil {
		return "", err
	}
	return string(append([]rune{head}, tail...)), nil
}

func (p *InvocationParser) parseIdentRune() (rune, error) {
	return Choice(p, []ParserFn[rune]{
		p.ExpectRangeFn('a', 'z'),
		p.ExpectRangeFn('A', 'Z'),
		p.ExpectRangeFn('0', '9'),
		p.ExpectRuneFn('_'),
	})
}

// GR: Spacing <- (' ' / '\t' / '\r' / '\n')*
func (p *InvocationParser) ParseSpacing() {
	ZeroOrMore(p, func(pp Parser) (rune, error) {
		return ChoiceRune(p, []rune{' ', '\t', '\r', '\n'})
	})
}

func (p *InvocationParser) text(start, end Location) string {
	return string(p.input[start.Cursor:end.Cursor])
}

func isSpaceRune(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
