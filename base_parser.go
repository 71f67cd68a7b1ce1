package pigment

import "fmt"

const eof = -1

// BaseParser keeps the cursor state shared by all parsing expressions
// built on top of it.  The invocation parser embeds it and adds the
// grammar of the color macro surface syntax.
type BaseParser struct {
	cursor int
	line   int
	column int
	input  []rune
}

// SetInput associates an input to the parser struct and resets the
// cursor back to the beginning of that input.
func (p *BaseParser) SetInput(input []rune) {
	p.cursor = 0
	p.line = 0
	p.column = 0
	p.input = input
}

// Location returns in which line/column/cursor the parser's input is currently in
func (p BaseParser) Location() Location {
	return Location{
		Line:   p.line,
		Column: p.column,
		Cursor: p.cursor,
	}
}

// Peek returns the character under the input cursor, or eof if the entire input has been consumed
func (p *BaseParser) Peek() rune {
	if p.cursor >= len(p.input) {
		return eof
	}
	return p.input[p.cursor]
}

// Backtrack resets the internal parser state to the Location l
func (p *BaseParser) Backtrack(l Location) {
	p.cursor = l.Cursor
	p.line = l.Line
	p.column = l.Column
}

func (p *BaseParser) ExpectRune(v rune) (rune, error) {
	c := p.Peek()
	if c == v {
		return p.Any()
	}
	return 0, p.NewError(fmt.Sprintf("Expected `%c`, got `%c`", v, c))
}

func (p *BaseParser) ExpectRuneFn(v rune) ParserFn[rune] {
	return func(p Parser) (rune, error) { return p.ExpectRune(v) }
}

func (p *BaseParser) ExpectRange(l, r rune) (rune, error) {
	c := p.Peek()
	if c >= l && c <= r {
		return p.Any()
	}
	return 0, p.NewError(fmt.Sprintf("Expected char between `%c` and `%c`, got `%c`", l, r, c))
}

func (p *BaseParser) ExpectRangeFn(l, r rune) ParserFn[rune] {
	return func(p Parser) (rune, error) { return p.ExpectRange(l, r) }
}

// ExpectLiteral matches the exact string `literal` under the cursor,
// backtracking entirely if any rune of it fails to match.
func (p *BaseParser) ExpectLiteral(literal string) (string, error) {
	start := p.Location()
	for _, v := range literal {
		c, err := p.Any()
		if err != nil {
			p.Backtrack(start)
			return "", err
		}
		if c == v {
			continue
		}
		p.Backtrack(start)
		return "", p.NewError(fmt.Sprintf("Missing `%s`", literal))
	}
	return literal, nil
}

func (p *BaseParser) NewError(msg string) error {
	loc := p.Location()
	return backtrackingError{Message: msg, Span: NewSpan(loc, loc)}
}

// Throw returns an error that can't be caught by the backtrack system
// and will error right away
func (p *BaseParser) Throw(msg string, span Span) error {
	return ParsingError{Message: msg, Span: span}
}

// Any matches any rune under the input cursor, and will throw an error on EOF
func (p *BaseParser) Any() (rune, error) {
	c := p.Peek()
	if c == eof {
		return 0, p.NewError("EOF")
	}
	p.cursor++
	p.column++
	if c == '\n' {
		p.column = 0
		p.line++
	}
	return c, nil
}
