package pigment

import (
	"fmt"
	"strings"
)

// Node is the interface shared by every recognized argument shape.
// The resolver never walks arbitrary syntax: it dispatches on this
// closed set of shapes (integer literal, float literal, negated
// literal, string literal, everything-else) and nothing more.
type Node interface {
	// Span returns the location span in which the node was found
	// within the input text
	Span() Span

	// Text is the source representation of the node, useful for
	// splicing unmodified input back into the output
	Text() string

	// String returns the string representation of a given node
	String() string
}

// Node Type: Integer literal

type IntegerNode struct {
	span  Span
	Value int64
	Raw   string
}

func NewIntegerNode(value int64, raw string, s Span) *IntegerNode {
	return &IntegerNode{Value: value, Raw: raw, span: s}
}

func (n IntegerNode) Span() Span     { return n.span }
func (n IntegerNode) Text() string   { return n.Raw }
func (n IntegerNode) String() string { return fmt.Sprintf("Integer(%d) @ %s", n.Value, n.Span()) }

// Node Type: Float literal

type FloatNode struct {
	span  Span
	Value float64
	Raw   string
}

func NewFloatNode(value float64, raw string, s Span) *FloatNode {
	return &FloatNode{Value: value, Raw: raw, span: s}
}

func (n FloatNode) Span() Span     { return n.span }
func (n FloatNode) Text() string   { return n.Raw }
func (n FloatNode) String() string { return fmt.Sprintf("Float(%v) @ %s", n.Value, n.Span()) }

// Node Type: Negated literal
//
// A single unary minus in front of a numeric literal.  The parser
// never nests these: `--1` parses as an opaque expression.

type NegateNode struct {
	span Span
	Expr Node
}

func NewNegateNode(expr Node, s Span) *NegateNode {
	return &NegateNode{Expr: expr, span: s}
}

func (n NegateNode) Span() Span     { return n.span }
func (n NegateNode) Text() string   { return "-" + n.Expr.Text() }
func (n NegateNode) String() string { return fmt.Sprintf("Negate(%s) @ %s", n.Expr, n.Span()) }

// Node Type: String literal
//
// Strings are stored as their list of segments.  A plain string has
// exactly one TextSegment; interpolations and empty adjacent parts
// produce more than one segment, which the hex extractor rejects.

type StringNode struct {
	span     Span
	Segments []StringSegment
}

func NewStringNode(segments []StringSegment, s Span) *StringNode {
	return &StringNode{Segments: segments, span: s}
}

func (n StringNode) Span() Span { return n.span }

func (n StringNode) Text() string {
	var s strings.Builder
	s.WriteRune('"')
	for _, seg := range n.Segments {
		s.WriteString(seg.Text())
	}
	s.WriteRune('"')
	return s.String()
}

func (n StringNode) String() string {
	var s strings.Builder
	s.WriteString("String(")
	for i, seg := range n.Segments {
		s.WriteString(seg.String())
		if i < len(n.Segments)-1 {
			s.WriteString(", ")
		}
	}
	fmt.Fprintf(&s, ") @ %s", n.Span())
	return s.String()
}

// StringSegment is one piece of a string literal: either literal text
// or an interpolated expression.
type StringSegment interface {
	Span() Span
	Text() string
	String() string
	IsLiteral() bool
}

type TextSegment struct {
	span  Span
	Value string
	Raw   string
}

func NewTextSegment(value, raw string, s Span) *TextSegment {
	return &TextSegment{Value: value, Raw: raw, span: s}
}

func (n TextSegment) Span() Span      { return n.span }
func (n TextSegment) Text() string    { return n.Raw }
func (n TextSegment) IsLiteral() bool { return true }
func (n TextSegment) String() string  { return fmt.Sprintf("%q @ %s", n.Value, n.Span()) }

type InterpolationSegment struct {
	span Span
	Raw  string
}

func NewInterpolationSegment(raw string, s Span) *InterpolationSegment {
	return &InterpolationSegment{Raw: raw, span: s}
}

func (n InterpolationSegment) Span() Span      { return n.span }
func (n InterpolationSegment) Text() string    { return `\(` + n.Raw + `)` }
func (n InterpolationSegment) IsLiteral() bool { return false }
func (n InterpolationSegment) String() string {
	return fmt.Sprintf("Interpolation(%s) @ %s", n.Raw, n.Span())
}

// Node Type: Opaque expression
//
// Anything the parser does not recognize as a literal: identifiers,
// calls, arithmetic.  The resolver only ever reports these as
// non-literal; it never looks inside.

type OpaqueNode struct {
	span Span
	Raw  string
}

func NewOpaqueNode(raw string, s Span) *OpaqueNode {
	return &OpaqueNode{Raw: raw, span: s}
}

func (n OpaqueNode) Span() Span     { return n.span }
func (n OpaqueNode) Text() string   { return n.Raw }
func (n OpaqueNode) String() string { return fmt.Sprintf("Opaque(%s) @ %s", n.Raw, n.Span()) }

// Argument is one comma-separated element of an invocation's argument
// list, with its optional leading label.
type Argument struct {
	Label     string
	LabelSpan Span
	Expr      Node
}

func (a Argument) Labeled() bool { return a.Label != "" }

// Invocation is one `#color(...)` call site as found in the input.
// It is a read-only view: the resolver never mutates it.
type Invocation struct {
	span     Span
	NameSpan Span
	Args     []Argument
}

func NewInvocation(args []Argument, nameSpan, span Span) *Invocation {
	return &Invocation{Args: args, NameSpan: nameSpan, span: span}
}

func (n Invocation) Span() Span { return n.span }

func (n Invocation) String() string {
	var s strings.Builder
	s.WriteString("Invocation(")
	for i, arg := range n.Args {
		if arg.Labeled() {
			s.WriteString(arg.Label)
			s.WriteString(": ")
		}
		s.WriteString(arg.Expr.String())
		if i < len(n.Args)-1 {
			s.WriteString(", ")
		}
	}
	fmt.Fprintf(&s, ") @ %s", n.Span())
	return s.String()
}
