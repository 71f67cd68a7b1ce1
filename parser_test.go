package pigment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(input string) *BaseParser {
	p := &BaseParser{}
	p.SetInput([]rune(input))
	return p
}

func TestZeroOrMore(t *testing.T) {
	p := newTestParser("aaab")
	out, err := ZeroOrMore(p, p.ExpectRuneFn('a'))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'a', 'a'}, out)
	assert.Equal(t, 'b', p.Peek())

	// no match at all is still a success
	out, err = ZeroOrMore(p, p.ExpectRuneFn('a'))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOneOrMore(t *testing.T) {
	p := newTestParser("aab")
	out, err := OneOrMore(p, p.ExpectRuneFn('a'))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'a'}, out)

	_, err = OneOrMore(p, p.ExpectRuneFn('a'))
	require.Error(t, err)
}

func TestChoiceBacktracksBetweenAlternatives(t *testing.T) {
	p := newTestParser("xy")
	c, err := Choice(p, []ParserFn[rune]{
		p.ExpectRuneFn('a'),
		p.ExpectRuneFn('x'),
	})
	require.NoError(t, err)
	assert.Equal(t, 'x', c)
	assert.Equal(t, 'y', p.Peek())

	_, err = Choice(p, []ParserFn[rune]{
		p.ExpectRuneFn('a'),
		p.ExpectRuneFn('b'),
	})
	require.Error(t, err)
	assert.Equal(t, 'y', p.Peek())
}

func TestOptional(t *testing.T) {
	p := newTestParser("b")
	c, err := Optional(p, p.ExpectRuneFn('a'))
	require.NoError(t, err)
	assert.Equal(t, rune(0), c)
	assert.Equal(t, 'b', p.Peek())
}

func TestNotNeverConsumes(t *testing.T) {
	p := newTestParser("a")
	_, err := Not(p, p.ExpectRuneFn('a'))
	require.Error(t, err)
	assert.Equal(t, 'a', p.Peek())

	_, err = Not(p, p.ExpectRuneFn('b'))
	require.NoError(t, err)
	assert.Equal(t, 'a', p.Peek())
}

func TestExpectLiteralBacktracksFully(t *testing.T) {
	p := newTestParser("#colab")
	_, err := p.ExpectLiteral("#color")
	require.Error(t, err)
	assert.Equal(t, 0, p.Location().Cursor)

	lit, err := p.ExpectLiteral("#cola")
	require.NoError(t, err)
	assert.Equal(t, "#cola", lit)
	assert.Equal(t, 'b', p.Peek())
}

func TestLocationTracksLinesAndColumns(t *testing.T) {
	p := newTestParser("ab\ncd")
	for i := 0; i < 4; i++ {
		_, err := p.Any()
		require.NoError(t, err)
	}
	loc := p.Location()
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 1, loc.Column)
	assert.Equal(t, 4, loc.Cursor)
}
