package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_Basic(t *testing.T) {
	toks, err := Lex("8x^(2)")
	require.NoError(t, err)

	var types []Type
	var lits []string
	for _, tok := range toks {
		types = append(types, tok.Type)
		lits = append(lits, tok.Literal)
	}

	assert.Equal(t, []Type{NUMBER, IDENT, CARET, LPAREN, NUMBER, RPAREN, EOF}, types)
	assert.Equal(t, []string{"8", "x", "^", "(", "2", ")", ""}, lits)
}

func TestLex_Assignment(t *testing.T) {
	toks, err := Lex("a = 8")
	require.NoError(t, err)
	require.Len(t, toks, 4) // IDENT, ASSIGN, NUMBER, EOF
	assert.Equal(t, IDENT, toks[0].Type)
	assert.Equal(t, ASSIGN, toks[1].Type)
	assert.Equal(t, NUMBER, toks[2].Type)
}

func TestLex_Operation(t *testing.T) {
	toks, err := Lex("(a) * (6x - y)")
	require.NoError(t, err)

	var types []Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []Type{
		LPAREN, IDENT, RPAREN, STAR, LPAREN, NUMBER, IDENT, MINUS, IDENT, RPAREN, EOF,
	}, types)
}

func TestLex_Solve(t *testing.T) {
	toks, err := Lex("[y^(2) - 11x + 2 + x, x]")
	require.NoError(t, err)
	assert.Equal(t, LBRACKET, toks[0].Type)
	assert.Equal(t, COMMA, toks[len(toks)-4].Type)
	assert.Equal(t, RBRACKET, toks[len(toks)-2].Type)
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
}

func TestLex_Newline(t *testing.T) {
	toks, err := Lex("a = 8\n(a) * (6x - y)\n")
	require.NoError(t, err)

	var newlines int
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			newlines++
		}
	}
	assert.Equal(t, 2, newlines)
}

func TestLex_DecimalNumber(t *testing.T) {
	toks, err := Lex("3.14")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "3.14", toks[0].Literal)
}

func TestLex_IllegalCharacter(t *testing.T) {
	_, err := Lex("3 & 4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestLex_NonASCIILetterIsIllegal(t *testing.T) {
	// Only ASCII letters are valid identifiers; a non-ASCII letter (here the
	// imaginary-unit sentinel ⅈ, U+2148) must never be typed directly into
	// source, since it's produced only internally by root-finding.
	_, err := Lex("ⅈ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestLex_VarExponentAdjacency(t *testing.T) {
	adjacent, err := Lex("x^(2)")
	require.NoError(t, err)
	require.True(t, Adjacent(adjacent[0], adjacent[1])) // x then ^ with no gap

	withSpace, err := Lex("x ^(2)")
	require.NoError(t, err)
	require.False(t, Adjacent(withSpace[0], withSpace[1]))
}
