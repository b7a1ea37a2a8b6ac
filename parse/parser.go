/*
Parser
=======

Recursive-descent, backtracking parser for the calculator's line-oriented
grammar:

	file      = (directive NEWLINE?)*
	directive = assign | operation | polynomial | solve
	assign    = var_name "=" (operation | polynomial)
	operation = "(" polynomial ")" op "(" polynomial ")" (op "(" polynomial ")")*
	op        = "+" | "-" | "*" | "/"
	solve     = "[" polynomial ("," var_name)? "]"
	polynomial = term+
	term      = sign? (number | "(" number "/" number ")" | var)+
	var       = var_name ("^" "(" sign? number ("/" number)? ")")?   ; atomic
	var_name  = ASCII_LETTER

Ordered choice between "operation" and "polynomial" is genuinely ambiguous at
the token level — both a bare polynomial term and an operation's operand can
start with "(" — so tryOperation speculatively parses the operation shape
and the caller rewinds to try polynomial on failure, exactly like a PEG
parser's backtracking choice. Once two operands have been committed (an
operator token has been consumed between two parenthesized groups), the
input can no longer be a bare polynomial, so every failure past that point
is reported as a hard parse error rather than triggering another rewind:
real PEG implementations make the same trade with an explicit "cut" to keep
diagnostics pointed at the actual mistake instead of a second, irrelevant
failure from the polynomial branch.

Eager whole-file parsing means Parse consumes the entire token stream
produced by token.Lex before the driver evaluates anything.
*/

package parse

import (
	"fmt"

	"github.com/polysolve/polysolve/algebra"
	"github.com/polysolve/polysolve/ast"
	"github.com/polysolve/polysolve/rational"
	"github.com/polysolve/polysolve/token"
)

type parser struct {
	source string
	toks   []token.Token
	pos    int
}

// Line pairs one parsed directive with the 1-based source line it came
// from, so the driver can echo the original text alongside the result
// without re-deriving which lines the parser treated as blank.
type Line struct {
	Directive ast.Directive
	LineNo    int
}

// Parse lexes and parses source into an ordered list of directives, one per
// non-empty source line.
func Parse(source string) ([]Line, error) {
	toks, err := token.Lex(source)
	if err != nil {
		return nil, err
	}
	p := &parser{source: source, toks: toks}
	return p.parseFile()
}

func (p *parser) peek() token.Token      { return p.toks[p.pos] }
func (p *parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}
func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Type != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(tok token.Token, format string, args ...any) error {
	return newError(p.source, tok, format, args...)
}

func (p *parser) expect(want token.Type) (token.Token, error) {
	tok := p.peek()
	if tok.Type != want {
		return tok, p.errorf(tok, "expected %s, found %s", want, describeFound(tok))
	}
	return p.advance(), nil
}

func describeFound(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	if tok.Type == token.NEWLINE {
		return "end of line"
	}
	return fmt.Sprintf("%q", tok.Literal)
}

// parseFile parses every non-empty line in the token stream.
func (p *parser) parseFile() ([]Line, error) {
	var lines []Line
	for {
		for p.peek().Type == token.NEWLINE {
			p.advance()
		}
		if p.peek().Type == token.EOF {
			return lines, nil
		}
		lineNo := p.peek().Start.Line
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Directive: d, LineNo: lineNo})
		tok := p.peek()
		if tok.Type != token.NEWLINE && tok.Type != token.EOF {
			return nil, p.errorf(tok, "expected end of line, found %s", describeFound(tok))
		}
	}
}

// parseDirective parses one line per "directive = assign | operation |
// polynomial | solve".
func (p *parser) parseDirective() (ast.Directive, error) {
	if p.peek().Type == token.IDENT && p.peekAt(1).Type == token.ASSIGN {
		return p.parseAssign()
	}
	if p.peek().Type == token.LBRACKET {
		return p.parseSolve()
	}

	save := p.pos
	if op, matched, err := p.tryOperation(); err != nil {
		return nil, err
	} else if matched {
		return op, nil
	} else {
		p.pos = save
	}

	poly, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}
	return ast.Bare{Value: poly}, nil
}

// parseAssign parses "var_name = (operation | polynomial)".
func (p *parser) parseAssign() (ast.Directive, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}

	save := p.pos
	if op, matched, err := p.tryOperation(); err != nil {
		return nil, err
	} else if matched {
		return ast.Assign{Name: nameTok.Literal, Value: op}, nil
	} else {
		p.pos = save
	}

	poly, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}
	return ast.Assign{Name: nameTok.Literal, Value: ast.Poly{Value: poly}}, nil
}

// parseSolve parses "[" polynomial ("," var_name)? "]".
func (p *parser) parseSolve() (ast.Directive, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	poly, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}
	var name string
	if p.peek().Type == token.COMMA {
		p.advance()
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		name = nameTok.Literal
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return ast.Solve{Variable: name, Value: poly}, nil
}

// tryOperation speculatively parses "(" polynomial ")" op "(" polynomial
// ")" (op "(" polynomial ")")*. matched is false (with a nil error) when
// the input plainly isn't shaped like an operation — e.g. a bare
// parenthesized fraction term with nothing following it — so the caller
// can rewind and retry as a polynomial. Once an operator between two
// operands has been consumed, the parse is committed: any further failure
// is returned as a real error instead of a silent "not matched".
func (p *parser) tryOperation() (ast.Operation, bool, error) {
	if p.peek().Type != token.LPAREN {
		return ast.Operation{}, false, nil
	}

	first, ok, err := p.tryParenPolynomial()
	if err != nil || !ok {
		return ast.Operation{}, false, err
	}

	operands := []algebra.Polynomial{first}
	var ops []ast.Op

	for {
		opTok, ok := parseOpToken(p.peek())
		if !ok {
			break
		}
		if p.peekAt(1).Type != token.LPAREN {
			if len(ops) == 0 {
				break
			}
			return ast.Operation{}, true, p.errorf(p.peekAt(1), "expected '(' after operator in a chained operation")
		}
		p.advance() // operator
		operand, ok, err := p.tryParenPolynomial()
		if err != nil {
			return ast.Operation{}, true, err
		}
		if !ok {
			return ast.Operation{}, true, p.errorf(p.peek(), "malformed operand in a chained operation")
		}
		operands = append(operands, operand)
		ops = append(ops, opTok)
	}

	if len(ops) == 0 {
		return ast.Operation{}, false, nil
	}
	return ast.Operation{Operands: operands, Ops: ops}, true, nil
}

func parseOpToken(tok token.Token) (ast.Op, bool) {
	switch tok.Type {
	case token.PLUS:
		return ast.OpAdd, true
	case token.MINUS:
		return ast.OpSub, true
	case token.STAR:
		return ast.OpMul, true
	case token.SLASH:
		return ast.OpDiv, true
	default:
		return 0, false
	}
}

// tryParenPolynomial parses "(" polynomial ")", reporting ok=false (no
// error) if the current token isn't "(" at all, or if what follows doesn't
// parse as a polynomial before the matching ")".
func (p *parser) tryParenPolynomial() (algebra.Polynomial, bool, error) {
	if p.peek().Type != token.LPAREN {
		return algebra.Polynomial{}, false, nil
	}
	save := p.pos
	p.advance()
	poly, err := p.parsePolynomial()
	if err != nil {
		p.pos = save
		return algebra.Polynomial{}, false, nil
	}
	if p.peek().Type != token.RPAREN {
		p.pos = save
		return algebra.Polynomial{}, false, nil
	}
	p.advance()
	return poly, true, nil
}

// canStartTerm reports whether tok's type can begin a term production.
func canStartTerm(tok token.Token) bool {
	switch tok.Type {
	case token.PLUS, token.MINUS, token.NUMBER, token.LPAREN, token.IDENT:
		return true
	default:
		return false
	}
}

// parsePolynomial parses one or more terms, implicitly summed.
func (p *parser) parsePolynomial() (algebra.Polynomial, error) {
	var terms []algebra.Term
	for canStartTerm(p.peek()) {
		t, err := p.parseTerm()
		if err != nil {
			return algebra.Polynomial{}, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return algebra.Polynomial{}, p.errorf(p.peek(), "expected a polynomial, found %s", describeFound(p.peek()))
	}
	return algebra.NewPolynomial(terms), nil
}

// parseTerm parses "sign? (number | '(' number '/' number ')' | var)+": an
// optional leading sign followed by one or more implicitly-multiplied
// factors.
func (p *parser) parseTerm() (algebra.Term, error) {
	start := p.peek()
	sign := int64(1)
	switch p.peek().Type {
	case token.PLUS:
		p.advance()
	case token.MINUS:
		p.advance()
		sign = -1
	}

	value := rational.NewInt(sign)
	var vars []algebra.Variable
	count := 0

	for {
		tok := p.peek()
		switch tok.Type {
		case token.NUMBER:
			n, err := parseNumberLiteral(tok.Literal)
			if err != nil {
				return algebra.Term{}, p.errorf(tok, "%s", err)
			}
			p.advance()
			value = value.Mul(n)
			count++
		case token.LPAREN:
			frac, ok, err := p.tryParenFraction()
			if err != nil {
				return algebra.Term{}, err
			}
			if !ok {
				if count == 0 {
					return algebra.Term{}, p.errorf(tok, "expected a fraction '(n/d)' here")
				}
				goto done
			}
			value = value.Mul(frac)
			count++
		case token.IDENT:
			v, err := p.parseVar()
			if err != nil {
				return algebra.Term{}, err
			}
			vars = append(vars, v)
			count++
		default:
			goto done
		}
	}
done:
	if count == 0 {
		return algebra.Term{}, p.errorf(start, "expected a term, found %s", describeFound(start))
	}
	return algebra.NewTerm(value, vars), nil
}

// tryParenFraction parses "(" number "/" number ")", the only shape a
// parenthesized group may take inside a term (a general nested polynomial
// is not part of the "term" production — that belongs to "operation").
func (p *parser) tryParenFraction() (rational.Q, bool, error) {
	save := p.pos
	if p.peek().Type != token.LPAREN {
		return rational.Q{}, false, nil
	}
	p.advance()
	numTok := p.peek()
	if numTok.Type != token.NUMBER {
		p.pos = save
		return rational.Q{}, false, nil
	}
	p.advance()
	if p.peek().Type != token.SLASH {
		p.pos = save
		return rational.Q{}, false, nil
	}
	p.advance()
	denTok := p.peek()
	if denTok.Type != token.NUMBER {
		p.pos = save
		return rational.Q{}, false, nil
	}
	p.advance()
	if p.peek().Type != token.RPAREN {
		p.pos = save
		return rational.Q{}, false, nil
	}
	p.advance()

	num, err := parseNumberLiteral(numTok.Literal)
	if err != nil {
		return rational.Q{}, false, p.errorf(numTok, "%s", err)
	}
	den, err := parseNumberLiteral(denTok.Literal)
	if err != nil {
		return rational.Q{}, false, p.errorf(denTok, "%s", err)
	}
	if den.IsZero() {
		return rational.Q{}, false, p.errorf(denTok, "division by zero in fraction literal")
	}
	return num.Div(den), true, nil
}

// parseVar parses the atomic "var" production: a single-letter name with an
// optional "^(sign? number ('/' number)?)" exponent that must immediately
// follow the name, with no whitespace anywhere inside it.
func (p *parser) parseVar() (algebra.Variable, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return algebra.Variable{}, err
	}

	caretTok := p.peek()
	if caretTok.Type != token.CARET || !token.Adjacent(nameTok, caretTok) {
		return algebra.NewVariable(nameTok.Literal), nil
	}
	caretIdx := p.pos
	p.advance() // '^'

	if _, err := p.expect(token.LPAREN); err != nil {
		return algebra.Variable{}, err
	}

	sign := int64(1)
	switch p.peek().Type {
	case token.PLUS:
		p.advance()
	case token.MINUS:
		p.advance()
		sign = -1
	}

	numTok, err := p.expect(token.NUMBER)
	if err != nil {
		return algebra.Variable{}, err
	}
	num, err := parseNumberLiteral(numTok.Literal)
	if err != nil {
		return algebra.Variable{}, p.errorf(numTok, "%s", err)
	}
	degree := num.Mul(rational.NewInt(sign))

	if p.peek().Type == token.SLASH {
		p.advance()
		denTok, err := p.expect(token.NUMBER)
		if err != nil {
			return algebra.Variable{}, err
		}
		den, err := parseNumberLiteral(denTok.Literal)
		if err != nil {
			return algebra.Variable{}, p.errorf(denTok, "%s", err)
		}
		if den.IsZero() {
			return algebra.Variable{}, p.errorf(denTok, "division by zero in exponent")
		}
		degree = degree.Div(den)
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return algebra.Variable{}, err
	}
	for i := caretIdx; i < p.pos-1; i++ {
		if !token.Adjacent(p.toks[i], p.toks[i+1]) {
			return algebra.Variable{}, p.errorf(p.toks[i+1], "whitespace is not allowed inside a variable's exponent")
		}
	}
	return algebra.Variable{Name: nameTok.Literal, Degree: degree}, nil
}

// parseNumberLiteral converts a lexed "number" token (a run of digits with
// an optional single '.' fractional part) into an exact rational: the
// fractional part, if any, becomes an explicit power-of-ten denominator.
func parseNumberLiteral(lit string) (rational.Q, error) {
	whole, frac, hasFrac := cutFirst(lit, '.')
	wholeVal, err := parseDigits(whole)
	if err != nil {
		return rational.Q{}, fmt.Errorf("invalid number literal %q", lit)
	}
	if !hasFrac {
		return rational.NewInt(wholeVal), nil
	}
	fracVal, err := parseDigits(frac)
	if err != nil {
		return rational.Q{}, fmt.Errorf("invalid number literal %q", lit)
	}
	scale := int64(1)
	for range frac {
		scale *= 10
	}
	return rational.New(wholeVal*scale+fracVal, scale), nil
}

func cutFirst(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty digit run")
	}
	var n int64
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("non-digit %q", ch)
		}
		n = n*10 + int64(ch-'0')
	}
	return n, nil
}
