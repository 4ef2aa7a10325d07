package syntax

import (
	"bufio"
	"fmt"
	"io"

	"slc/ast"
	"slc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a SimpleLang source text.  The parser acts as a
// state machine that moves over the source token by token deciding what to
// parse based on the token it is currently positioned over and its context
// (implicit from the callstack of parsing functions): it is a recursive descent
// parser with a single token of lookahead and no backtracking.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of
// their production, leaving the parser on the next token.  Parsers are created
// once per source text and share no state with each other.
type Parser struct {
	// The lexer this parser is using to lex the source text.
	lexer *Lexer

	// The current token the parser is positioned on.
	tok *Token

	// The token the parser was positioned on before the current token.
	lookbehind *Token
}

// ParserOption configures a parser.
type ParserOption func(*Parser)

// WithMaxTokenLen limits the length of identifiers and number literals.
func WithMaxTokenLen(n int) ParserOption {
	return func(p *Parser) {
		p.lexer.MaxTokenLen = n
	}
}

// NewParser creates a new parser reading from r.
func NewParser(r *bufio.Reader, opts ...ParserOption) *Parser {
	p := &Parser{lexer: NewLexer(r)}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses a whole program from r.  It returns the root block of the
// program and any lexical warnings.  Parsing stops at the first syntax error:
// no AST is returned if one occurs.
func Parse(r io.Reader, opts ...ParserOption) (*ast.Block, []*report.LocalCompileError, error) {
	p := NewParser(bufio.NewReader(r), opts...)
	prog, err := p.Parse()
	return prog, p.Warnings(), err
}

// Parse parses the parser's source text into a program.
func (p *Parser) Parse() (prog *ast.Block, err error) {
	defer report.Catch(&err)

	// Move the parser onto the first token.
	p.next()

	return p.parseProgram(), nil
}

// Warnings returns the lexical warnings encountered so far.
func (p *Parser) Warnings() []*report.LocalCompileError {
	return p.lexer.Warnings
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.lookbehind = p.tok
	p.tok = tok
}

// has returns whether the parser is positioned over a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is positioned over a token of the given kind.
// If it is, the token is consumed and returned.  Otherwise, an error is raised.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject(expectedNames[kind])
	}

	tok := p.tok
	p.next()
	return tok
}

// -----------------------------------------------------------------------------

// expectedNames maps token kinds to how they are named in error messages.
var expectedNames = map[int]string{
	TOK_INT:    "'int'",
	TOK_IF:     "'if'",
	TOK_IDENT:  "identifier",
	TOK_NUMLIT: "number",
	TOK_ASSIGN: "'='",
	TOK_PLUS:   "'+'",
	TOK_MINUS:  "'-'",
	TOK_EQ:     "'=='",
	TOK_LBRACE: "'{'",
	TOK_RBRACE: "'}'",
	TOK_LPAREN: "'('",
	TOK_RPAREN: "')'",
	TOK_SEMI:   "';'",
	TOK_EOF:    "end of file",
}

// reject raises an error on the current token stating what was expected
// instead of it.
func (p *Parser) reject(expected string) {
	var got string
	switch p.tok.Kind {
	case TOK_EOF:
		got = "end of file"
	case TOK_UNKNOWN:
		got = fmt.Sprintf("unrecognized character `%s`", p.tok.Value)
	default:
		got = fmt.Sprintf("`%s`", p.tok.Value)
	}

	panic(report.Raise(p.tok.Span, "expected %s, got %s", expected, got))
}
