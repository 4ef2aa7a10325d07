package syntax

import (
	"fmt"

	"slc/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token: the exact source text it was lexed from.
	// The EOF token has an empty value.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_INT = iota
	TOK_IF

	TOK_IDENT
	TOK_NUMLIT

	TOK_ASSIGN
	TOK_PLUS
	TOK_MINUS
	TOK_EQ

	TOK_LBRACE
	TOK_RBRACE
	TOK_LPAREN
	TOK_RPAREN
	TOK_SEMI

	TOK_EOF
	TOK_UNKNOWN
)

// tokenKindNames maps each token kind to its display name.
var tokenKindNames = [...]string{
	TOK_INT:     "INT",
	TOK_IF:      "IF",
	TOK_IDENT:   "IDENTIFIER",
	TOK_NUMLIT:  "NUMBER",
	TOK_ASSIGN:  "ASSIGN",
	TOK_PLUS:    "PLUS",
	TOK_MINUS:   "MINUS",
	TOK_EQ:      "EQUAL",
	TOK_LBRACE:  "LBRACE",
	TOK_RBRACE:  "RBRACE",
	TOK_LPAREN:  "LPAREN",
	TOK_RPAREN:  "RPAREN",
	TOK_SEMI:    "SEMICOLON",
	TOK_EOF:     "EOF",
	TOK_UNKNOWN: "UNKNOWN",
}

// TokenKindName returns the display name of a token kind.
func TokenKindName(kind int) string {
	if 0 <= kind && kind < len(tokenKindNames) {
		return tokenKindNames[kind]
	}

	return fmt.Sprintf("TOKEN(%d)", kind)
}

func (t *Token) String() string {
	return fmt.Sprintf("%-10s | %s", TokenKindName(t.Kind), t.Value)
}
