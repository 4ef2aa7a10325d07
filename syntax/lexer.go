package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"slc/report"
)

// Lexer is responsible for tokenizing a SimpleLang source text.  A lexer is a
// forward-only cursor over its reader: every call to NextToken consumes the
// runes of exactly one token.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// MaxTokenLen is the maximum number of runes an identifier or number
	// literal may contain.  Zero means no limit.
	MaxTokenLen int

	// Warnings is the list of non-fatal lexical problems encountered so far:
	// ie. unrecognized characters.
	Warnings []*report.LocalCompileError
}

// NewLexer creates a new lexer for the given source reader.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input. If the input has ended,
// this will be an EOF token: once the input is exhausted, every subsequent call
// returns another EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch {
		case unicode.IsSpace(c):
			l.skip()
		case isDecimalDigit(c):
			return l.lexNumberLit()
		case unicode.IsLetter(c):
			return l.lexIdentOrKeyword()
		default:
			return l.lexPunctOrOper()
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// Tokenize lexes the entirety of r and returns every token read including the
// final EOF token along with any lexical warnings.
func Tokenize(r io.Reader) ([]*Token, []*report.LocalCompileError, error) {
	l := NewLexer(bufio.NewReader(r))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return toks, l.Warnings, err
		}

		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, l.Warnings, nil
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.  Every multi-rune pattern begins with a valid single-rune pattern.
var symbolPatterns = map[string]int{
	"=":  TOK_ASSIGN,
	"==": TOK_EQ,
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,

	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Unrecognized runes
// produce an unknown token and a warning rather than an error: it is up to the
// parser to reject them.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	if _, err := l.eat(); err != nil {
		return nil, err
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		tok := l.makeToken(TOK_UNKNOWN)
		l.Warnings = append(l.Warnings, report.Raise(tok.Span, "unrecognized character: `%s`", tok.Value))
		return tok, nil
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			if _, err := l.eat(); err != nil {
				return nil, err
			}

			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"int": TOK_INT,
	"if":  TOK_IF,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()

	if err := l.eatWhile(func(c rune) bool { return unicode.IsLetter(c) || isDecimalDigit(c) }); err != nil {
		return nil, err
	}

	kind, ok := keywordPatterns[l.tokBuff.String()]
	if !ok {
		kind = TOK_IDENT
	}

	return l.makeBoundedToken(kind)
}

// lexNumberLit lexes a decimal number literal.  The literal's text is kept as
// is: its value is never interpreted by the lexer.
func (l *Lexer) lexNumberLit() (*Token, error) {
	l.mark()

	if err := l.eatWhile(isDecimalDigit); err != nil {
		return nil, err
	}

	return l.makeBoundedToken(TOK_NUMLIT)
}

// eatWhile consumes the maximal run of runes satisfying pred.
func (l *Lexer) eatWhile(pred func(rune) bool) error {
	for {
		c, err := l.peek()
		if err != nil {
			return err
		} else if c == -1 || !pred(c) {
			return nil
		}

		if _, err := l.eat(); err != nil {
			return err
		}
	}
}

// makeBoundedToken makes a token of the given kind checking that its text does
// not exceed the lexer's maximum token length.  An overlong token is still
// fully consumed so lexing can resume right after it.
func (l *Lexer) makeBoundedToken(kind int) (*Token, error) {
	tok := l.makeToken(kind)

	if l.MaxTokenLen > 0 && utf8.RuneCountInString(tok.Value) > l.MaxTokenLen {
		return nil, report.Raise(tok.Span, "token exceeds maximum length of %d characters", l.MaxTokenLen)
	}

	return tok, nil
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the input without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
