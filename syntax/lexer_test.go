package syntax

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"slc/report"
)

func kindsOf(toks []*Token) []int {
	kinds := make([]int, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func valuesOf(toks []*Token) []string {
	values := make([]string, len(toks))
	for i, tok := range toks {
		values[i] = tok.Value
	}
	return values
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kinds  []int
		values []string
	}{
		{"var_decl", "int x;", []int{TOK_INT, TOK_IDENT, TOK_SEMI, TOK_EOF}, []string{"int", "x", ";", ""}},
		{"keyword_if", "if", []int{TOK_IF, TOK_EOF}, []string{"if", ""}},
		{"keyword_prefix_is_ident", "intx", []int{TOK_IDENT, TOK_EOF}, []string{"intx", ""}},
		{"ident_with_digits", "x1y2", []int{TOK_IDENT, TOK_EOF}, []string{"x1y2", ""}},
		{"number", "42", []int{TOK_NUMLIT, TOK_EOF}, []string{"42", ""}},
		{"number_unbounded", "123456789012345678901234567890", []int{TOK_NUMLIT, TOK_EOF}, []string{"123456789012345678901234567890", ""}},
		{"number_then_ident", "123abc", []int{TOK_NUMLIT, TOK_IDENT, TOK_EOF}, []string{"123", "abc", ""}},
		{"equality", "a==b", []int{TOK_IDENT, TOK_EQ, TOK_IDENT, TOK_EOF}, []string{"a", "==", "b", ""}},
		{"assign", "a=5", []int{TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_EOF}, []string{"a", "=", "5", ""}},
		{"split_assigns", "= =", []int{TOK_ASSIGN, TOK_ASSIGN, TOK_EOF}, []string{"=", "=", ""}},
		{"triple_equals", "===", []int{TOK_EQ, TOK_ASSIGN, TOK_EOF}, []string{"==", "=", ""}},
		{"arith", "a+b-1", []int{TOK_IDENT, TOK_PLUS, TOK_IDENT, TOK_MINUS, TOK_NUMLIT, TOK_EOF}, []string{"a", "+", "b", "-", "1", ""}},
		{"punct", "{}();", []int{TOK_LBRACE, TOK_RBRACE, TOK_LPAREN, TOK_RPAREN, TOK_SEMI, TOK_EOF}, []string{"{", "}", "(", ")", ";", ""}},
		{"unknown", "x @ y", []int{TOK_IDENT, TOK_UNKNOWN, TOK_IDENT, TOK_EOF}, []string{"x", "@", "y", ""}},
		{"underscore_unknown", "_", []int{TOK_UNKNOWN, TOK_EOF}, []string{"_", ""}},
		{"whitespace_only", "  \n\t\r\n ", []int{TOK_EOF}, []string{""}},
		{"empty", "", []int{TOK_EOF}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _, err := Tokenize(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.src, err)
			}

			if got := kindsOf(toks); !equalInts(got, tt.kinds) {
				t.Errorf("kinds = %v, want %v", got, tt.kinds)
			}

			if got := valuesOf(toks); !equalStrings(got, tt.values) {
				t.Errorf("values = %q, want %q", got, tt.values)
			}
		})
	}
}

func TestUnknownCharacterWarns(t *testing.T) {
	_, warnings, err := Tokenize(strings.NewReader("a = 1 # 2 $"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}

	if !strings.Contains(warnings[0].Message, "`#`") {
		t.Errorf("warning = %q, want mention of `#`", warnings[0].Message)
	}

	if warnings[1].Span.StartCol != 10 {
		t.Errorf("second warning column = %d, want 10", warnings[1].Span.StartCol)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("x")))

	tok, err := l.NextToken()
	if err != nil || tok.Kind != TOK_IDENT {
		t.Fatalf("first token = %v, %v; want identifier", tok, err)
	}

	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken after end failed: %v", err)
		}

		if tok.Kind != TOK_EOF {
			t.Errorf("call %d after end returned %s, want EOF", i, TokenKindName(tok.Kind))
		}
	}
}

func TestTokenSpans(t *testing.T) {
	toks, _, err := Tokenize(strings.NewReader("int x;\n  yy = 10;"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	// yy is the fourth token.
	yy := toks[3]
	want := report.TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 4}
	if *yy.Span != want {
		t.Errorf("span of %q = %+v, want %+v", yy.Value, *yy.Span, want)
	}
}

func TestMaxTokenLen(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("abcd xyz 12345")))
	l.MaxTokenLen = 3

	_, err := l.NextToken()
	var lce *report.LocalCompileError
	if !errors.As(err, &lce) {
		t.Fatalf("overlong identifier error = %v, want a compile error", err)
	}

	if !strings.Contains(lce.Message, "maximum length of 3") {
		t.Errorf("message = %q", lce.Message)
	}

	// The lexer resumes right after the overlong token.
	tok, err := l.NextToken()
	if err != nil || tok.Kind != TOK_IDENT || tok.Value != "xyz" {
		t.Fatalf("token after overlong token = %v, %v; want identifier xyz", tok, err)
	}

	if _, err := l.NextToken(); err == nil {
		t.Error("overlong number did not produce an error")
	}

	tok, err = l.NextToken()
	if err != nil || tok.Kind != TOK_EOF {
		t.Errorf("final token = %v, %v; want EOF", tok, err)
	}
}

func TestReaderErrorPropagates(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, _, err := Tokenize(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Errorf("Tokenize error = %v, want %v", err, readErr)
	}
}

func TestReaderErrorMidToken(t *testing.T) {
	readErr := errors.New("disk on fire")

	for _, prefix := range []string{"abc", "123", "=", "int a; a = b +"} {
		t.Run(prefix, func(t *testing.T) {
			r := io.MultiReader(strings.NewReader(prefix), iotest.ErrReader(readErr))
			if _, _, err := Tokenize(r); !errors.Is(err, readErr) {
				t.Errorf("Tokenize error = %v, want %v", err, readErr)
			}
		})
	}
}

func TestRoundTripTokenization(t *testing.T) {
	src := "int a; int b;\na = 10;\nb = a - 3 + x;\nif (a == 30) { b = 1; }"

	toks, _, err := Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	rebuilt := strings.Join(valuesOf(toks), " ")
	again, _, err := Tokenize(strings.NewReader(rebuilt))
	if err != nil {
		t.Fatalf("re-Tokenize failed: %v", err)
	}

	if !equalInts(kindsOf(toks), kindsOf(again)) {
		t.Errorf("re-lexed kinds differ:\n%v\n%v", kindsOf(toks), kindsOf(again))
	}
}

func TestTokenString(t *testing.T) {
	tok := &Token{Kind: TOK_IDENT, Value: "abc"}
	if got := tok.String(); got != "IDENTIFIER | abc" {
		t.Errorf("String() = %q", got)
	}

	if got := TokenKindName(99); got != "TOKEN(99)" {
		t.Errorf("TokenKindName(99) = %q", got)
	}
}
