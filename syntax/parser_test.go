package syntax

import (
	"errors"
	"strings"
	"testing"

	"slc/ast"
	"slc/report"
)

func mustParse(t *testing.T, src string) *ast.Block {
	t.Helper()

	prog, _, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}

	return prog
}

func TestParsePrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"empty",
			"",
			"Block\n",
		},
		{
			"whitespace_only",
			" \n\t\n",
			"Block\n",
		},
		{
			"var_decl",
			"int x;",
			"Block\n  VarDecl x\n",
		},
		{
			"assign_literal",
			"x = 10;",
			"Block\n  Assign x\n    Literal 10\n",
		},
		{
			"right_associative",
			"x = a - b - c;",
			`Block
  Assign x
    BinaryOp -
      Identifier a
      BinaryOp -
        Identifier b
        Identifier c
`,
		},
		{
			"if_with_equality",
			"if (a == 30) { b = 1; }",
			`Block
  If
    BinaryOp ==
      Identifier a
      Literal 30
    Block
      Assign b
        Literal 1
`,
		},
		{
			"if_without_equality",
			"if (a + 1) { }",
			`Block
  If
    BinaryOp +
      Identifier a
      Literal 1
    Block
`,
		},
		{
			"nested_if",
			"if (a) { if (b) { int c; } }",
			`Block
  If
    Identifier a
    Block
      If
        Identifier b
        Block
          VarDecl c
`,
		},
		{
			"statement_order",
			"int a;\nint b;\na = 10;\nb = 20;\n",
			`Block
  VarDecl a
  VarDecl b
  Assign a
    Literal 10
  Assign b
    Literal 20
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.src)

			if got := ast.Sprint(prog); got != tt.want {
				t.Errorf("AST mismatch:\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"missing_identifier", "int ;", "expected identifier, got `;`"},
		{"missing_semicolon", "int x", "expected ';', got end of file"},
		{"missing_assign", "x 5;", "expected '=', got `5`"},
		{"missing_operand", "x = ;", "expected number or identifier, got `;`"},
		{"dangling_operator", "x = 1 + ;", "expected number or identifier, got `;`"},
		{"bad_statement", "5;", "expected statement, got `5`"},
		{"stray_brace", "}", "expected statement, got `}`"},
		{"unknown_char", "x = $;", "expected number or identifier, got unrecognized character `$`"},
		{"missing_lparen", "if a == 1) { }", "expected '(', got `a`"},
		{"missing_rparen", "if (a == 1 { }", "expected ')', got `{`"},
		{"unterminated_block", "if (a) { int b;", "expected '}', got end of file"},
		{"equality_outside_condition", "x = a == b;", "expected ';', got `==`"},
		{"chained_equality", "if (a == b == c) { }", "expected ')', got `==`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, _, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}

			if prog != nil {
				t.Errorf("Parse(%q) returned a program alongside its error", tt.src)
			}

			var lce *report.LocalCompileError
			if !errors.As(err, &lce) {
				t.Fatalf("error %v is not a compile error", err)
			}

			if lce.Message != tt.msg {
				t.Errorf("message = %q, want %q", lce.Message, tt.msg)
			}

			if lce.Span == nil {
				t.Error("compile error has no span")
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, _, err := Parse(strings.NewReader("int a;\nint ;"))
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	if !strings.HasPrefix(err.Error(), "2:5:") {
		t.Errorf("error = %q, want position 2:5", err.Error())
	}
}

func TestParseReportsWarnings(t *testing.T) {
	_, warnings, err := Parse(strings.NewReader("int a; @"))
	if err == nil {
		t.Fatal("unknown character was accepted as a statement")
	}

	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

func TestParseMaxTokenLen(t *testing.T) {
	_, _, err := Parse(strings.NewReader("int abcdef;"), WithMaxTokenLen(4))
	if err == nil || !strings.Contains(err.Error(), "maximum length of 4") {
		t.Errorf("error = %v, want token length error", err)
	}

	if _, _, err := Parse(strings.NewReader("int abcd;"), WithMaxTokenLen(4)); err != nil {
		t.Errorf("token at the limit was rejected: %v", err)
	}
}

func TestParseSpans(t *testing.T) {
	prog := mustParse(t, "int a;\nif (a) {\n  a = 1;\n}")

	ifStmt, ok := prog.Stmts[1].(*ast.IfStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.IfStmt", prog.Stmts[1])
	}

	want := report.TextSpan{StartLine: 1, StartCol: 0, EndLine: 3, EndCol: 1}
	if *ifStmt.Span() != want {
		t.Errorf("if span = %+v, want %+v", *ifStmt.Span(), want)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := "int a; int b; a = 10; b = a + 20 - 3; if (a == b) { a = 0; }"

	first := ast.Sprint(mustParse(t, src))
	for i := 0; i < 5; i++ {
		if got := ast.Sprint(mustParse(t, src)); got != first {
			t.Fatalf("parse %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}
