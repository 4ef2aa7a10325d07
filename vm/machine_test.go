package vm

import (
	"errors"
	"strings"
	"testing"

	"slc/codegen"
	"slc/syntax"
)

func runSource(t *testing.T, src string) (*Machine, error) {
	t.Helper()

	prog, _, err := syntax.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}

	m := NewMachine()
	return m, m.Run(codegen.Generate(prog))
}

func varsString(m *Machine) string {
	var parts []string
	for _, v := range m.Vars() {
		parts = append(parts, v.Name+"="+v.Value.String())
	}
	return strings.Join(parts, " ")
}

func TestRunPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"declared_zero", "int a;", "a=0"},
		{"declaration_order", "int b; int a; a = 1; b = 2;", "b=2 a=1"},
		{"sample", "int a; int b; int c; a = 10; b = 20; c = a + b;", "a=10 b=20 c=30"},
		{"right_associative", "int x; x = 10 - 4 - 3;", "x=9"},
		{"negative", "int x; x = 1 - 5;", "x=-4"},
		{"if_taken", "int a; int b; a = 30; if (a == 30) { b = 1; }", "a=30 b=1"},
		{"if_skipped", "int a; int b; a = 29; if (a == 30) { b = 1; }", "a=29 b=0"},
		{"if_nonzero_value", "int a; int b; a = 2; if (a - 1) { b = 7; }", "a=2 b=7"},
		{"if_zero_value", "int a; int b; a = 1; if (a - 1) { b = 7; }", "a=1 b=0"},
		{"nested_if", "int a; int b; a = 1; if (a) { if (a == 2) { b = 1; } b = b + 5; }", "a=1 b=5"},
		{"big_numbers", "int x; x = 99999999999999999999999999 + 1;", "x=100000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := runSource(t, tt.src)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if got := varsString(m); got != tt.want {
				t.Errorf("vars = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"store_undeclared", "x = 1;", ErrUndeclared},
		{"load_undeclared", "int x; x = y;", ErrUndeclared},
		{"redeclared", "int x; int x;", ErrRedeclared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSource(t, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunMalformedListings(t *testing.T) {
	tests := []struct {
		name   string
		instrs []codegen.Instruction
		want   error
	}{
		{"underflow", []codegen.Instruction{{Op: codegen.OpAdd}}, ErrStackUnderflow},
		{"store_underflow", []codegen.Instruction{
			{Op: codegen.OpDeclare, Operand: "a"},
			{Op: codegen.OpStore, Operand: "a"},
		}, ErrStackUnderflow},
		{"unknown_label", []codegen.Instruction{
			{Op: codegen.OpLoad, Operand: "0"},
			{Op: codegen.OpJumpIfZero, Operand: "L9"},
		}, ErrUnknownLabel},
		{"backward_jump", []codegen.Instruction{
			{Op: codegen.OpLabel, Operand: "L0"},
			{Op: codegen.OpLoad, Operand: "0"},
			{Op: codegen.OpJumpIfZero, Operand: "L0"},
		}, ErrBadJump},
		{"unknown_op", []codegen.Instruction{{Op: "MUL"}}, ErrUnknownOp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMachine().Run(&codegen.Listing{Instrs: tt.instrs})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunDuplicateLabel(t *testing.T) {
	listing := &codegen.Listing{Instrs: []codegen.Instruction{
		{Op: codegen.OpLabel, Operand: "L0"},
		{Op: codegen.OpLabel, Operand: "L0"},
	}}

	if err := NewMachine().Run(listing); err == nil {
		t.Error("duplicate label was accepted")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	listing := &codegen.Listing{Instrs: []codegen.Instruction{
		{Op: codegen.OpDeclare, Operand: "a"},
		{Op: codegen.OpComment, Operand: "unknown AST node"},
		{Op: codegen.OpLoad, Operand: "4"},
		{Op: codegen.OpStore, Operand: "a"},
	}}

	m := NewMachine()
	if err := m.Run(listing); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	v, ok := m.Lookup("a")
	if !ok || v.Int64() != 4 {
		t.Errorf("a = %v, %v; want 4", v, ok)
	}

	if _, ok := m.Lookup("b"); ok {
		t.Error("Lookup found undeclared variable")
	}
}

func TestVarsAreCopies(t *testing.T) {
	m, err := runSource(t, "int a; a = 5;")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	m.Vars()[0].Value.SetInt64(100)

	if v, _ := m.Lookup("a"); v.Int64() != 5 {
		t.Errorf("a = %s after mutating Vars result, want 5", v)
	}
}
