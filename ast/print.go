package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the AST to w: one node
// per line with children indented beneath their parent.
func Fprint(w io.Writer, node ASTNode) {
	p := &printer{w: w}
	p.print(node)
}

// Sprint returns the textual representation of the AST written by Fprint.
func Sprint(node ASTNode) string {
	sb := &strings.Builder{}
	Fprint(sb, node)
	return sb.String()
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node ASTNode) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Block:
		// A nil block is stored in an interface as a non-nil value.
		if n == nil {
			return
		}

		p.printf("Block")
		p.indent++
		for _, stmt := range n.Stmts {
			p.print(stmt)
		}
		p.indent--
	case *VarDecl:
		p.printf("VarDecl %s", n.Name)
	case *Assignment:
		p.printf("Assign %s", n.Target)
		p.indent++
		p.print(n.Value)
		p.indent--
	case *IfStmt:
		p.printf("If")
		p.indent++
		p.print(n.Cond)
		p.print(n.Body)
		p.indent--
	case *BinaryOp:
		p.printf("BinaryOp %s", OpSymbol(n.Op))
		p.indent++
		p.print(n.Lhs)
		p.print(n.Rhs)
		p.indent--
	case *Literal:
		p.printf("Literal %s", n.Value)
	case *Identifier:
		p.printf("Identifier %s", n.Name)
	default:
		p.printf("<unknown %T>", n)
	}
}
