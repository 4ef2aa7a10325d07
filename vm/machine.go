// Package vm evaluates generated instruction listings.  The machine is a simple
// stack machine over arbitrary precision integers: the language places no
// bound on the magnitude of its numbers.
package vm

import (
	"errors"
	"fmt"
	"math/big"

	"slc/codegen"
)

// Enumeration of evaluation failures.  Every error returned by Run wraps one of
// these.
var (
	ErrUndeclared     = errors.New("undeclared variable")
	ErrRedeclared     = errors.New("variable declared multiple times")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownLabel   = errors.New("unknown label")
	ErrUnknownOp      = errors.New("unknown instruction")
	ErrBadJump        = errors.New("backward jump")
)

// Var is a variable along with its current value.
type Var struct {
	Name  string
	Value *big.Int
}

// Machine executes instruction listings.  The variables of a machine persist
// across calls to Run.
type Machine struct {
	// The value stack.
	stack []*big.Int

	// The table of declared variables.
	vars map[string]*big.Int

	// The names of the declared variables in declaration order.
	order []string
}

// NewMachine creates a new machine with no declared variables.
func NewMachine() *Machine {
	return &Machine{vars: make(map[string]*big.Int)}
}

// Run executes a listing from its first instruction until it falls off the end.
func (m *Machine) Run(listing *codegen.Listing) error {
	labels, err := collectLabels(listing.Instrs)
	if err != nil {
		return err
	}

	for pc := 0; pc < len(listing.Instrs); pc++ {
		inst := listing.Instrs[pc]

		target, err := m.step(inst, labels)
		if err != nil {
			return fmt.Errorf("instruction %d (`%s`): %w", pc, inst, err)
		}

		if target >= 0 {
			if target <= pc {
				return fmt.Errorf("instruction %d (`%s`): %w", pc, inst, ErrBadJump)
			}

			// The loop increment moves past the label itself.
			pc = target
		}
	}

	return nil
}

// Vars returns the machine's variables in declaration order.
func (m *Machine) Vars() []Var {
	vars := make([]Var, len(m.order))

	for i, name := range m.order {
		vars[i] = Var{Name: name, Value: new(big.Int).Set(m.vars[name])}
	}

	return vars
}

// Lookup returns the current value of a variable.
func (m *Machine) Lookup(name string) (*big.Int, bool) {
	v, ok := m.vars[name]
	if !ok {
		return nil, false
	}

	return new(big.Int).Set(v), true
}

// -----------------------------------------------------------------------------

// collectLabels maps every label in instrs to its position.
func collectLabels(instrs []codegen.Instruction) (map[string]int, error) {
	labels := make(map[string]int)

	for i, inst := range instrs {
		if inst.Op != codegen.OpLabel {
			continue
		}

		if _, ok := labels[inst.Operand]; ok {
			return nil, fmt.Errorf("label `%s` defined multiple times", inst.Operand)
		}

		labels[inst.Operand] = i
	}

	return labels, nil
}

// step executes a single instruction.  It returns the position to jump to or
// -1 if execution continues with the next instruction.
func (m *Machine) step(inst codegen.Instruction, labels map[string]int) (int, error) {
	switch inst.Op {
	case codegen.OpDeclare:
		if _, ok := m.vars[inst.Operand]; ok {
			return -1, fmt.Errorf("%w: `%s`", ErrRedeclared, inst.Operand)
		}

		m.vars[inst.Operand] = new(big.Int)
		m.order = append(m.order, inst.Operand)
	case codegen.OpLoad:
		v, err := m.loadOperand(inst.Operand)
		if err != nil {
			return -1, err
		}

		m.push(v)
	case codegen.OpStore:
		if _, ok := m.vars[inst.Operand]; !ok {
			return -1, fmt.Errorf("%w: `%s`", ErrUndeclared, inst.Operand)
		}

		v, err := m.pop()
		if err != nil {
			return -1, err
		}

		m.vars[inst.Operand] = v
	case codegen.OpAdd, codegen.OpSub, codegen.OpEq:
		rhs, err := m.pop()
		if err != nil {
			return -1, err
		}

		lhs, err := m.pop()
		if err != nil {
			return -1, err
		}

		m.push(applyBinary(inst.Op, lhs, rhs))
	case codegen.OpJumpIfZero:
		target, ok := labels[inst.Operand]
		if !ok {
			return -1, fmt.Errorf("%w: `%s`", ErrUnknownLabel, inst.Operand)
		}

		cond, err := m.pop()
		if err != nil {
			return -1, err
		}

		if cond.Sign() == 0 {
			return target, nil
		}
	case codegen.OpLabel, codegen.OpComment:
		// Nothing to execute.
	default:
		return -1, fmt.Errorf("%w: `%s`", ErrUnknownOp, inst.Op)
	}

	return -1, nil
}

// loadOperand evaluates the operand of a load: either a number literal or the
// name of a declared variable.
func (m *Machine) loadOperand(operand string) (*big.Int, error) {
	if v, ok := new(big.Int).SetString(operand, 10); ok {
		return v, nil
	}

	v, ok := m.vars[operand]
	if !ok {
		return nil, fmt.Errorf("%w: `%s`", ErrUndeclared, operand)
	}

	return new(big.Int).Set(v), nil
}

// applyBinary applies a binary instruction to its operands.
func applyBinary(op string, lhs, rhs *big.Int) *big.Int {
	switch op {
	case codegen.OpAdd:
		return new(big.Int).Add(lhs, rhs)
	case codegen.OpSub:
		return new(big.Int).Sub(lhs, rhs)
	default:
		if lhs.Cmp(rhs) == 0 {
			return big.NewInt(1)
		}

		return big.NewInt(0)
	}
}

func (m *Machine) push(v *big.Int) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() (*big.Int, error) {
	if len(m.stack) == 0 {
		return nil, ErrStackUnderflow
	}

	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}
