package behavioral

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the grammar's capability: every node can evaluate itself.
type Expr interface {
	Eval() int
}

// Number is a terminal expression.
type Number int

// Eval returns the literal value.
func (n Number) Eval() int { return int(n) }

// Add is the "+" non-terminal.
type Add struct{ Left, Right Expr }

// Eval sums both operands.
func (a Add) Eval() int { return a.Left.Eval() + a.Right.Eval() }

// Sub is the "-" non-terminal.
type Sub struct{ Left, Right Expr }

// Eval subtracts the right operand from the left.
func (s Sub) Eval() int { return s.Left.Eval() - s.Right.Eval() }

// Parse reads a space-separated infix expression over integers, "+" and
// "-" (left-associative) and returns its syntax tree.
// Any other operator token returns ErrBadToken, as does a malformed
// operand or a dangling operator.
func Parse(input string) (Expr, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrBadToken)
	}
	if len(tokens)%2 == 0 {
		return nil, fmt.Errorf("%w: dangling operator", ErrBadToken)
	}

	left, err := parseOperand(tokens[0])
	if err != nil {
		return nil, err
	}
	var tree Expr = left
	for i := 1; i < len(tokens); i += 2 {
		right, err := parseOperand(tokens[i+1])
		if err != nil {
			return nil, err
		}
		switch tokens[i] {
		case "+":
			tree = Add{Left: tree, Right: right}
		case "-":
			tree = Sub{Left: tree, Right: right}
		default:
			return nil, fmt.Errorf("%w: operator %q", ErrBadToken, tokens[i])
		}
	}

	return tree, nil
}

func parseOperand(tok string) (Expr, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: operand %q", ErrBadToken, tok)
	}

	return Number(n), nil
}

// Interpret parses and evaluates input in one step.
func Interpret(input string) (int, error) {
	tree, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return tree.Eval(), nil
}
