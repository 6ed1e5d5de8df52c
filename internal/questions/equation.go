package questions

import (
	"fmt"
	"regexp"
	"strconv"
)

// equationRe matches "a op b = c" with integer operands.
var equationRe = regexp.MustCompile(`^\s*(-?\d+)\s*([+\-*×x÷/])\s*(-?\d+)\s*=\s*(-?\d+)\s*$`)

// operator symbols as displayed on cards.
const (
	opAdd = "+"
	opSub = "-"
	opMul = "×"
	opDiv = "÷"
)

// maxOperand bounds the magnitude of either operand so evaluation never
// overflows int64.
const maxOperand = 999_999

// parsedEquation is a decomposed "a op b = c" statement.
type parsedEquation struct {
	A, B, C int64
	Op      string
}

// parseEquation decomposes an equation string. Multiplication and division
// symbols are normalized to × and ÷.
func parseEquation(eq string) (parsedEquation, error) {
	m := equationRe.FindStringSubmatch(eq)
	if m == nil {
		return parsedEquation{}, fmt.Errorf("not an equation of the form \"a op b = c\": %q", eq)
	}
	a, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return parsedEquation{}, err
	}
	b, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return parsedEquation{}, err
	}
	c, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return parsedEquation{}, err
	}
	if abs(a) > maxOperand || abs(b) > maxOperand {
		return parsedEquation{}, fmt.Errorf("operand out of range ±%d: %q", maxOperand, eq)
	}
	return parsedEquation{A: a, B: b, C: c, Op: normalizeOp(m[2])}, nil
}

// evaluate returns the true value of the left-hand side.
func (p parsedEquation) evaluate() (int64, error) {
	switch p.Op {
	case opAdd:
		return p.A + p.B, nil
	case opSub:
		return p.A - p.B, nil
	case opMul:
		return p.A * p.B, nil
	case opDiv:
		if p.B == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		if p.A%p.B != 0 {
			return 0, fmt.Errorf("inexact division %d ÷ %d", p.A, p.B)
		}
		return p.A / p.B, nil
	default:
		return 0, fmt.Errorf("unsupported operator %q", p.Op)
	}
}

// Holds reports whether the equation is arithmetically true.
func Holds(eq string) (bool, error) {
	p, err := parseEquation(eq)
	if err != nil {
		return false, err
	}
	v, err := p.evaluate()
	if err != nil {
		return false, err
	}
	return v == p.C, nil
}

func (p parsedEquation) String() string {
	return formatEquation(p.A, p.Op, p.B, p.C)
}

// canonicalEquation rewrites a parseable equation in card form, e.g.
// "7*8=56" becomes "7 × 8 = 56". Anything else is returned unchanged for
// the validators to reject.
func canonicalEquation(eq string) string {
	p, err := parseEquation(eq)
	if err != nil {
		return eq
	}
	return p.String()
}

func formatEquation(a int64, op string, b, c int64) string {
	return fmt.Sprintf("%d %s %d = %d", a, op, b, c)
}

func normalizeOp(op string) string {
	switch op {
	case "*", "x":
		return opMul
	case "/":
		return opDiv
	default:
		return op
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
