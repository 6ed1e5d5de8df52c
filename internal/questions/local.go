package questions

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
)

// operandRange controls the operands the local generator draws at a level.
type operandRange struct {
	// addMax bounds operands of + and -.
	addMin, addMax int64

	// mulMax bounds factors of × and the divisor and quotient of ÷.
	mulMin, mulMax int64

	ops []string
}

var levelRanges = map[int]operandRange{
	1:  {addMin: 1, addMax: 9, ops: []string{opAdd}},
	2:  {addMin: 1, addMax: 20, ops: []string{opAdd, opSub}},
	3:  {addMin: 5, addMax: 40, mulMin: 2, mulMax: 5, ops: []string{opAdd, opSub, opMul}},
	4:  {addMin: 10, addMax: 60, mulMin: 2, mulMax: 9, ops: []string{opAdd, opSub, opMul}},
	5:  {addMin: 10, addMax: 99, mulMin: 2, mulMax: 10, ops: []string{opAdd, opSub, opMul, opDiv}},
	6:  {addMin: 20, addMax: 150, mulMin: 3, mulMax: 12, ops: []string{opAdd, opSub, opMul, opDiv}},
	7:  {addMin: 50, addMax: 300, mulMin: 4, mulMax: 15, ops: []string{opAdd, opSub, opMul, opDiv}},
	8:  {addMin: 100, addMax: 500, mulMin: 6, mulMax: 20, ops: []string{opAdd, opSub, opMul, opDiv}},
	9:  {addMin: 100, addMax: 999, mulMin: 8, mulMax: 25, ops: []string{opAdd, opSub, opMul, opDiv}},
	10: {addMin: 250, addMax: 999, mulMin: 11, mulMax: 30, ops: []string{opAdd, opSub, opMul, opDiv}},
}

func operandsFor(level int) operandRange {
	if s, ok := levelRanges[level]; ok {
		return s
	}
	if level > 10 {
		return levelRanges[10]
	}
	return levelRanges[1]
}

// LocalGenerator produces equations offline from a seeded PCG stream.
// The same seed yields the same sequence of questions.
type LocalGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	seq int
}

// NewLocalGenerator returns a generator seeded with seed.
func NewLocalGenerator(seed uint64) *LocalGenerator {
	return &LocalGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate implements Source. It always returns exactly count questions.
func (g *LocalGenerator) Generate(_ context.Context, count, level int) []Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Question, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, g.next(level))
	}
	return out
}

func (g *LocalGenerator) next(level int) Question {
	r := operandsFor(level)
	op := r.ops[g.rng.IntN(len(r.ops))]

	var a, b, right int64
	switch op {
	case opAdd:
		a, b = g.between(r.addMin, r.addMax), g.between(r.addMin, r.addMax)
		right = a + b
	case opSub:
		a, b = g.between(r.addMin, r.addMax), g.between(r.addMin, r.addMax)
		if b > a {
			a, b = b, a
		}
		right = a - b
	case opMul:
		a, b = g.between(r.mulMin, r.mulMax), g.between(r.mulMin, r.mulMax)
		right = a * b
	case opDiv:
		b, right = g.between(r.mulMin, r.mulMax), g.between(r.mulMin, r.mulMax)
		a = b * right
	}

	correct := g.rng.IntN(2) == 0
	shown := right
	if !correct {
		shown = g.wrongValue(right)
	}

	g.seq++
	return Question{
		ID:         fmt.Sprintf("local-%d-%d", level, g.seq),
		Equation:   formatEquation(a, op, b, shown),
		IsCorrect:  correct,
		Difficulty: level,
	}
}

// wrongValue offsets right by 1 to 5 in a random direction. Negative results
// are made positive; a result equal to right is pushed up instead.
func (g *LocalGenerator) wrongValue(right int64) int64 {
	offset := g.between(1, 5)
	v := right + offset
	if g.rng.IntN(2) == 0 {
		v = right - offset
	}
	if v < 0 {
		v = -v
	}
	if v == right {
		v = right + offset
	}
	return v
}

func (g *LocalGenerator) between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Int64N(hi-lo+1)
}
