package questions

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubGenerator struct {
	qs     []Question
	err    error
	inputs []GenerateInput
	block  bool
}

func (s *stubGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	s.inputs = append(s.inputs, input)
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.qs, s.err
}

func remoteQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: "r", Equation: formatEquation(int64(i), opAdd, 1, int64(i+1)), IsCorrect: true, Difficulty: 2}
	}
	return qs
}

func countLocal(qs []Question) int {
	n := 0
	for _, q := range qs {
		if q.ID != "r" {
			n++
		}
	}
	return n
}

func TestFallbackSource_RemoteSuccess(t *testing.T) {
	remote := &stubGenerator{qs: remoteQuestions(10)}
	src := NewFallbackSource(remote, NewLocalGenerator(1))

	qs := src.Generate(context.Background(), 10, 2)
	if len(qs) != 10 {
		t.Fatalf("expected 10, got %d", len(qs))
	}
	if n := countLocal(qs); n != 0 {
		t.Errorf("expected no local questions, got %d", n)
	}
}

func TestFallbackSource_RemoteFailureUsesLocal(t *testing.T) {
	remote := &stubGenerator{err: errors.New("boom")}
	src := NewFallbackSource(remote, NewLocalGenerator(1))

	qs := src.Generate(context.Background(), 10, 2)
	if len(qs) != 10 {
		t.Fatalf("expected 10, got %d", len(qs))
	}
	if n := countLocal(qs); n != 10 {
		t.Errorf("expected 10 local questions, got %d", n)
	}
}

func TestFallbackSource_ShortBatchToppedUp(t *testing.T) {
	remote := &stubGenerator{qs: remoteQuestions(3)}
	src := NewFallbackSource(remote, NewLocalGenerator(1))

	qs := src.Generate(context.Background(), 10, 2)
	if len(qs) != 10 {
		t.Fatalf("expected 10, got %d", len(qs))
	}
	if n := countLocal(qs); n != 7 {
		t.Errorf("expected 7 local questions, got %d", n)
	}
}

func TestFallbackSource_OversizedBatchTrimmed(t *testing.T) {
	remote := &stubGenerator{qs: remoteQuestions(15)}
	src := NewFallbackSource(remote, NewLocalGenerator(1))

	if qs := src.Generate(context.Background(), 10, 2); len(qs) != 10 {
		t.Fatalf("expected 10, got %d", len(qs))
	}
}

func TestFallbackSource_RemoteTimeout(t *testing.T) {
	remote := &stubGenerator{block: true}
	src := NewFallbackSource(remote, NewLocalGenerator(1), WithRemoteTimeout(10*time.Millisecond))

	start := time.Now()
	qs := src.Generate(context.Background(), 5, 1)
	if len(qs) != 5 {
		t.Fatalf("expected 5, got %d", len(qs))
	}
	if time.Since(start) > time.Second {
		t.Error("remote timeout not applied")
	}
}

func TestFallbackSource_NilRemote(t *testing.T) {
	src := NewFallbackSource(nil, NewLocalGenerator(1))
	if qs := src.Generate(context.Background(), 4, 3); len(qs) != 4 {
		t.Fatalf("expected 4, got %d", len(qs))
	}
}

func TestFallbackSource_PassesRecentEquations(t *testing.T) {
	remote := &stubGenerator{qs: remoteQuestions(2)}
	src := NewFallbackSource(remote, NewLocalGenerator(1))

	first := src.Generate(context.Background(), 2, 1)
	src.Generate(context.Background(), 2, 1)

	if len(remote.inputs) != 2 {
		t.Fatalf("expected 2 remote calls, got %d", len(remote.inputs))
	}
	prior := remote.inputs[1].PriorEquations
	if len(prior) != 2 || prior[0] != first[0].Equation || prior[1] != first[1].Equation {
		t.Errorf("prior equations = %v", prior)
	}
}

func TestFallbackSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewFallbackSource(&stubGenerator{err: context.Canceled}, NewLocalGenerator(1))

	if qs := src.Generate(ctx, 5, 1); len(qs) != 0 {
		t.Errorf("expected no questions after cancel, got %d", len(qs))
	}
}
