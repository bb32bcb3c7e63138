package bandit

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// Compile-time interface checks for all policy variants.
var (
	_ Policy = (*SampleAverage)(nil)
	_ Policy = (*UCB)(nil)
	_ Policy = (*Thompson)(nil)
	_ Policy = (*Softmax)(nil)
)

func TestSampleAverage_Scenario(t *testing.T) {
	p := NewSampleAverage()

	p.Update("A", 1.0)
	p.Update("A", 0.0)
	p.Update("B", 0.5)

	if got := p.Estimate("A"); math.Abs(got-0.5) > tolerance {
		t.Errorf("Expected estimate 0.5 for A, got %g", got)
	}
	if got := p.Estimate("B"); math.Abs(got-0.5) > tolerance {
		t.Errorf("Expected estimate 0.5 for B, got %g", got)
	}
	if got := p.Count("A"); got != 2 {
		t.Errorf("Expected count 2 for A, got %d", got)
	}
	if got := p.Count("B"); got != 1 {
		t.Errorf("Expected count 1 for B, got %d", got)
	}
}

func TestSampleAverage_MeanConsistency(t *testing.T) {
	p := NewSampleAverage()

	rewards := []float64{0.3, -1.2, 4.5, 0.0, 2.25, -0.75}
	sum := 0.0
	for _, r := range rewards {
		p.Update("arm", r)
		sum += r
	}

	want := sum / float64(len(rewards))
	if got := p.Estimate("arm"); math.Abs(got-want) > tolerance {
		t.Errorf("Expected estimate %g, got %g", want, got)
	}
	if got := p.Count("arm"); got != int64(len(rewards)) {
		t.Errorf("Expected count %d, got %d", len(rewards), got)
	}
}

func TestSampleAverage_UnseenDefaults(t *testing.T) {
	p := NewSampleAverage()

	if got := p.Estimate("ghost"); got != 0 {
		t.Errorf("Expected estimate 0 for unseen arm, got %g", got)
	}
	if got := p.Count("ghost"); got != 0 {
		t.Errorf("Expected count 0 for unseen arm, got %d", got)
	}
	if arm, value, ok := p.SelectBest(); ok {
		t.Errorf("Expected no selection on empty policy, got (%q, %g)", arm, value)
	}
}

func TestSampleAverage_SelectBest(t *testing.T) {
	p := NewSampleAverage()

	p.Update("low", 0.1)
	p.Update("high", 0.9)
	p.Update("mid", 0.5)

	arm, value, ok := p.SelectBest()
	if !ok {
		t.Fatal("Expected a selection")
	}
	if arm != "high" {
		t.Errorf("Expected best arm high, got %q", arm)
	}
	if math.Abs(value-0.9) > tolerance {
		t.Errorf("Expected best value 0.9, got %g", value)
	}
}

func TestSampleAverage_TieBreaksToFirstInserted(t *testing.T) {
	p := NewSampleAverage()

	p.Update("second-best-first", 0.5)
	p.Update("equal-later", 0.5)

	arm, _, ok := p.SelectBest()
	if !ok {
		t.Fatal("Expected a selection")
	}
	if arm != "second-best-first" {
		t.Errorf("Expected tie to keep first-inserted arm, got %q", arm)
	}
}

func TestSampleAverage_ConcurrentUpdates(t *testing.T) {
	p := NewSampleAverage()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				p.Update("arm", 1.0)
				p.Estimate("arm")
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	if got := p.Count("arm"); got != 1000 {
		t.Errorf("Expected 1000 updates with concurrent access, got %d", got)
	}
	if got := p.Estimate("arm"); math.Abs(got-1.0) > tolerance {
		t.Errorf("Expected estimate 1.0, got %g", got)
	}
}
