package strategy

import (
	"math/rand"
	"testing"
)

func TestAlways_Explores(t *testing.T) {
	s := Always{}

	for round := 0; round < 100; round++ {
		if !s.Explore(round) {
			t.Fatalf("Expected exploration at round %d", round)
		}
	}
}

func TestEpsilonGreedy_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	never := NewEpsilonGreedyRand(0, rng)
	for round := 0; round < 100; round++ {
		if never.Explore(round) {
			t.Fatalf("Expected no exploration with epsilon 0 at round %d", round)
		}
	}

	// rand.Float64 is in [0, 1), so epsilon 1 always explores.
	always := NewEpsilonGreedyRand(1, rng)
	for round := 0; round < 100; round++ {
		if !always.Explore(round) {
			t.Fatalf("Expected exploration with epsilon 1 at round %d", round)
		}
	}
}

func TestEpsilonGreedy_Rate(t *testing.T) {
	s := NewEpsilonGreedyRand(0.2, rand.New(rand.NewSource(3)))

	explored := 0
	for round := 0; round < 10000; round++ {
		if s.Explore(round) {
			explored++
		}
	}

	// ~2000 expected; wide band to stay seed-tolerant.
	if explored < 1700 || explored > 2300 {
		t.Errorf("Expected roughly 2000/10000 explorations at epsilon 0.2, got %d", explored)
	}
}

func TestExplorationFirst_Boundary(t *testing.T) {
	s := ExplorationFirst{SwitchRound: 10}

	tests := []struct {
		round int
		want  bool
	}{
		{0, true},
		{9, true},
		{10, false},
		{1000, false},
	}
	for _, tt := range tests {
		if got := s.Explore(tt.round); got != tt.want {
			t.Errorf("Round %d: expected explore=%v, got %v", tt.round, tt.want, got)
		}
	}
}

func TestEpsilonDecreasing_Decays(t *testing.T) {
	s := NewEpsilonDecreasingRand(1.0, 0.1, rand.New(rand.NewSource(5)))

	early, late := 0, 0
	for i := 0; i < 1000; i++ {
		if s.Explore(0) {
			early++
		}
		if s.Explore(100000) {
			late++
		}
	}

	// Round 0 has epsilon 1 (certain); round 100000 has epsilon ~1e-4.
	if early != 1000 {
		t.Errorf("Expected certain exploration at round 0, got %d/1000", early)
	}
	if late > 5 {
		t.Errorf("Expected near-zero exploration at late rounds, got %d/1000", late)
	}
}

func TestEpsilonDecreasing_ZeroDecayMatchesGreedy(t *testing.T) {
	s := NewEpsilonDecreasingRand(1.0, 0, rand.New(rand.NewSource(9)))

	for round := 0; round < 100; round++ {
		if !s.Explore(round) {
			t.Fatalf("Expected exploration with zero decay and epsilon 1 at round %d", round)
		}
	}
}

func TestDescriptions(t *testing.T) {
	schedules := []Schedule{
		Always{},
		NewEpsilonGreedy(0.15),
		ExplorationFirst{SwitchRound: 200},
		NewEpsilonDecreasing(1.0, 0.05),
	}
	for _, s := range schedules {
		if s.Describe() == "" {
			t.Errorf("Expected non-empty description for %T", s)
		}
	}
}
