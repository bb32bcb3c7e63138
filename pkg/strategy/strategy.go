// Package strategy provides exploration/exploitation schedules for bandit
// callers. A Schedule decides, per round, whether the caller should play a
// random arm or ask its policy for the current best one.
package strategy

import (
	"fmt"
	"math/rand"
	"time"
)

// Schedule decides whether a 0-based round should explore.
type Schedule interface {
	Explore(round int) bool
	Describe() string
}

// Always explores every round.
type Always struct{}

// Explore always reports true.
func (Always) Explore(int) bool { return true }

// Describe identifies the schedule.
func (Always) Describe() string { return "100% exploration" }

// EpsilonGreedy explores with a fixed probability each round.
type EpsilonGreedy struct {
	Epsilon float64
	rng     *rand.Rand
}

// NewEpsilonGreedy creates an epsilon-greedy schedule seeded from the
// current time.
func NewEpsilonGreedy(epsilon float64) *EpsilonGreedy {
	return NewEpsilonGreedyRand(epsilon, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEpsilonGreedyRand creates an epsilon-greedy schedule drawing from rng.
func NewEpsilonGreedyRand(epsilon float64, rng *rand.Rand) *EpsilonGreedy {
	return &EpsilonGreedy{Epsilon: epsilon, rng: rng}
}

// Explore reports true with probability Epsilon.
func (s *EpsilonGreedy) Explore(int) bool {
	return s.rng.Float64() < s.Epsilon
}

// Describe identifies the schedule.
func (s *EpsilonGreedy) Describe() string {
	return fmt.Sprintf("epsilon greedy, epsilon = %g", s.Epsilon)
}

// ExplorationFirst explores for the first SwitchRound rounds, then exploits.
type ExplorationFirst struct {
	SwitchRound int
}

// Explore reports true while round is below SwitchRound.
func (s ExplorationFirst) Explore(round int) bool {
	return round < s.SwitchRound
}

// Describe identifies the schedule.
func (s ExplorationFirst) Describe() string {
	return fmt.Sprintf("exploration first for %d rounds", s.SwitchRound)
}

// EpsilonDecreasing explores with probability Epsilon/(1 + Decay·round),
// approaching pure exploitation as rounds accumulate.
type EpsilonDecreasing struct {
	Epsilon float64
	Decay   float64
	rng     *rand.Rand
}

// NewEpsilonDecreasing creates an epsilon-decreasing schedule seeded from
// the current time.
func NewEpsilonDecreasing(epsilon, decay float64) *EpsilonDecreasing {
	return NewEpsilonDecreasingRand(epsilon, decay, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEpsilonDecreasingRand creates an epsilon-decreasing schedule drawing
// from rng.
func NewEpsilonDecreasingRand(epsilon, decay float64, rng *rand.Rand) *EpsilonDecreasing {
	return &EpsilonDecreasing{Epsilon: epsilon, Decay: decay, rng: rng}
}

// Explore reports true with the decayed probability for this round.
func (s *EpsilonDecreasing) Explore(round int) bool {
	epsilon := s.Epsilon / (1 + s.Decay*float64(round))
	return s.rng.Float64() < epsilon
}

// Describe identifies the schedule.
func (s *EpsilonDecreasing) Describe() string {
	return fmt.Sprintf("epsilon decreasing, epsilon = %g, decay = %g", s.Epsilon, s.Decay)
}
