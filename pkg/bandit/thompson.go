package bandit

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// armPosterior holds one arm's Beta posterior. alpha+beta-2 always equals
// count, since each update adds reward to alpha and 1-reward to beta.
type armPosterior struct {
	alpha      float64 // successes + 1
	beta       float64 // failures + 1
	count      int64
	lastSample float64 // most recent posterior draw
}

// Thompson is a Bernoulli Thompson sampling bandit. Each arm carries a
// Beta(alpha, beta) posterior seeded at the uniform prior Beta(1, 1), and
// SelectBest picks the arm with the largest posterior draw. Rewards must be
// exactly 0 or 1.
type Thompson struct {
	mu    sync.RWMutex
	arms  map[string]*armPosterior
	order []string
	src   rand.Source
}

// NewThompson creates a Thompson sampling policy seeded from the current
// time.
func NewThompson() *Thompson {
	return NewThompsonSource(rand.NewSource(uint64(time.Now().UnixNano())))
}

// NewThompsonSource creates a Thompson sampling policy drawing posterior
// samples from src.
func NewThompsonSource(src rand.Source) *Thompson {
	return &Thompson{
		arms: make(map[string]*armPosterior),
		src:  src,
	}
}

// Update records a Bernoulli reward. Rewards outside {0, 1} are rejected
// before any state changes; they would otherwise silently corrupt the Beta
// shape parameters.
func (p *Thompson) Update(arm string, reward float64) error {
	if reward != 0 && reward != 1 {
		return fmt.Errorf("thompson sampling: reward must be 0 or 1, got %g", reward)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	st, ok := p.arms[arm]
	if !ok {
		st = &armPosterior{alpha: 1, beta: 1}
		p.arms[arm] = st
		p.order = append(p.order, arm)
	}
	st.count++
	st.alpha += reward
	st.beta += 1 - reward
	return nil
}

// Estimate returns the posterior mean with the uniform-prior pseudo-counts
// removed: (alpha-1) / ((alpha-1) + (beta-1)). Unseen arms report 0, which
// also keeps the prior-only denominator of zero out of the formula.
func (p *Thompson) Estimate(arm string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st, ok := p.arms[arm]
	if !ok {
		return 0
	}
	return (st.alpha - 1) / ((st.alpha - 1) + (st.beta - 1))
}

// Count returns how many times the arm has been updated.
func (p *Thompson) Count(arm string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st, ok := p.arms[arm]
	if !ok {
		return 0
	}
	return st.count
}

// SelectBest draws one sample from every known arm's posterior and returns
// the arm with the largest draw. Selection is stochastic and re-draws on
// every call. Each arm's draw is stored and readable through LastSample
// afterwards, even for the arms not returned. Ties keep the earlier arm in
// insertion order; only a strictly larger sample displaces the running best.
func (p *Thompson) SelectBest() (string, float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.order) == 0 {
		return "", 0, false
	}

	bestArm := ""
	bestVal := -1.0
	for _, arm := range p.order {
		st := p.arms[arm]
		dist := distuv.Beta{Alpha: st.alpha, Beta: st.beta, Src: p.src}
		st.lastSample = dist.Rand()
		if st.lastSample > bestVal {
			bestArm = arm
			bestVal = st.lastSample
		}
	}
	return bestArm, bestVal, true
}

// LastSample returns the arm's most recent posterior draw, or 0 if the arm
// is unseen or SelectBest has not run since the arm appeared.
func (p *Thompson) LastSample(arm string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st, ok := p.arms[arm]
	if !ok {
		return 0
	}
	return st.lastSample
}

// Describe identifies the algorithm variant.
func (p *Thompson) Describe() string {
	return "Thompson sampling bandit"
}
