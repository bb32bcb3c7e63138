package bandit

import (
	"math"
	"sync"
)

// DefaultExploration is the default UCB exploration-strength constant.
const DefaultExploration = 1.0

// UCB is an Upper Confidence Bound bandit. Each update folds an exploration
// bonus sqrt(2·β·ln(n)/n) into the accumulated reward before averaging, with
// n the arm's count after this update, so Estimate reports the blended
// reward-plus-bonus mean rather than the raw reward mean. The first update
// of an arm carries a zero bonus (ln(1) = 0).
type UCB struct {
	mu    sync.RWMutex
	state meanState

	beta       float64 // exploration strength, immutable
	totalCount int64   // updates across all arms
	lastBonus  float64 // bonus computed on the most recent update, any arm
}

// NewUCB creates a UCB policy. beta values <= 0 fall back to
// DefaultExploration.
func NewUCB(beta float64) *UCB {
	if beta <= 0 {
		beta = DefaultExploration
	}
	return &UCB{state: newMeanState(), beta: beta}
}

// Update records a reward plus the exploration bonus for this pull.
func (p *UCB) Update(arm string, reward float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := p.state.touch(arm)
	st.count++
	p.totalCount++

	n := float64(st.count)
	p.lastBonus = math.Sqrt(2 * p.beta * math.Log(n) / n)
	st.total += reward + p.lastBonus
	st.mean = st.total / n
	return nil
}

// LastBonus returns the exploration bonus computed on the most recent
// update, regardless of which arm it was for.
func (p *UCB) LastBonus() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.lastBonus
}

// TotalCount returns the number of updates across all arms.
func (p *UCB) TotalCount() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.totalCount
}

// Estimate returns the arm's blended reward-plus-bonus mean, or 0 for an
// unseen arm.
func (p *UCB) Estimate(arm string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.estimate(arm)
}

// Count returns how many times the arm has been updated.
func (p *UCB) Count(arm string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.count(arm)
}

// SelectBest returns the arm with the highest blended mean.
func (p *UCB) SelectBest() (string, float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.best()
}

// Describe identifies the algorithm variant.
func (p *UCB) Describe() string {
	return "UCB bandit"
}
