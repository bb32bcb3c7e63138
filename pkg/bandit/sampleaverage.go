package bandit

import "sync"

// SampleAverage estimates each arm by the plain running mean of its observed
// rewards. Estimate returns 0 both for unseen arms and for arms whose
// rewards average to zero; callers needing to tell the two apart should
// consult Count.
type SampleAverage struct {
	mu    sync.RWMutex
	state meanState
}

// NewSampleAverage creates a sample-average policy.
func NewSampleAverage() *SampleAverage {
	return &SampleAverage{state: newMeanState()}
}

// Update records a reward and recomputes the arm's running mean.
func (p *SampleAverage) Update(arm string, reward float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.record(arm, reward)
	return nil
}

// Estimate returns the arm's running mean, or 0 for an unseen arm.
func (p *SampleAverage) Estimate(arm string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.estimate(arm)
}

// Count returns how many times the arm has been updated.
func (p *SampleAverage) Count(arm string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.count(arm)
}

// SelectBest returns the arm with the highest running mean.
func (p *SampleAverage) SelectBest() (string, float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.best()
}

// Describe identifies the algorithm variant.
func (p *SampleAverage) Describe() string {
	return "sample-average bandit"
}
