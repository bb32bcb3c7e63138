package bandit

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// DefaultTemperature is the default Boltzmann temperature.
const DefaultTemperature = 1.0

// Softmax keeps the same running-mean estimates as SampleAverage but selects
// arms probabilistically over a Boltzmann distribution of the estimates:
// each arm is drawn with probability proportional to exp(estimate/τ). Higher
// temperatures approach uniform selection, lower temperatures approach
// greedy.
type Softmax struct {
	mu    sync.RWMutex
	state meanState
	tau   float64 // temperature, immutable
	rng   *rand.Rand
}

// NewSoftmax creates a softmax policy seeded from the current time. tau
// values <= 0 fall back to DefaultTemperature.
func NewSoftmax(tau float64) *Softmax {
	return NewSoftmaxRand(tau, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSoftmaxRand creates a softmax policy drawing from rng.
func NewSoftmaxRand(tau float64, rng *rand.Rand) *Softmax {
	if tau <= 0 {
		tau = DefaultTemperature
	}
	return &Softmax{state: newMeanState(), tau: tau, rng: rng}
}

// Update records a reward and recomputes the arm's running mean.
func (p *Softmax) Update(arm string, reward float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.record(arm, reward)
	return nil
}

// Estimate returns the arm's running mean, or 0 for an unseen arm.
func (p *Softmax) Estimate(arm string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.estimate(arm)
}

// Count returns how many times the arm has been updated.
func (p *Softmax) Count(arm string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state.count(arm)
}

// weights returns the unnormalized Boltzmann weights in insertion order.
// The maximum estimate is subtracted before exponentiating; proportional
// sampling is invariant under the shift and the exponential cannot overflow
// for large estimates or small temperatures. Caller must hold p.mu.
func (p *Softmax) weights() []float64 {
	maxMean := math.Inf(-1)
	for _, arm := range p.state.order {
		if m := p.state.arms[arm].mean; m > maxMean {
			maxMean = m
		}
	}
	w := make([]float64, len(p.state.order))
	for i, arm := range p.state.order {
		w[i] = math.Exp((p.state.arms[arm].mean - maxMean) / p.tau)
	}
	return w
}

// SelectBest draws one arm from the Boltzmann distribution over the current
// estimates and returns it with its running mean. Selection is stochastic
// and re-draws on every call.
func (p *Softmax) SelectBest() (string, float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.state.order) == 0 {
		return "", 0, false
	}

	w := p.weights()
	total := 0.0
	for _, v := range w {
		total += v
	}

	target := p.rng.Float64() * total
	cum := 0.0
	idx := len(w) - 1
	for i, v := range w {
		cum += v
		if target < cum {
			idx = i
			break
		}
	}

	arm := p.state.order[idx]
	return arm, p.state.arms[arm].mean, true
}

// Probabilities returns the normalized selection distribution over all known
// arms as arm -> probability, summing to 1. The map is empty when no arm has
// been updated. Diagnostics only; SelectBest does not consult it.
func (p *Softmax) Probabilities() map[string]float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	probs := make(map[string]float64, len(p.state.order))
	if len(p.state.order) == 0 {
		return probs
	}

	w := p.weights()
	total := 0.0
	for _, v := range w {
		total += v
	}
	for i, arm := range p.state.order {
		probs[arm] = w[i] / total
	}
	return probs
}

// Describe identifies the algorithm variant.
func (p *Softmax) Describe() string {
	return "softmax bandit"
}
