package bandit

import "sync"

// ContextualRouter partitions a bandit problem by an opaque context key.
// Each context gets its own independent UCB policy, created lazily on the
// first update under that context and kept for the router's lifetime. The
// empty string is an ordinary context key, not a merged catch-all.
type ContextualRouter struct {
	mu       sync.RWMutex
	policies map[string]*UCB
	beta     float64
}

// NewContextualRouter creates a router whose per-context UCB instances use
// beta as the exploration constant (<= 0 falls back to DefaultExploration).
func NewContextualRouter(beta float64) *ContextualRouter {
	if beta <= 0 {
		beta = DefaultExploration
	}
	return &ContextualRouter{
		policies: make(map[string]*UCB),
		beta:     beta,
	}
}

// Update records a reward for an arm under a context, instantiating the
// context's policy on first use.
func (r *ContextualRouter) Update(arm string, reward float64, context string) error {
	r.mu.Lock()
	p, ok := r.policies[context]
	if !ok {
		p = NewUCB(r.beta)
		r.policies[context] = p
	}
	r.mu.Unlock()

	return p.Update(arm, reward)
}

// Estimate returns the estimate for an arm under a context, or 0 when the
// context has never been seen.
func (r *ContextualRouter) Estimate(arm, context string) float64 {
	p, ok := r.lookup(context)
	if !ok {
		return 0
	}
	return p.Estimate(arm)
}

// Count returns how many times an arm has been updated under a context.
func (r *ContextualRouter) Count(arm, context string) int64 {
	p, ok := r.lookup(context)
	if !ok {
		return 0
	}
	return p.Count(arm)
}

// SelectBest returns the best arm under a context. ok is false when the
// context has never been seen.
func (r *ContextualRouter) SelectBest(context string) (string, float64, bool) {
	p, ok := r.lookup(context)
	if !ok {
		return "", 0, false
	}
	return p.SelectBest()
}

// Contexts returns the number of contexts the router has seen.
func (r *ContextualRouter) Contexts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.policies)
}

func (r *ContextualRouter) lookup(context string) (*UCB, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[context]
	return p, ok
}

// Describe identifies the algorithm variant.
func (r *ContextualRouter) Describe() string {
	return "contextual UCB router"
}
