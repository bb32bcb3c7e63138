// Package engine composes a bandit policy with an exploration schedule and
// Prometheus instrumentation, covering the explore/exploit decision loop
// that callers otherwise write by hand. The engine never produces rewards
// itself; the host observes the environment and feeds rewards back through
// Observe.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stoke-ml/bandit/internal/metrics"
	"github.com/stoke-ml/bandit/pkg/bandit"
	"github.com/stoke-ml/bandit/pkg/strategy"
)

// Controller drives one bandit policy through repeated decide/observe
// rounds over a fixed arm universe.
type Controller struct {
	mu       sync.Mutex
	policy   bandit.Policy
	schedule strategy.Schedule
	arms     []string
	rng      *rand.Rand
	metrics  *metrics.Metrics
	round    int
}

// New creates a controller over the given arm universe. arms must be
// non-empty; the slice is copied. A nil reg registers metrics on a private
// registry.
func New(policy bandit.Policy, schedule strategy.Schedule, arms []string, reg prometheus.Registerer) (*Controller, error) {
	if len(arms) == 0 {
		return nil, fmt.Errorf("engine: arm universe must not be empty")
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Controller{
		policy:   policy,
		schedule: schedule,
		arms:     append([]string(nil), arms...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		metrics:  metrics.New(reg),
	}, nil
}

// Decide returns the arm to play this round: a uniformly random arm when
// the schedule calls for exploration, otherwise the policy's current best,
// falling back to a random arm while the policy has seen nothing.
func (c *Controller) Decide() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	round := c.round
	c.round++

	if c.schedule.Explore(round) {
		c.metrics.Decisions.WithLabelValues(metrics.ModeExploration).Inc()
		return c.arms[c.rng.Intn(len(c.arms))]
	}

	c.metrics.Decisions.WithLabelValues(metrics.ModeExploitation).Inc()
	arm, _, ok := c.policy.SelectBest()
	if !ok {
		arm = c.arms[c.rng.Intn(len(c.arms))]
	}
	return arm
}

// Observe feeds the reward observed for an arm back into the policy.
func (c *Controller) Observe(arm string, reward float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Update(arm, reward); err != nil {
		return err
	}

	label := c.policy.Describe()
	c.metrics.Updates.WithLabelValues(label).Inc()
	c.metrics.RewardTotal.WithLabelValues(label).Add(reward)
	return nil
}

// Rounds returns how many decisions have been made so far.
func (c *Controller) Rounds() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.round
}

// Describe labels the controller by its policy and schedule.
func (c *Controller) Describe() string {
	return fmt.Sprintf("%s with %s", c.policy.Describe(), c.schedule.Describe())
}
