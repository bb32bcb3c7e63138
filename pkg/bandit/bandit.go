// Package bandit implements arm-selection policies for the multi-armed
// bandit problem: sample-average, Upper Confidence Bound, Thompson sampling,
// Boltzmann/softmax exploration, and a contextual router that partitions the
// problem by an opaque context key.
//
// Arms are opaque string identifiers chosen by the caller; the engine never
// interprets them. Absent state is not an error: reads on arms or contexts
// the policy has never seen return zero values and ok=false.
package bandit

// Policy is the contract shared by all arm-selection algorithms: feed it
// (arm, reward) observations and ask it which arm to play next.
type Policy interface {
	// Update records an observed reward for an arm, creating the arm's
	// record on first use.
	Update(arm string, reward float64) error

	// Estimate returns the current value estimate for an arm, or 0 if the
	// arm has never been updated.
	Estimate(arm string) float64

	// Count returns how many times an arm has been updated, 0 if never.
	Count(arm string) int64

	// SelectBest returns the policy's current choice of arm and the value
	// backing that choice. ok is false when no arm has ever been updated.
	SelectBest() (arm string, value float64, ok bool)

	// Describe returns a short human-readable label for the algorithm.
	Describe() string
}

// armStats holds the running aggregates for one arm under a mean-based
// policy.
type armStats struct {
	count int64
	total float64
	mean  float64
}

// meanState is the shared per-arm storage for the mean-based policies. Arms
// are kept in insertion order so SelectBest tie-breaks are deterministic
// rather than subject to map traversal order.
type meanState struct {
	arms  map[string]*armStats
	order []string
}

func newMeanState() meanState {
	return meanState{arms: make(map[string]*armStats)}
}

// touch returns the stats record for arm, creating it on first use.
func (s *meanState) touch(arm string) *armStats {
	st, ok := s.arms[arm]
	if !ok {
		st = &armStats{}
		s.arms[arm] = st
		s.order = append(s.order, arm)
	}
	return st
}

// record applies the plain running-mean update.
func (s *meanState) record(arm string, reward float64) {
	st := s.touch(arm)
	st.count++
	st.total += reward
	st.mean = st.total / float64(st.count)
}

func (s *meanState) estimate(arm string) float64 {
	st, ok := s.arms[arm]
	if !ok {
		return 0
	}
	return st.mean
}

func (s *meanState) count(arm string) int64 {
	st, ok := s.arms[arm]
	if !ok {
		return 0
	}
	return st.count
}

// best returns the arm with the highest mean. Ties keep the arm inserted
// earliest.
func (s *meanState) best() (string, float64, bool) {
	if len(s.order) == 0 {
		return "", 0, false
	}
	bestArm := s.order[0]
	bestVal := s.arms[bestArm].mean
	for _, arm := range s.order[1:] {
		if v := s.arms[arm].mean; v > bestVal {
			bestArm = arm
			bestVal = v
		}
	}
	return bestArm, bestVal, true
}
