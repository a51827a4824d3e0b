package pet

import (
	"math"
	"time"
)

// ClickTracker suppresses runaway gains from rapid repeated clicks on the
// same action. Each recorded click counts against the stat until its own
// expiry passes; expiries are independent, so stacked clicks decay one by
// one. Expiry timestamps against the injected clock keep tests
// deterministic; no timers fire in the background.
type ClickTracker struct {
	window   time.Duration
	step     float64
	expiries map[Stat][]time.Time
}

// NewClickTracker creates a tracker with the policy's click window and
// penalty step.
func NewClickTracker(policy Policy) *ClickTracker {
	return &ClickTracker{
		window:   policy.ClickWindow,
		step:     policy.ClickPenaltyStep,
		expiries: make(map[Stat][]time.Time),
	}
}

// Record notes one click against a stat, expiring after the click window.
func (t *ClickTracker) Record(stat Stat) {
	t.expiries[stat] = append(t.expiries[stat], TimeNow().Add(t.window))
}

// Clicks returns how many recorded clicks on the stat are still live.
func (t *ClickTracker) Clicks(stat Stat) int {
	now := TimeNow()
	live := t.expiries[stat][:0]
	for _, exp := range t.expiries[stat] {
		if exp.After(now) {
			live = append(live, exp)
		}
	}
	t.expiries[stat] = live
	return len(live)
}

// Boost computes the diminished boost for a stat. The reward shrinks both as
// the stat approaches its ceiling and as clicks cluster in time; the factors
// multiply, so the result is non-increasing in both dimensions. Pure apart
// from pruning expired clicks; Record is called separately by the action
// that applies the boost.
func (t *ClickTracker) Boost(stat Stat, current, base float64) float64 {
	remainingRatio := (MaxStat - clamp(current)) / MaxStat
	clickPenalty := 1 / (1 + float64(t.Clicks(stat))*t.step)
	raw := base * remainingRatio * clickPenalty
	if raw < 0 {
		return 0
	}
	return math.Round(raw)
}
