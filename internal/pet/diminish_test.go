package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins TimeNow for a test and restores it afterwards.
func fakeClock(t *testing.T, start time.Time) func(d time.Duration) {
	t.Helper()
	now := start
	orig := TimeNow
	TimeNow = func() time.Time { return now }
	t.Cleanup(func() { TimeNow = orig })
	return func(d time.Duration) { now = now.Add(d) }
}

func TestBoostShrinksWithClicks(t *testing.T) {
	fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())

	prev := tr.Boost(StatHappy, 20, 5)
	for i := 0; i < 5; i++ {
		tr.Record(StatHappy)
		got := tr.Boost(StatHappy, 20, 5)
		assert.LessOrEqual(t, got, prev, "boost after %d clicks", i+1)
		prev = got
	}
}

func TestBoostShrinksAsStatFills(t *testing.T) {
	fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())

	prev := tr.Boost(StatHealth, 0, 30)
	for _, current := range []float64{10, 25, 50, 75, 90, 100} {
		got := tr.Boost(StatHealth, current, 30)
		assert.LessOrEqual(t, got, prev, "boost at current=%v", current)
		prev = got
	}
	require.Equal(t, 0.0, tr.Boost(StatHealth, 100, 30))
}

func TestBoostNeverNegative(t *testing.T) {
	fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())
	for i := 0; i < 20; i++ {
		tr.Record(StatHealth)
	}
	require.GreaterOrEqual(t, tr.Boost(StatHealth, 150, 30), 0.0)
}

func TestBoostFormula(t *testing.T) {
	fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())

	// Empty stat, no clicks: full base boost.
	require.Equal(t, 5.0, tr.Boost(StatHappy, 0, 5))

	// Half-full stat, one click: 5 * 0.5 * 1/1.6 = 1.5625, rounds to 2.
	tr.Record(StatHappy)
	require.Equal(t, 2.0, tr.Boost(StatHappy, 50, 5))
}

func TestClicksExpireIndependently(t *testing.T) {
	advance := fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())

	tr.Record(StatHunger) // expires at +6s
	advance(4 * time.Second)
	tr.Record(StatHunger) // expires at +10s
	require.Equal(t, 2, tr.Clicks(StatHunger))

	advance(3 * time.Second) // t+7s: first click gone
	require.Equal(t, 1, tr.Clicks(StatHunger))

	advance(4 * time.Second) // t+11s: both gone
	require.Equal(t, 0, tr.Clicks(StatHunger))
}

func TestClicksAreSeparatePerStat(t *testing.T) {
	fakeClock(t, time.Unix(1000, 0))
	tr := NewClickTracker(DefaultPolicy())

	tr.Record(StatHunger)
	tr.Record(StatHunger)
	require.Equal(t, 2, tr.Clicks(StatHunger))
	require.Equal(t, 0, tr.Clicks(StatHappy))
}
