package pet

import (
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now() }
	RandFloat64 = rand.Float64
)

// Stat bounds for the percentage-type stats.
const (
	MaxStat = 100.0
	MinStat = 0.0
)

// Stat identifies one of the pet's percentage-type stats.
type Stat string

const (
	StatHunger Stat = "hunger"
	StatHappy  Stat = "happy"
	StatEnergy Stat = "energy"
	StatHealth Stat = "health"
)

// PercentStats lists the clamped stats in display order.
var PercentStats = []Stat{StatHunger, StatHappy, StatEnergy, StatHealth}

// Stats is the pet's numeric state. The four percentage stats stay in
// [0,100]; money only moves through SpendMoney and Earn, so it never goes
// negative.
type Stats struct {
	Hunger float64 `json:"hunger"`
	Happy  float64 `json:"happy"`
	Energy float64 `json:"energy"`
	Health float64 `json:"health"`
	Money  int     `json:"money"`
}

// Get returns the current value of a percentage stat.
func (s *Stats) Get(stat Stat) float64 {
	switch stat {
	case StatHunger:
		return s.Hunger
	case StatHappy:
		return s.Happy
	case StatEnergy:
		return s.Energy
	case StatHealth:
		return s.Health
	}
	return 0
}

// Adjust applies delta to a percentage stat, clamps to [0,100], and returns
// the new value.
func (s *Stats) Adjust(stat Stat, delta float64) float64 {
	v := clamp(s.Get(stat) + delta)
	switch stat {
	case StatHunger:
		s.Hunger = v
	case StatHappy:
		s.Happy = v
	case StatEnergy:
		s.Energy = v
	case StatHealth:
		s.Health = v
	}
	return v
}

// Set forces a percentage stat to a value (clamped). Used by sleep, which
// restores energy outright rather than boosting it.
func (s *Stats) Set(stat Stat, value float64) float64 {
	return s.Adjust(stat, clamp(value)-s.Get(stat))
}

// SpendMoney deducts amount if affordable. Returns false and changes nothing
// when money < amount.
func (s *Stats) SpendMoney(amount int) bool {
	if amount > s.Money {
		return false
	}
	s.Money -= amount
	return true
}

// Earn credits income.
func (s *Stats) Earn(amount int) {
	s.Money += amount
}

func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
