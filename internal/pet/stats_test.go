package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustClampsEveryWrite(t *testing.T) {
	s := Stats{Hunger: 50, Happy: 50, Energy: 50, Health: 50, Money: 100}

	deltas := []float64{40, 40, -200, 7.5, 300, -0.1, -99.9, 12}
	for _, stat := range PercentStats {
		for _, d := range deltas {
			got := s.Adjust(stat, d)
			assert.GreaterOrEqual(t, got, MinStat, "stat %s after delta %v", stat, d)
			assert.LessOrEqual(t, got, MaxStat, "stat %s after delta %v", stat, d)
			assert.Equal(t, got, s.Get(stat))
		}
	}
}

func TestAdjustReturnsNewValue(t *testing.T) {
	s := Stats{Hunger: 95}
	require.Equal(t, 100.0, s.Adjust(StatHunger, 30))
	require.Equal(t, 70.0, s.Adjust(StatHunger, -30))
}

func TestSetClamps(t *testing.T) {
	s := Stats{Energy: 40}
	require.Equal(t, 100.0, s.Set(StatEnergy, 250))
	require.Equal(t, 0.0, s.Set(StatEnergy, -5))
}

func TestSpendMoney(t *testing.T) {
	tests := []struct {
		name      string
		money     int
		amount    int
		wantOK    bool
		wantMoney int
	}{
		{"exact balance", 25, 25, true, 0},
		{"plenty", 500, 25, true, 475},
		{"insufficient", 10, 25, false, 10},
		{"zero cost", 0, 0, true, 0},
		{"broke", 0, 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stats{Money: tt.money}
			require.Equal(t, tt.wantOK, s.SpendMoney(tt.amount))
			require.Equal(t, tt.wantMoney, s.Money)
		})
	}
}

func TestEarn(t *testing.T) {
	s := Stats{Money: 10}
	s.Earn(60)
	require.Equal(t, 70, s.Money)
}
