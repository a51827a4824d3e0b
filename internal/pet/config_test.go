package pet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())
}

func TestLoadPolicyMissingFileUsesDefaults(t *testing.T) {
	p, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestLoadPolicyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := []byte("tick_interval: 5s\nfeed_cost: 40\nhunger_decay: 2\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, p.TickInterval)
	assert.Equal(t, 40, p.FeedCost)
	assert.Equal(t, 2.0, p.HungerDecay)
	// Untouched fields keep their defaults.
	assert.Equal(t, 100, p.VetCost)
	assert.Equal(t, 200, p.MaxLedgerEntries)
}

func TestLoadPolicyRejectsBrokenRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero tick", "tick_interval: 0s\n"},
		{"upgrade factor above one", "upgrade_factor: 1.5\n"},
		{"zero multiplier floor", "min_shop_multiplier: 0\n"},
		{"unbounded ledger", "max_ledger_entries: 0\n"},
		{"garbage yaml", "feed_cost: [not a number\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "policy.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadPolicy(path)
			assert.Error(t, err)
		})
	}
}

func TestRangeBoostSteps(t *testing.T) {
	tests := []struct {
		current float64
		want    float64
	}{
		{0, 5}, {49, 5},
		{50, 4}, {60, 4},
		{61, 3}, {80, 3},
		{81, 2}, {100, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RangeBoost(tt.current), "current=%v", tt.current)
	}
}
