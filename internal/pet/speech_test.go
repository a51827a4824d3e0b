package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentEmotionBuckets(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		face  string
	}{
		{"sick overrides everything", Stats{Hunger: 100, Happy: 100, Energy: 100, Health: 20}, "🤒"},
		{"miserable", Stats{Hunger: 20, Happy: 20, Energy: 50, Health: 40}, "😢"},
		{"down", Stats{Hunger: 40, Happy: 40, Energy: 50, Health: 50}, "😔"},
		{"okay", Stats{Hunger: 60, Happy: 60, Energy: 50, Health: 60}, "😐"},
		{"zooming", Stats{Hunger: 80, Happy: 90, Energy: 90, Health: 80}, "⚡"},
		{"great", Stats{Hunger: 90, Happy: 80, Energy: 50, Health: 90}, "😊"},
		{"content", Stats{Hunger: 75, Happy: 70, Energy: 50, Health: 75}, "🙂"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.Profile().Stats = tt.stats
			assert.Equal(t, tt.face, e.CurrentEmotion().Face)
			assert.NotEmpty(t, e.CurrentEmotion().Text)
		})
	}
}

func TestIdleSpeechGating(t *testing.T) {
	advance := fakeClock(t, time.Unix(1000, 0))
	profile, err := NewProfile(DefaultPolicy(), "cat", "Miso", "")
	require.NoError(t, err)
	e := NewEngine(DefaultPolicy(), profile)

	// Pin the roll below the 10% chance so only the other gates decide.
	orig := RandFloat64
	RandFloat64 = func() float64 { return 0.05 }
	t.Cleanup(func() { RandFloat64 = orig })

	advance(time.Hour) // well past the initial interval
	line := e.IdleSpeech()
	require.NotEmpty(t, line, "happy pet past the interval should speak")

	// Immediately after speaking, the interval gate holds.
	assert.Empty(t, e.IdleSpeech())

	advance(11 * time.Second)
	assert.NotEmpty(t, e.IdleSpeech())

	// An unhappy pet stays quiet even when the roll and interval allow.
	advance(11 * time.Second)
	e.Profile().Stats.Happy = 0
	e.Profile().Stats.Hunger = 0
	assert.Empty(t, e.IdleSpeech())
}

func TestIdleSpeechChanceGate(t *testing.T) {
	advance := fakeClock(t, time.Unix(1000, 0))
	profile, err := NewProfile(DefaultPolicy(), "cat", "Miso", "")
	require.NoError(t, err)
	e := NewEngine(DefaultPolicy(), profile)

	orig := RandFloat64
	RandFloat64 = func() float64 { return 0.95 }
	t.Cleanup(func() { RandFloat64 = orig })

	advance(time.Hour)
	assert.Empty(t, e.IdleSpeech(), "roll above the chance stays silent")
}

func TestInteract(t *testing.T) {
	e := newTestEngine(t)
	e.Profile().Stats.Happy = 50

	res := e.Interact()
	require.True(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, 51.0, e.Profile().Stats.Happy)
	assert.Equal(t, 1, e.Profile().InteractionCount)
	assert.Equal(t, TimeNow(), e.Profile().LastInteraction)

	// Clamped at the ceiling, still counted.
	e.Profile().Stats.Happy = 100
	e.Interact()
	assert.Equal(t, 100.0, e.Profile().Stats.Happy)
	assert.Equal(t, 2, e.Profile().InteractionCount)
}
