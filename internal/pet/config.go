package pet

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy holds every tunable rule of the simulation. The zero value is not
// usable; start from DefaultPolicy and override via YAML.
type Policy struct {
	// Decay rules, applied once per tick.
	TickInterval         time.Duration `yaml:"tick_interval"`
	HungerDecay          float64       `yaml:"hunger_decay"`
	HungerDecayEnergetic float64       `yaml:"hunger_decay_energetic"`
	HappyDecay           float64       `yaml:"happy_decay"`
	EnergyDecay          float64       `yaml:"energy_decay"`
	HealthDecay          float64       `yaml:"health_decay"`
	LowStatThreshold     float64       `yaml:"low_stat_threshold"`

	// Action costs and preconditions.
	FeedCost        int `yaml:"feed_cost"`
	PlayCost        int `yaml:"play_cost"`
	PlayEnergyCost  int `yaml:"play_energy_cost"`
	CleanCost       int `yaml:"clean_cost"`
	HealthCheckCost int `yaml:"health_check_cost"`
	VetCost         int `yaml:"vet_cost"`
	EarnIncome      int `yaml:"earn_income"`
	EarnEnergyCost  int `yaml:"earn_energy_cost"`

	// Diminishing-returns boosts.
	CleanHealthBoost float64 `yaml:"clean_health_boost"`
	CleanHappyBoost  float64 `yaml:"clean_happy_boost"`
	HealthCheckBoost float64 `yaml:"health_check_boost"`
	VetBoost         float64 `yaml:"vet_boost"`

	// Click-spam suppression.
	ClickWindow      time.Duration `yaml:"click_window"`
	ClickPenaltyStep float64       `yaml:"click_penalty_step"`

	// Shop upgrades: each purchase scales a stat's decay multiplier.
	UpgradeCost        int     `yaml:"upgrade_cost"`
	UpgradeLimit       int     `yaml:"upgrade_limit"`
	UpgradeFactor      float64 `yaml:"upgrade_factor"`
	MinShopMultiplier  float64 `yaml:"min_shop_multiplier"`

	// Adoption defaults.
	StartingStat  float64 `yaml:"starting_stat"`
	StartingMoney int     `yaml:"starting_money"`
	SavingsGoal   int     `yaml:"savings_goal"`

	// Ledger bound.
	MaxLedgerEntries int `yaml:"max_ledger_entries"`

	// Persistence and UI pacing.
	SaveDebounce   time.Duration `yaml:"save_debounce"`
	ActionCooldown time.Duration `yaml:"action_cooldown"`

	// Idle speech gating.
	IdleSpeechChance   float64       `yaml:"idle_speech_chance"`
	IdleSpeechInterval time.Duration `yaml:"idle_speech_interval"`
}

// DefaultPolicy returns the canonical rule set.
func DefaultPolicy() Policy {
	return Policy{
		TickInterval:         2 * time.Second,
		HungerDecay:          3,
		HungerDecayEnergetic: 5,
		HappyDecay:           5,
		EnergyDecay:          1,
		HealthDecay:          2,
		LowStatThreshold:     30,

		FeedCost:        25,
		PlayCost:        10,
		PlayEnergyCost:  20,
		CleanCost:       15,
		HealthCheckCost: 30,
		VetCost:         100,
		EarnIncome:      60,
		EarnEnergyCost:  25,

		CleanHealthBoost: 5,
		CleanHappyBoost:  3,
		HealthCheckBoost: 10,
		VetBoost:         30,

		ClickWindow:      6 * time.Second,
		ClickPenaltyStep: 0.6,

		UpgradeCost:       300,
		UpgradeLimit:      3,
		UpgradeFactor:     0.9,
		MinShopMultiplier: 0.1,

		StartingStat:  100,
		StartingMoney: 500,
		SavingsGoal:   500,

		MaxLedgerEntries: 200,

		SaveDebounce:   150 * time.Millisecond,
		ActionCooldown: 500 * time.Millisecond,

		IdleSpeechChance:   0.1,
		IdleSpeechInterval: 10 * time.Second,
	}
}

// LoadPolicy reads overrides from a YAML file on top of the defaults.
// A missing file is not an error; the defaults apply.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read policy: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks that the policy cannot stall or corrupt the simulation.
func (p Policy) Validate() error {
	if p.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive")
	}
	if p.UpgradeFactor <= 0 || p.UpgradeFactor > 1 {
		return fmt.Errorf("upgrade_factor must be in (0, 1]")
	}
	if p.MinShopMultiplier <= 0 {
		return fmt.Errorf("min_shop_multiplier must be positive")
	}
	if p.UpgradeLimit < 0 {
		return fmt.Errorf("upgrade_limit must not be negative")
	}
	if p.MaxLedgerEntries <= 0 {
		return fmt.Errorf("max_ledger_entries must be positive")
	}
	return nil
}

// RangeBoost is the fixed step boost used by feed and play: generous when a
// stat is low, stingy near the ceiling.
func RangeBoost(current float64) float64 {
	switch {
	case current < 50:
		return 5
	case current <= 60:
		return 4
	case current <= 80:
		return 3
	default:
		return 2
	}
}
