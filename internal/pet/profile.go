package pet

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Personality tags. Only hunger decay varies between them today; the tag
// is a free string rather than an enum so the policy can grow more
// temperaments without a schema change.
const (
	PersonalityDefault   = "calm"
	PersonalityEnergetic = "energetic"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s]{2,12}$`)

// ValidateName accepts letters and spaces, length 2-12 after trimming.
func ValidateName(name string) error {
	if !namePattern.MatchString(strings.TrimSpace(name)) {
		return fmt.Errorf("name needs to be 2-12 letters only")
	}
	return nil
}

// Profile is the pet's full persisted record, created once at adoption.
type Profile struct {
	Species     string `json:"type"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Stats       Stats  `json:"stats"`

	// Shop upgrades slow decay: each purchase multiplies the stat's decay
	// multiplier by the upgrade factor, capped at the purchase limit.
	ShopMultipliers   map[Stat]float64 `json:"shopMultipliers"`
	ShopUpgradeCounts map[Stat]int     `json:"shopUpgradeCounts"`

	TotalExpenses int `json:"totalExpenses"`
	SavingsGoal   int `json:"savingsGoal"`

	LastInteraction  time.Time `json:"lastInteraction"`
	InteractionCount int       `json:"interactionCount"`
	LastSpeechTime   time.Time `json:"lastSpeechTime"`

	// Opaque image artifact (AI-generated or a static asset). The engine
	// stores and forwards it, never inspects it.
	Image []byte `json:"image,omitempty"`
}

// NewProfile creates a profile at adoption time. The name must already be
// validated; species and personality come from the selection screen.
func NewProfile(policy Policy, species, name, personality string) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if personality == "" {
		personality = PersonalityDefault
	}
	p := &Profile{
		Species:     species,
		Name:        strings.TrimSpace(name),
		Personality: personality,
		Stats: Stats{
			Hunger: policy.StartingStat,
			Happy:  policy.StartingStat,
			Energy: policy.StartingStat,
			Health: policy.StartingStat,
			Money:  policy.StartingMoney,
		},
		ShopMultipliers:   make(map[Stat]float64),
		ShopUpgradeCounts: make(map[Stat]int),
		SavingsGoal:       policy.SavingsGoal,
	}
	for _, s := range PercentStats {
		p.ShopMultipliers[s] = 1.0
		p.ShopUpgradeCounts[s] = 0
	}
	return p, nil
}

// Multiplier returns the shop decay multiplier for a stat, defaulting to 1.0
// for profiles saved before the shop existed.
func (p *Profile) Multiplier(stat Stat) float64 {
	if p.ShopMultipliers == nil {
		return 1.0
	}
	if m, ok := p.ShopMultipliers[stat]; ok {
		return m
	}
	return 1.0
}

// UpgradeCount returns how many shop upgrades have been bought for a stat.
func (p *Profile) UpgradeCount(stat Stat) int {
	if p.ShopUpgradeCounts == nil {
		return 0
	}
	return p.ShopUpgradeCounts[stat]
}

// SavingsCurrent derives the displayed savings figure.
func (p *Profile) SavingsCurrent() int {
	saved := p.Stats.Money - p.TotalExpenses
	if saved < 0 {
		return 0
	}
	return saved
}

// Normalize repairs a profile loaded from an older or partial save so the
// rest of the engine never sees nil maps or zeroed defaults.
func (p *Profile) Normalize(policy Policy) {
	if p.ShopMultipliers == nil {
		p.ShopMultipliers = make(map[Stat]float64)
	}
	if p.ShopUpgradeCounts == nil {
		p.ShopUpgradeCounts = make(map[Stat]int)
	}
	for _, s := range PercentStats {
		if _, ok := p.ShopMultipliers[s]; !ok {
			p.ShopMultipliers[s] = 1.0
		}
	}
	if p.SavingsGoal == 0 {
		p.SavingsGoal = policy.SavingsGoal
	}
	if p.Personality == "" {
		p.Personality = PersonalityDefault
	}
	p.Stats.Hunger = clamp(p.Stats.Hunger)
	p.Stats.Happy = clamp(p.Stats.Happy)
	p.Stats.Energy = clamp(p.Stats.Energy)
	p.Stats.Health = clamp(p.Stats.Health)
	if p.Stats.Money < 0 {
		p.Stats.Money = 0
	}
}
