package pet

// Tick applies one decay step: hunger, happiness, and energy drop by their
// policy rates scaled by any shop multipliers, and health takes an extra
// penalty while hunger or happiness sits below the low-stat threshold.
// The caller owns the schedule; there is no catch-up for ticks that never
// fired.
func (e *Engine) Tick() {
	hungerDrop := e.policy.HungerDecay
	if e.profile.Personality == PersonalityEnergetic {
		hungerDrop = e.policy.HungerDecayEnergetic
	}
	e.profile.Stats.Adjust(StatHunger, -hungerDrop*e.profile.Multiplier(StatHunger))
	e.profile.Stats.Adjust(StatHappy, -e.policy.HappyDecay*e.profile.Multiplier(StatHappy))
	e.profile.Stats.Adjust(StatEnergy, -e.policy.EnergyDecay*e.profile.Multiplier(StatEnergy))

	if e.profile.Stats.Get(StatHunger) < e.policy.LowStatThreshold ||
		e.profile.Stats.Get(StatHappy) < e.policy.LowStatThreshold {
		e.profile.Stats.Adjust(StatHealth, -e.policy.HealthDecay*e.profile.Multiplier(StatHealth))
	}

	e.save()
}
