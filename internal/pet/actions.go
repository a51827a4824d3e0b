package pet

import (
	"log/slog"
	"strings"
)

// Result reports an action's outcome to the presentation layer. Rejections
// are expected, frequent outcomes, not errors: state is untouched and the
// message explains why.
type Result struct {
	OK      bool
	Message string
}

func accept(pool []string) Result {
	return Result{OK: true, Message: pick(pool)}
}

func reject(pool []string) Result {
	return Result{OK: false, Message: pick(pool)}
}

func pick(pool []string) string {
	return pool[int(RandFloat64()*float64(len(pool)))%len(pool)]
}

var (
	feedMsgs        = []string{"🍽️ Nom nom nom!", "🍽️ So tasty!", "🍽️ Yummy!", "🍽️ Mmm, good!"}
	playMsgs        = []string{"🎮 This is fun!", "🎮 Wheee!", "🎮 Love playing!", "🎮 Best day ever!"}
	sleepMsgs       = []string{"😴 Zzz...", "😴 Feeling refreshed!", "😴 Much better now", "😴 Ready to go!"}
	cleanMsgs       = []string{"✨ So fresh!", "✨ Feeling clean!", "✨ Much better", "✨ Ahh, nice!"}
	healthCheckMsgs = []string{"💊 All good!", "💊 Feeling great!", "💊 Healthy as can be!", "💊 Doing well!"}
	vetMsgs         = []string{"🏥 Doctor says I'm great!", "🏥 All fixed up!", "🏥 Feeling amazing!", "🏥 Back to 100%!"}
	earnMsgs        = []string{"💰 Got paid!", "💰 Made some cash!", "💰 Nice work!", "💰 Money earned!"}
	upgradeMsgs     = []string{"🛒 Upgrade installed!", "🛒 Money well spent!", "🛒 Fancy!"}

	brokeMsgs = []string{"❌ Oops, broke!", "❌ Need more cash", "❌ Can't afford that", "❌ Too expensive"}
	tiredMsgs = []string{"😴 Too sleepy...", "😴 Need a nap first", "😴 Maybe later?", "😴 I'm exhausted"}
	cappedMsgs = []string{"🛒 Maxed out already!", "🛒 No more upgrades for that"}
)

// Feed buys food and restores hunger by the fixed step boost. The click
// still counts toward spam suppression even though the boost itself is
// range-based.
func (e *Engine) Feed() Result {
	if !e.profile.Stats.SpendMoney(e.policy.FeedCost) {
		return reject(brokeMsgs)
	}
	boost := RangeBoost(e.profile.Stats.Get(StatHunger))
	e.profile.Stats.Adjust(StatHunger, boost)
	e.clicks.Record(StatHunger)
	e.addLog("Pet Food", e.policy.FeedCost)
	e.save()
	return accept(feedMsgs)
}

// Play costs toys and energy, boosting happiness by the fixed step boost.
func (e *Engine) Play() Result {
	if e.profile.Stats.Get(StatEnergy) < float64(e.policy.PlayEnergyCost) {
		return reject(tiredMsgs)
	}
	if !e.profile.Stats.SpendMoney(e.policy.PlayCost) {
		return reject(brokeMsgs)
	}
	boost := RangeBoost(e.profile.Stats.Get(StatHappy))
	e.profile.Stats.Adjust(StatHappy, boost)
	e.clicks.Record(StatHappy)
	e.profile.Stats.Adjust(StatEnergy, -float64(e.policy.PlayEnergyCost))
	e.addLog("Toys", e.policy.PlayCost)
	e.save()
	return accept(playMsgs)
}

// Sleep restores energy outright. Free, always allowed.
func (e *Engine) Sleep() Result {
	e.profile.Stats.Set(StatEnergy, MaxStat)
	e.addLog("Rest", 0)
	e.save()
	return accept(sleepMsgs)
}

// Clean buys supplies for a diminished health and happiness boost.
func (e *Engine) Clean() Result {
	if !e.profile.Stats.SpendMoney(e.policy.CleanCost) {
		return reject(brokeMsgs)
	}
	healthBoost := e.clicks.Boost(StatHealth, e.profile.Stats.Get(StatHealth), e.policy.CleanHealthBoost)
	happyBoost := e.clicks.Boost(StatHappy, e.profile.Stats.Get(StatHappy), e.policy.CleanHappyBoost)
	e.profile.Stats.Adjust(StatHealth, healthBoost)
	e.profile.Stats.Adjust(StatHappy, happyBoost)
	e.clicks.Record(StatHealth)
	e.clicks.Record(StatHappy)
	e.addLog("Cleaning Supplies", e.policy.CleanCost)
	e.save()
	return accept(cleanMsgs)
}

// HealthCheck buys a checkup for a diminished health boost.
func (e *Engine) HealthCheck() Result {
	if !e.profile.Stats.SpendMoney(e.policy.HealthCheckCost) {
		return reject(brokeMsgs)
	}
	boost := e.clicks.Boost(StatHealth, e.profile.Stats.Get(StatHealth), e.policy.HealthCheckBoost)
	e.profile.Stats.Adjust(StatHealth, boost)
	e.clicks.Record(StatHealth)
	e.addLog("Health Check", e.policy.HealthCheckCost)
	e.save()
	return accept(healthCheckMsgs)
}

// Vet buys the big health restore, still subject to diminishing returns.
func (e *Engine) Vet() Result {
	if !e.profile.Stats.SpendMoney(e.policy.VetCost) {
		return reject(brokeMsgs)
	}
	boost := e.clicks.Boost(StatHealth, e.profile.Stats.Get(StatHealth), e.policy.VetBoost)
	e.profile.Stats.Adjust(StatHealth, boost)
	e.clicks.Record(StatHealth)
	e.addLog("Vet Visit", e.policy.VetCost)
	e.save()
	return accept(vetMsgs)
}

// EarnMoney trades energy for income. The ledger entry carries a negative
// cost so it never inflates the expense total.
func (e *Engine) EarnMoney() Result {
	if e.profile.Stats.Get(StatEnergy) < float64(e.policy.EarnEnergyCost) {
		return reject(tiredMsgs)
	}
	e.profile.Stats.Earn(e.policy.EarnIncome)
	e.profile.Stats.Adjust(StatEnergy, -float64(e.policy.EarnEnergyCost))
	e.addLog("Chores", -e.policy.EarnIncome)
	e.save()
	return accept(earnMsgs)
}

// Purchase buys a shop upgrade that slows one stat's decay. The purchase
// cap is checked before money, so a capped stat rejects no matter how rich
// the player is. The multiplier never drops below the policy floor.
func (e *Engine) Purchase(stat Stat) Result {
	if e.profile.UpgradeCount(stat) >= e.policy.UpgradeLimit {
		return reject(cappedMsgs)
	}
	if !e.profile.Stats.SpendMoney(e.policy.UpgradeCost) {
		return reject(brokeMsgs)
	}
	e.profile.ShopUpgradeCounts[stat]++
	m := e.profile.Multiplier(stat) * e.policy.UpgradeFactor
	if m < e.policy.MinShopMultiplier {
		m = e.policy.MinShopMultiplier
	}
	e.profile.ShopMultipliers[stat] = m
	e.addLog(strings.ToUpper(string(stat))+" Upgrade", e.policy.UpgradeCost)
	e.save()
	slog.Info("shop upgrade purchased", "stat", stat,
		"count", e.profile.ShopUpgradeCounts[stat], "multiplier", m)
	return accept(upgradeMsgs)
}
