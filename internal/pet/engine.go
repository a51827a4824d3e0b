package pet

import "log/slog"

// Engine owns the pet profile, ledger, and click tracker for one game
// session. All mutation flows through its action and tick methods; the
// presentation layer only reads. Construct one per session and pass it by
// handle instead of reaching for globals.
type Engine struct {
	policy  Policy
	profile *Profile
	ledger  *Ledger
	clicks  *ClickTracker
	onSave  func()
}

// NewEngine wraps a profile in a fresh engine. The ledger starts empty;
// Restore it from persistence before play if a snapshot exists.
func NewEngine(policy Policy, profile *Profile) *Engine {
	profile.Normalize(policy)
	return &Engine{
		policy:  policy,
		profile: profile,
		ledger:  NewLedger(policy.MaxLedgerEntries),
		clicks:  NewClickTracker(policy),
	}
}

// SetSaveHook registers the persistence callback invoked after every
// successful mutation. Rejected actions never trigger it.
func (e *Engine) SetSaveHook(fn func()) { e.onSave = fn }

// Profile returns the owned profile.
func (e *Engine) Profile() *Profile { return e.profile }

// Ledger returns the owned expense ledger.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Policy returns the active rule set.
func (e *Engine) Policy() Policy { return e.policy }

// Clicks exposes the tracker for boost previews in the UI.
func (e *Engine) Clicks() *ClickTracker { return e.clicks }

func (e *Engine) save() {
	if e.onSave != nil {
		e.onSave()
	}
}

// addLog appends a ledger entry and feeds the profile's running expense
// total. Only positive costs count as expenses; income entries carry a
// negative cost.
func (e *Engine) addLog(item string, cost int) {
	e.ledger.Append(item, cost)
	if cost > 0 {
		e.profile.TotalExpenses += cost
	}
	slog.Debug("ledger entry", "item", item, "cost", cost, "total_expenses", e.profile.TotalExpenses)
}
