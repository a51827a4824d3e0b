package pet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"pocketpet/internal/store"
)

// Session binds an engine to its backing store for one game run. The engine
// stays nil until a pet exists; the adoption flow calls Adopt to create one.
// Every engine mutation schedules a debounced write of both persisted keys;
// Flush on shutdown makes the last window durable.
type Session struct {
	policy Policy
	st     store.Store
	deb    *store.Debouncer

	Engine *Engine
}

// NewSession loads any persisted pet from the store. Corrupt or missing
// state falls back to the adoption flow rather than failing.
func NewSession(ctx context.Context, policy Policy, st store.Store) (*Session, error) {
	s := &Session{
		policy: policy,
		st:     st,
		deb:    store.NewDebouncer(st, policy.SaveDebounce),
	}

	var profile Profile
	err := store.GetJSON(ctx, st, store.KeyPetData, &profile)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load pet: %w", err)
	}

	s.attach(&profile)

	var entries []LedgerEntry
	if err := store.GetJSON(ctx, st, store.KeyExpenseLog, &entries); err == nil {
		s.Engine.Ledger().Restore(entries)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load expense log: %w", err)
	}

	slog.Info("loaded pet", "name", profile.Name, "species", profile.Species)
	return s, nil
}

// HasPet reports whether a profile exists yet.
func (s *Session) HasPet() bool { return s.Engine != nil }

// Policy returns the active rule set.
func (s *Session) Policy() Policy { return s.policy }

// Adopt finalizes a new pet: validates the name, creates the profile with
// default stats, consumes any pending species selection, and persists an
// empty ledger.
func (s *Session) Adopt(ctx context.Context, species, name, personality string) error {
	profile, err := NewProfile(s.policy, species, name, personality)
	if err != nil {
		return err
	}
	s.attach(profile)

	if err := s.st.Delete(ctx, store.KeyTempPetType); err != nil {
		slog.Warn("clearing species selection failed", "error", err)
	}
	s.ScheduleSave()
	if err := s.Flush(); err != nil {
		return fmt.Errorf("persist new pet: %w", err)
	}
	slog.Info("adopted pet", "name", profile.Name, "species", species, "personality", profile.Personality)
	return nil
}

func (s *Session) attach(profile *Profile) {
	s.Engine = NewEngine(s.policy, profile)
	s.Engine.SetSaveHook(s.ScheduleSave)
}

// ScheduleSave captures the current state and queues a coalesced write.
func (s *Session) ScheduleSave() {
	if s.Engine == nil {
		return
	}
	if data, err := json.Marshal(s.Engine.Profile()); err == nil {
		s.deb.Put(store.KeyPetData, data)
	} else {
		slog.Error("marshal pet", "error", err)
	}
	if data, err := json.Marshal(s.Engine.Ledger().Entries()); err == nil {
		s.deb.Put(store.KeyExpenseLog, data)
	} else {
		slog.Error("marshal expense log", "error", err)
	}
}

// Flush forces any pending write out immediately.
func (s *Session) Flush() error {
	return s.deb.Flush()
}

// Theme returns the persisted UI theme, defaulting to "light".
func (s *Session) Theme(ctx context.Context) string {
	data, err := s.st.Get(ctx, store.KeyTheme)
	if err != nil || len(data) == 0 {
		return "light"
	}
	return string(data)
}

// SetTheme persists the UI theme immediately; preference writes are rare
// enough to skip the debouncer.
func (s *Session) SetTheme(ctx context.Context, theme string) {
	if err := s.st.Set(ctx, store.KeyTheme, []byte(theme)); err != nil {
		slog.Warn("saving theme failed", "error", err)
	}
}

// TempPetType returns any species picked on the selection screen but not
// yet finalized.
func (s *Session) TempPetType(ctx context.Context) string {
	data, err := s.st.Get(ctx, store.KeyTempPetType)
	if err != nil {
		return ""
	}
	return string(data)
}

// SetTempPetType stages a species selection for finalization.
func (s *Session) SetTempPetType(ctx context.Context, species string) {
	if err := s.st.Set(ctx, store.KeyTempPetType, []byte(species)); err != nil {
		slog.Warn("saving species selection failed", "error", err)
	}
}

// Reset destroys the pet and its ledger. The theme preference survives.
func (s *Session) Reset(ctx context.Context) error {
	for _, key := range []string{store.KeyPetData, store.KeyExpenseLog, store.KeyTempPetType} {
		if err := s.st.Delete(ctx, key); err != nil {
			return err
		}
	}
	s.Engine = nil
	slog.Info("pet reset")
	return nil
}
