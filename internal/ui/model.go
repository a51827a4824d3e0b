package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pocketpet/internal/pet"
)

type screen int

const (
	screenSpecies screen = iota
	screenPersonality
	screenName
	screenGame
	screenShop
	screenLedger
)

type tickMsg time.Time

// speciesOption pairs a species tag with its display face.
type speciesOption struct {
	Tag  string
	Face string
}

var speciesOptions = []speciesOption{
	{"cat", "🐱"},
	{"dog", "🐶"},
	{"rabbit", "🐰"},
	{"dragon", "🐉"},
}

var personalityOptions = []string{pet.PersonalityDefault, pet.PersonalityEnergetic}

var gameMenu = []string{
	"Feed ($25)",
	"Play ($10)",
	"Sleep",
	"Clean ($15)",
	"Health Check ($30)",
	"Vet ($100)",
	"Earn Money",
	"Shop",
	"Ledger",
	"Quit",
}

// Model is the Bubble Tea state for the whole game: the adoption flow, the
// game screen, and the shop/ledger overlays.
type Model struct {
	Session *pet.Session
	Theme   Theme

	Screen      screen
	Choice      int
	ShopChoice  int
	Quitting    bool
	Species     string
	Personality string
	NameInput   textinput.Model
	NameError   string

	Emotion        pet.Emotion
	Message        string
	MessageOK      bool
	MessageExpires time.Time
	Speech         string
	SpeechExpires  time.Time
	CooldownUntil  time.Time
}

// NewModel builds the initial model: straight to the game screen when a pet
// already exists, otherwise into the adoption flow, resuming any staged
// species selection.
func NewModel(s *pet.Session) Model {
	ctx := context.Background()

	ti := textinput.New()
	ti.Placeholder = "2-12 letters"
	ti.CharLimit = 12
	ti.Width = 16

	m := Model{
		Session:   s,
		Theme:     ThemeByName(s.Theme(ctx)),
		NameInput: ti,
	}
	if s.HasPet() {
		m.Screen = screenGame
		m.Emotion = s.Engine.CurrentEmotion()
	} else {
		m.Screen = screenSpecies
		if staged := s.TempPetType(ctx); staged != "" {
			for i, opt := range speciesOptions {
				if opt.Tag == staged {
					m.Choice = i
					break
				}
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.Session.Policy().TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.Screen == screenGame || m.Screen == screenShop || m.Screen == screenLedger {
			if m.Session.HasPet() {
				m.Session.Engine.Tick()
				m.Emotion = m.Session.Engine.CurrentEmotion()
				if line := m.Session.Engine.IdleSpeech(); line != "" {
					m.Speech = line
					m.SpeechExpires = pet.TimeNow().Add(3 * time.Second)
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The name screen owns most keys; only control keys escape it.
	if m.Screen == screenName {
		return m.handleNameKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "t":
		m.Theme = m.Theme.Next()
		m.Session.SetTheme(context.Background(), m.Theme.Name)
		return m, nil
	}

	switch m.Screen {
	case screenSpecies:
		return m.handleSpeciesKey(msg)
	case screenPersonality:
		return m.handlePersonalityKey(msg)
	case screenGame:
		return m.handleGameKey(msg)
	case screenShop:
		return m.handleShopKey(msg)
	case screenLedger:
		if msg.String() == "esc" || msg.String() == "enter" || msg.String() == "l" {
			m.Screen = screenGame
		}
		return m, nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if err := m.Session.Flush(); err != nil {
		// Nothing sensible to do on the way out beyond noting it.
		m.Message = "⚠ saving failed: " + err.Error()
	}
	return m, tea.Quit
}

func (m Model) handleSpeciesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(speciesOptions)-1 {
			m.Choice++
		}
	case "enter", " ":
		m.Species = speciesOptions[m.Choice].Tag
		m.Session.SetTempPetType(context.Background(), m.Species)
		m.Screen = screenPersonality
		m.Choice = 0
	}
	return m, nil
}

func (m Model) handlePersonalityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(personalityOptions)-1 {
			m.Choice++
		}
	case "esc":
		m.Screen = screenSpecies
		m.Choice = 0
	case "enter", " ":
		m.Personality = personalityOptions[m.Choice]
		m.Screen = screenName
		m.NameError = ""
		m.NameInput.SetValue("")
		return m, m.NameInput.Focus()
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.Screen = screenPersonality
		m.Choice = 0
		return m, nil
	case "enter":
		name := m.NameInput.Value()
		if err := pet.ValidateName(name); err != nil {
			m.NameError = "Oops! " + err.Error()
			return m, nil
		}
		if err := m.Session.Adopt(context.Background(), m.Species, name, m.Personality); err != nil {
			m.NameError = err.Error()
			return m, nil
		}
		m.Screen = screenGame
		m.Choice = 0
		m.Emotion = m.Session.Engine.CurrentEmotion()
		return m, nil
	}

	var cmd tea.Cmd
	m.NameInput, cmd = m.NameInput.Update(msg)
	return m, cmd
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(gameMenu)-1 {
			m.Choice++
		}
	case "p":
		// Petting bypasses the menu but honors the cooldown.
		if m.onCooldown() {
			return m, nil
		}
		m.applyResult(m.Session.Engine.Interact())
	case "s":
		m.Screen = screenShop
		m.ShopChoice = 0
	case "l":
		m.Screen = screenLedger
	case "enter", " ":
		return m.runMenuChoice()
	}
	return m, nil
}

func (m Model) runMenuChoice() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case 7:
		m.Screen = screenShop
		m.ShopChoice = 0
		return m, nil
	case 8:
		m.Screen = screenLedger
		return m, nil
	case 9:
		return m.quit()
	}

	if m.onCooldown() {
		return m, nil
	}

	e := m.Session.Engine
	var res pet.Result
	switch m.Choice {
	case 0:
		res = e.Feed()
	case 1:
		res = e.Play()
	case 2:
		res = e.Sleep()
	case 3:
		res = e.Clean()
	case 4:
		res = e.HealthCheck()
	case 5:
		res = e.Vet()
	case 6:
		res = e.EarnMoney()
	}
	m.applyResult(res)
	return m, nil
}

func (m *Model) applyResult(res pet.Result) {
	m.Message = res.Message
	m.MessageOK = res.OK
	m.MessageExpires = pet.TimeNow().Add(3 * time.Second)
	m.CooldownUntil = pet.TimeNow().Add(m.Session.Engine.Policy().ActionCooldown)
	m.Emotion = m.Session.Engine.CurrentEmotion()
}

func (m Model) onCooldown() bool {
	return pet.TimeNow().Before(m.CooldownUntil)
}

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.ShopChoice > 0 {
			m.ShopChoice--
		}
	case "down", "j":
		if m.ShopChoice < len(pet.PercentStats)-1 {
			m.ShopChoice++
		}
	case "esc", "s":
		m.Screen = screenGame
	case "enter", " ":
		if m.onCooldown() {
			return m, nil
		}
		m.applyResult(m.Session.Engine.Purchase(pet.PercentStats[m.ShopChoice]))
	}
	return m, nil
}
