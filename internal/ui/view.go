package ui

import (
	"fmt"
	"strings"

	"pocketpet/internal/pet"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	switch m.Screen {
	case screenSpecies:
		return m.speciesView()
	case screenPersonality:
		return m.personalityView()
	case screenName:
		return m.nameView()
	case screenShop:
		return m.shopView()
	case screenLedger:
		return m.ledgerView()
	default:
		return m.gameView()
	}
}

func (m Model) speciesView() string {
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("🏡 Adopt a Pet") + "\n\n")
	b.WriteString(m.Theme.Menu.Render("Who's coming home with you?") + "\n\n")
	for i, opt := range speciesOptions {
		line := fmt.Sprintf("  %s %s", opt.Face, titleCase(opt.Tag))
		if m.Choice == i {
			line = m.Theme.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		} else {
			line = m.Theme.Menu.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.Theme.Faint.Render("↑/↓ select · enter confirm · t theme · q quit"))
	return b.String()
}

func (m Model) personalityView() string {
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("🧬 Personality") + "\n\n")
	descriptions := map[string]string{
		pet.PersonalityDefault:   "easygoing, hunger fades slowly",
		pet.PersonalityEnergetic: "always moving, burns through meals",
	}
	for i, p := range personalityOptions {
		line := fmt.Sprintf("  %s — %s", titleCase(p), descriptions[p])
		if m.Choice == i {
			line = m.Theme.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		} else {
			line = m.Theme.Menu.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.Theme.Faint.Render("↑/↓ select · enter confirm · esc back"))
	return b.String()
}

func (m Model) nameView() string {
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("✏️  Name your pet") + "\n\n")
	b.WriteString(m.NameInput.View() + "\n")
	if m.NameError != "" {
		b.WriteString("\n" + m.Theme.Rejected.Render(m.NameError) + "\n")
	}
	b.WriteString("\n" + m.Theme.Faint.Render("enter confirm · esc back"))
	return b.String()
}

func (m Model) gameView() string {
	e := m.Session.Engine
	p := e.Profile()

	var b strings.Builder
	face := speciesFace(p.Species)
	b.WriteString(m.Theme.Title.Render(fmt.Sprintf("%s %s %s", face, p.Name, m.Emotion.Face)) + "\n")
	b.WriteString(m.Theme.Speech.Render(m.currentSpeech()) + "\n\n")

	b.WriteString(m.renderStats(p))
	b.WriteString("\n")
	b.WriteString(m.Theme.Status.Render(fmt.Sprintf("Money: $%d   Expenses: $%d   Savings: $%d / $%d",
		p.Stats.Money, p.TotalExpenses, p.SavingsCurrent(), p.SavingsGoal)) + "\n\n")

	for i, item := range gameMenu {
		if m.Choice == i {
			b.WriteString(m.Theme.Selected.Render("> "+item) + "\n")
		} else {
			b.WriteString(m.Theme.Menu.Render("  "+item) + "\n")
		}
	}

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		style := m.Theme.Feedback
		if !m.MessageOK {
			style = m.Theme.Rejected
		}
		b.WriteString("\n" + style.Render(m.Message) + "\n")
	}

	b.WriteString("\n" + m.Theme.Faint.Render("↑/↓ select · enter act · p pet · s shop · l ledger · t theme · q quit"))
	return b.String()
}

// currentSpeech shows idle chatter while it lasts, else the emotion line.
func (m Model) currentSpeech() string {
	if m.Speech != "" && pet.TimeNow().Before(m.SpeechExpires) {
		return "“" + m.Speech + "”"
	}
	return m.Emotion.Text
}

func (m Model) renderStats(p *pet.Profile) string {
	var b strings.Builder
	labels := map[pet.Stat]string{
		pet.StatHunger: "Hunger",
		pet.StatHappy:  "Happy",
		pet.StatEnergy: "Energy",
		pet.StatHealth: "Health",
	}
	for _, s := range pet.PercentStats {
		v := p.Stats.Get(s)
		b.WriteString(m.Theme.Status.Render(fmt.Sprintf("%-7s", labels[s])))
		b.WriteString(fmt.Sprintf(" [%s] %3.0f%%\n", m.statBar(v), v))
	}
	return b.String()
}

func (m Model) statBar(value float64) string {
	filled := int(value) / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case value < 30:
		return m.Theme.BarCrit.Render(bar)
	case value < 50:
		return m.Theme.BarLow.Render(bar)
	case value < 70:
		return m.Theme.BarWarn.Render(bar)
	default:
		return m.Theme.BarGood.Render(bar)
	}
}

func (m Model) shopView() string {
	e := m.Session.Engine
	p := e.Profile()
	policy := e.Policy()

	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("🛒 Decay Upgrades") + "\n\n")
	b.WriteString(m.Theme.Menu.Render(fmt.Sprintf(
		"Each upgrade costs $%d and slows that stat's decay by 10%% (max %d).",
		policy.UpgradeCost, policy.UpgradeLimit)) + "\n\n")

	for i, s := range pet.PercentStats {
		count := p.UpgradeCount(s)
		line := fmt.Sprintf("  %-7s %d/%d owned · decay ×%.2f",
			titleCase(string(s)), count, policy.UpgradeLimit, p.Multiplier(s))
		if count >= policy.UpgradeLimit {
			line += " (maxed)"
		}
		if m.ShopChoice == i {
			line = m.Theme.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		} else {
			line = m.Theme.Menu.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.Theme.Status.Render(fmt.Sprintf("Money: $%d", p.Stats.Money)) + "\n")

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		style := m.Theme.Feedback
		if !m.MessageOK {
			style = m.Theme.Rejected
		}
		b.WriteString("\n" + style.Render(m.Message) + "\n")
	}

	b.WriteString("\n" + m.Theme.Faint.Render("enter buy · esc back"))
	return b.String()
}

func (m Model) ledgerView() string {
	entries := m.Session.Engine.Ledger().Recent(12)

	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("🧾 Expense Log") + "\n\n")
	if len(entries) == 0 {
		b.WriteString(m.Theme.Faint.Render("Nothing yet.") + "\n")
	}
	for _, entry := range entries {
		amount := fmt.Sprintf("-$%d", entry.Cost)
		style := m.Theme.Menu
		if entry.Cost < 0 {
			amount = fmt.Sprintf("+$%d", -entry.Cost)
			style = m.Theme.Feedback
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s  %-18s %s", entry.Time, entry.Item, amount)) + "\n")
	}
	b.WriteString("\n" + m.Theme.Faint.Render("esc back"))
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func speciesFace(tag string) string {
	for _, opt := range speciesOptions {
		if opt.Tag == tag {
			return opt.Face
		}
	}
	return "🐾"
}
