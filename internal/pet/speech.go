package pet

// Emotion is the pet's displayed feeling, derived from current stats.
type Emotion struct {
	Face string
	Text string
}

var (
	sickLines    = []string{"Not feeling great", "Kinda sick", "Need help", "Feeling rough"}
	miserableLines = []string{"Really sad", "Having a rough time", "Not doing well", "Feeling down"}
	downLines    = []string{"A bit sad", "Could be better", "Not great", "Meh"}
	okayLines    = []string{"Doing okay", "Not bad", "Alright", "Hanging in there"}
	excitedLines = []string{"SO EXCITED!", "Full of energy!", "Ready for anything!", "Let's go!!"}
	greatLines   = []string{"Super happy!", "Feeling great!", "Life is good!", "Best day ever!"}
	contentLines = []string{"Pretty good", "Doing well", "Feeling nice", "Content"}

	idleLines = []string{"What should we do?", "I'm here!", "Play with me!", "Hello!", "Look at me!"}

	thrivingReactions = []string{"Hi there!", "You're the best!", "Love you!", "This is fun!", "Yay!"}
	steadyReactions   = []string{"Hey!", "What's up?", "Nice to see you!", "Hi!"}
	strugglingReactions = []string{"Not feeling great...", "Could use some help", "Feeling down", "Need some care"}
)

// moodAverage is the wellbeing figure behind emotions, reactions, and idle
// speech. Energy is deliberately left out: a sleepy pet is not a sad pet.
func (p *Profile) moodAverage() float64 {
	return (p.Stats.Hunger + p.Stats.Happy + p.Stats.Health) / 3
}

// CurrentEmotion buckets the pet's wellbeing into a face and a flavor line.
// Low health overrides everything else.
func (e *Engine) CurrentEmotion() Emotion {
	p := e.profile
	avg := p.moodAverage()

	switch {
	case p.Stats.Health < 30:
		return Emotion{Face: "🤒", Text: pick(sickLines)}
	case avg < 30:
		return Emotion{Face: "😢", Text: pick(miserableLines)}
	case avg < 50:
		return Emotion{Face: "😔", Text: pick(downLines)}
	case avg < 70:
		return Emotion{Face: "😐", Text: pick(okayLines)}
	case p.Stats.Energy > 80 && p.Stats.Happy > 80:
		return Emotion{Face: "⚡", Text: pick(excitedLines)}
	case avg >= 80:
		return Emotion{Face: "😊", Text: pick(greatLines)}
	default:
		return Emotion{Face: "🙂", Text: pick(contentLines)}
	}
}

// IdleSpeech occasionally returns a line for a happy pet to say on its own.
// Gated by the policy's chance and minimum interval; empty means silence.
func (e *Engine) IdleSpeech() string {
	p := e.profile
	now := TimeNow()
	if RandFloat64() >= e.policy.IdleSpeechChance {
		return ""
	}
	if now.Sub(p.LastSpeechTime) <= e.policy.IdleSpeechInterval {
		return ""
	}
	if p.moodAverage() < 70 {
		return ""
	}
	p.LastSpeechTime = now
	return pick(idleLines)
}

// Interact is the player petting the pet directly: a one-point happiness
// bump and a mood-dependent reaction line.
func (e *Engine) Interact() Result {
	p := e.profile
	p.LastInteraction = TimeNow()
	p.InteractionCount++

	avg := p.moodAverage()
	var msg string
	switch {
	case avg >= 80:
		msg = pick(thrivingReactions)
	case avg >= 50:
		msg = pick(steadyReactions)
	default:
		msg = pick(strugglingReactions)
	}

	p.Stats.Adjust(StatHappy, 1)
	e.save()
	return Result{OK: true, Message: msg}
}
