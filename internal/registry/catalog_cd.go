package registry

import q "github.com/steadypath/backend/internal/domain/questionnaire"

// crisisKeywords gate the D3 event test. Matched case-insensitively as
// substrings of the check-in note.
var crisisKeywords = []string{
	"hopeless",
	"can't go on",
	"cant go on",
	"no way out",
	"end it all",
	"kill myself",
	"suicide",
	"want to die",
	"hurt myself",
	"worthless",
	"no point anymore",
}

// Level C: weekly tests, offered on Sundays, one per week, rotating
// through the set by least-recently-taken.
func weeklyTests() []*q.Definition {
	return []*q.Definition{
		{
			Code: "C1", Level: q.LevelWeekly,
			Name:        "Weekly urge review",
			Description: "How the pull behaved across the whole week",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 7,
			Questions: []q.Question{
				{Code: "C1_Q1", Prompt: "Looking at the whole week, how heavy was the urge overall?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Barely there", "Light", "Heavy", "Very heavy"}},
				{Code: "C1_Q2", Prompt: "Did the urge come more often than the week before?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Much less", "A bit less", "A bit more", "Much more"}},
				{Code: "C1_Q3", Prompt: "How close did you come to acting on it?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not close", "Thought about it", "Nearly did", "Did or almost did"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 9,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 3, Level: "green", Message: "A calm week by your own account. Worth noticing what made it work."},
					{Min: 4, Max: 6, Level: "yellow", Message: "The week had weight to it. Let's look at which days carried it."},
					{Min: 7, Max: 9, Level: "red", Message: "A hard week. That deserves support, not willpower alone."},
				},
			},
		},
		{
			Code: "C2", Level: q.LevelWeekly,
			Name:        "Weekly impulse review",
			Description: "How often impulses got past your guard this week",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 7,
			Questions: []q.Question{
				{Code: "C2_Q1", Prompt: "How often did you act on an impulse you'd planned to resist?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Once or twice", "Several times", "Most days"}},
				{Code: "C2_Q2", Prompt: "How often did you catch an impulse before it became action?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Most times", "Often", "Rarely", "Never"}},
				{Code: "C2_Q3", Prompt: "Did impulsive moments cluster around anything in particular?", AnswerType: q.AnswerChoice, Choices: []string{"Evenings", "After work or study", "Being alone", "After conflicts", "No clear pattern"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 9,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 2, Level: "green", Message: "You caught most impulses this week before they moved you."},
					{Min: 3, Max: 5, Level: "yellow", Message: "Some impulses slipped through. The pattern question above is the useful part."},
					{Min: 6, Max: 9, Level: "red", Message: "Impulses won more rounds than you this week. Time to shore up the routine."},
				},
			},
		},
		{
			Code: "C3", Level: q.LevelWeekly,
			Name:        "Life balance review",
			Description: "What the week held besides the struggle",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 7,
			Questions: []q.Question{
				{Code: "C3_Q1", Prompt: "How often did the behavior (or fighting it) crowd out things you care about?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Occasionally", "Often", "Constantly"}},
				{Code: "C3_Q2", Prompt: "How much energy did you have left for people close to you?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Plenty", "Enough", "Little", "None"}},
				{Code: "C3_Q3", Prompt: "Did you do anything this week purely because you enjoy it?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Several things", "One thing", "Barely", "Nothing"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 9,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 3, Level: "green", Message: "The week had room for a life, not just a fight."},
					{Min: 4, Max: 6, Level: "yellow", Message: "The balance tilted. Recovery goes better when the week contains things worth staying recovered for."},
					{Min: 7, Max: 9, Level: "red", Message: "The struggle ate the week. Let's plan one small enjoyable thing for the next one."},
				},
			},
		},
		{
			Code: "C4", Level: q.LevelWeekly,
			Name:        "Confidence review",
			Description: "How sure you feel about the road ahead",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 7,
			Questions: []q.Question{
				{Code: "C4_Q1", Prompt: "How often this week did you doubt you could keep this up?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Once or twice", "Often", "Constantly"}},
				{Code: "C4_Q2", Prompt: "When the urge hit, how sure were you that you could handle it?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Completely sure", "Mostly sure", "Unsure", "Sure I couldn't"}},
				{Code: "C4_Q3", Prompt: "Does next week feel manageable from where you stand now?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Definitely", "Probably", "Not really", "Not at all"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 9,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 3, Level: "green", Message: "Your confidence is holding. That's earned, not luck."},
					{Min: 4, Max: 6, Level: "yellow", Message: "Confidence wobbled this week. Normal — it tracks hard days, not your actual ability."},
					{Min: 7, Max: 9, Level: "red", Message: "The week drained your belief in this. That feeling lies; the record of days you've already managed doesn't."},
				},
			},
		},
	}
}

// Level D: event-triggered tests. Evaluated in fixed order D1→D4; each has
// a completion-based cooldown window enforced by the selection engine.
func eventTests() []*q.Definition {
	return []*q.Definition{
		{
			Code: "D1", Level: q.LevelEvent,
			Name:        "After a relapse",
			Description: "A short debrief — no judgment, just data",
			Frequency:   q.FrequencyEvent, CooldownDays: 1,
			ShowAfterRelapse: true,
			IntroMessage:     "A relapse is a data point, not a verdict. Three questions while it's fresh.",
			Questions: []q.Question{
				{Code: "D1_Q1", Prompt: "What was happening right before?", AnswerType: q.AnswerChoice, AllowMultiple: true, Choices: []string{
					"Strong emotion", "A trigger situation", "Money was at hand", "Alcohol or tiredness", "It crept up gradually", "Hard to say",
				}},
				{Code: "D1_Q2", Prompt: "How are you treating yourself about it right now?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"With understanding", "Mixed", "Harshly", "Brutally"}},
				{Code: "D1_Q3", Prompt: "How strong is the pull to continue right now?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Gone", "Faint", "Strong", "Very strong"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 9,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 3, Level: "contained", Message: "The episode looks contained. The streak resets; everything you learned doesn't."},
					{Min: 4, Max: 6, Level: "elevated", Message: "The after-pull and the self-criticism are both up. Be deliberate about the next few hours."},
					{Min: 7, Max: 9, Level: "critical", Message: "Right now is the highest-risk window for continuing. Please use the SOS techniques and consider reaching out to someone."},
				},
			},
		},
		{
			Code: "D2", Level: q.LevelEvent,
			Name:        "High urge check",
			Description: "A fast snapshot while the wave is up",
			Frequency:   q.FrequencyEvent, CooldownDays: 1,
			ShowOnHighUrge: true,
			Questions: []q.Question{
				{Code: "D2_Q1", Prompt: "Can you name what set this wave off?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Yes, clearly", "Roughly", "Vaguely", "No idea"}},
				{Code: "D2_Q2", Prompt: "How much room do you have right now before it becomes action?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Plenty", "Some", "Little", "Almost none"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 6,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 2, Level: "low", Message: "You're riding this one with room to spare. Urges crest and fall — this one is no different."},
					{Min: 3, Max: 4, Level: "medium", Message: "The wave is real but you still have room. Ten minutes of anything else changes the odds."},
					{Min: 5, Max: 6, Level: "high", Message: "Very little room left. Step away from the means — phone, app, money — and use an SOS technique now."},
				},
			},
		},
		{
			Code: "D3", Level: q.LevelEvent,
			Name:        "Heavy moment check",
			Description: "Your note sounded heavy — two questions",
			Frequency:   q.FrequencyEvent, CooldownDays: 1,
			IntroMessage: "Something in your note sounded heavy. Two quick questions, honestly answered, help more than they seem to.",
			Questions: []q.Question{
				{Code: "D3_Q1", Prompt: "How dark does it feel right now?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Manageable", "Heavy", "Very heavy", "Unbearable"}},
				{Code: "D3_Q2", Prompt: "Is there someone you could talk to today?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Yes, and I will", "Yes, maybe", "Not really", "No one"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 6,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 2, Level: "steady", Message: "Heavy but held. Writing it down was the right move."},
					{Min: 3, Max: 4, Level: "strained", Message: "That's a lot to carry alone. The helplines in this app are staffed by people who get it."},
					{Min: 5, Max: 6, Level: "critical", Message: "Please don't sit with this alone. Call a helpline now — it's anonymous and it helps tonight, not someday."},
				},
			},
		},
		{
			Code: "D4", Level: q.LevelEvent,
			Name:        "Welcome back",
			Description: "A few days passed — where are you now?",
			Frequency:   q.FrequencyEvent, CooldownDays: 7,
			IntroMessage: "Good to see you again. No catch-up required — just today's picture.",
			Questions: []q.Question{
				{Code: "D4_Q1", Prompt: "How were the days you were away, honestly?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Fine", "Mixed", "Rough", "Very rough"}},
				{Code: "D4_Q2", Prompt: "Did the behavior come back while you were away?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "Thoughts only", "Once", "More than once"}},
				{Code: "D4_Q3", Prompt: "What pulled you away from checking in?", AnswerType: q.AnswerChoice, Choices: []string{
					"Life got busy", "Felt fine without it", "Was avoiding it", "Forgot", "Something else",
				}},
			},
			OutroMessage: "However the days went, coming back is the move that matters.",
		},
	}
}
