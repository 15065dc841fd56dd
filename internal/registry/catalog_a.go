package registry

import q "github.com/steadypath/backend/internal/domain/questionnaire"

// Level A: the onboarding screening sequence. A1 runs on day 1 for
// everyone, A2-A4 on day 2 depending on track, A5 on day 3 for all tracks.
func onboardingTests() []*q.Definition {
	return []*q.Definition{
		{
			Code:        "A1",
			Level:       q.LevelOnboarding,
			Name:        "Impulsivity screen",
			Description: "A short look at how you handle sudden urges and risky decisions",
			Frequency:   q.FrequencyOnboarding,
			IntroMessage: "Welcome. Over the next few days we'll ask a handful of short " +
				"questionnaires to understand where you're starting from. There are no " +
				"wrong answers.",
			Questions: []q.Question{
				{Code: "A1_Q1", Prompt: "I act on the spur of the moment without thinking it through", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q2", Prompt: "When I feel bad, I do something risky to feel better", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q3", Prompt: "I find it hard to stop an activity once I've started, even when I want to", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q4", Prompt: "I've hidden how much time or money I spend on this behavior", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q5", Prompt: "I chase a loss or a bad day with another attempt to make it right", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q6", Prompt: "The urge arrives before I've consciously decided anything", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q7", Prompt: "I keep going longer or further than I planned", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A1_Q8", Prompt: "Afterwards I regret it, but it doesn't change what I do next time", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 24,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 7, Level: "low", Message: "Your impulsivity markers are in the low range. The daily practice here will help you keep it that way."},
					{Min: 8, Max: 15, Level: "medium", Message: "Some impulsivity markers stand out. Noticing the moment before an urge becomes action is the skill we'll build."},
					{Min: 16, Max: 24, Level: "high", Message: "Urges are clearly taking decisions away from you at times. That's exactly what this program is for — one day at a time."},
				},
			},
			TrackOptions: []q.Track{q.TrackGambling, q.TrackTrading, q.TrackDigital},
		},
		{
			Code:        "A2",
			Level:       q.LevelOnboarding,
			Name:        "Gambling screen",
			Description: "Nine questions about the past 12 months of gambling",
			Tracks:      []q.Track{q.TrackGambling},
			Frequency:   q.FrequencyOnboarding,
			Questions: []q.Question{
				{Code: "A2_Q1", Prompt: "Have you bet more than you could really afford to lose?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q2", Prompt: "Have you needed to gamble with larger amounts of money to get the same feeling?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q3", Prompt: "Have you gone back another day to try to win back money you lost?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q4", Prompt: "Have you borrowed money or sold anything to gamble?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q5", Prompt: "Have you felt that you might have a problem with gambling?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q6", Prompt: "Has gambling caused you any health problems, including stress or anxiety?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q7", Prompt: "Have people criticized your betting or told you that you had a gambling problem?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q8", Prompt: "Has gambling caused financial problems for you or your household?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
				{Code: "A2_Q9", Prompt: "Have you felt guilty about the way you gamble or what happens when you gamble?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Most of the time", "Almost always"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 27,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 0, Level: "non_problem", Message: "No gambling-related harm showed up in your answers."},
					{Min: 1, Max: 2, Level: "low_risk", Message: "Low level of problems, with few or no identified negative consequences."},
					{Min: 3, Max: 7, Level: "moderate_risk", Message: "A moderate level of problems leading to some negative consequences. Worth taking seriously now, while changing course is easier."},
					{Min: 8, Max: 27, Level: "problem_gambling", Message: "Your answers indicate gambling at a level with serious negative consequences. Support exists and it works — this app will show you some options."},
				},
			},
		},
		{
			Code:        "A3",
			Level:       q.LevelOnboarding,
			Name:        "Trading behavior screen",
			Description: "How speculative trading has been affecting you",
			Tracks:      []q.Track{q.TrackTrading},
			Frequency:   q.FrequencyOnboarding,
			Questions: []q.Question{
				{Code: "A3_Q1", Prompt: "I open positions to win back earlier losses", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q2", Prompt: "I check charts or prices compulsively, including at night", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q3", Prompt: "I trade with money set aside for essentials", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q4", Prompt: "I increase position sizes to feel the same excitement", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q5", Prompt: "Trading outcomes dictate my mood for the whole day", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q6", Prompt: "I hide the scale of my trading from people close to me", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A3_Q7", Prompt: "I abandon my own rules (stop-losses, limits) in the moment", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 21,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 6, Level: "low", Message: "Your trading patterns look mostly controlled."},
					{Min: 7, Max: 13, Level: "medium", Message: "Several compulsive trading markers are present. The daily check-ins will help you spot the emotional trades before they happen."},
					{Min: 14, Max: 21, Level: "high", Message: "Trading is functioning as an emotional outlet rather than a financial decision. That pattern responds well to the structured work ahead."},
				},
			},
		},
		{
			Code:        "A4",
			Level:       q.LevelOnboarding,
			Name:        "Digital overuse screen",
			Description: "How compulsive screen use has been affecting you",
			Tracks:      []q.Track{q.TrackDigital},
			Frequency:   q.FrequencyOnboarding,
			Questions: []q.Question{
				{Code: "A4_Q1", Prompt: "I stay online much longer than I intended", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q2", Prompt: "I reach for my phone automatically, without any reason", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q3", Prompt: "Sleep, meals, or work slip because of screen time", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q4", Prompt: "I feel restless or irritable when I can't be online", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q5", Prompt: "I use screens to escape feelings I don't want to sit with", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q6", Prompt: "Attempts to cut down haven't lasted", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
				{Code: "A4_Q7", Prompt: "I keep scrolling even when it stopped being enjoyable", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Never", "Sometimes", "Often", "Almost always"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 21,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 6, Level: "low", Message: "Your screen habits look mostly intentional."},
					{Min: 7, Max: 13, Level: "medium", Message: "Some compulsive-use markers are present. We'll work on noticing the automatic reach."},
					{Min: 14, Max: 21, Level: "high", Message: "Screen use is running on autopilot a lot of the time. Rebuilding intentionality is very doable, step by step."},
				},
			},
		},
		{
			Code:        "A5",
			Level:       q.LevelOnboarding,
			Name:        "Emotional regulation screen",
			Description: "How you relate to difficult emotions",
			Frequency:   q.FrequencyOnboarding,
			Questions: []q.Question{
				{Code: "A5_Q1", Prompt: "When I'm upset, I have trouble getting anything done", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
				{Code: "A5_Q2", Prompt: "When I'm upset, I feel out of control", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
				{Code: "A5_Q3", Prompt: "I have no idea what I'm feeling until it's overwhelming", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
				{Code: "A5_Q4", Prompt: "When I'm upset, I believe the feeling will never end", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
				{Code: "A5_Q5", Prompt: "I criticize myself for feeling the way I do", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
				{Code: "A5_Q6", Prompt: "Strong emotions push me toward the behavior I'm trying to change", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Almost never", "Sometimes", "Often", "Almost always"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 18,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 6, Level: "stable", Message: "You generally stay oriented when emotions run high — a real asset for this work."},
					{Min: 7, Max: 12, Level: "mixed", Message: "Emotions sometimes take the wheel. The thought diary here is built exactly for those moments."},
					{Min: 13, Max: 18, Level: "vulnerable", Message: "Difficult emotions hit hard and push toward the old behavior. We'll give the emotional side of this as much attention as the behavioral one."},
				},
			},
			OutroMessage: "That's the last of the screening questionnaires — thank you. From tomorrow the app switches to short daily check-ins.",
		},
	}
}
