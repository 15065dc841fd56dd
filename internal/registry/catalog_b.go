package registry

import q "github.com/steadypath/backend/internal/domain/questionnaire"

// Level B: the daily rotation. Clusters:
//
//	B1 urge            — every day
//	B2 impulses        — alternate days
//	B3 trigger awareness — 2-3x per week
//	B4 emotional drift — every day
//	B5 stress reactivity — 1-2x per week
//	B6 sleep & energy  — 2-4x per week, mornings
//	B7 decision pressure — elevated risk only
func dailyTests() []*q.Definition {
	return []*q.Definition{
		// ── B1: urge ────────────────────────────────────────────────────
		{
			Code: "B1_1", Level: q.LevelDaily, Cluster: "B1",
			Name:        "Urge level",
			Description: "Rate today's urge strength",
			Frequency:   q.FrequencyDaily, CooldownDays: 1,
			Questions: []q.Question{
				{Code: "B1_1_Q1", Prompt: "How strong was the pull toward the old behavior today?", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"None at all", "", "", "", "", "", "", "", "", "", "Overwhelming"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 10,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 3, Level: "low", Message: "Low urge today."},
					{Min: 4, Max: 6, Level: "medium", Message: "A medium urge day."},
					{Min: 7, Max: 10, Level: "high", Message: "A high-urge day."},
				},
			},
			Responses: map[string]string{
				"low":    "The urge stayed low today — a good sign of balance.",
				"medium": "A middling urge day. It helps to notice when it picked up.",
				"high":   "The urge ran high. That's not dangerous in itself — the point is knowing your triggers.",
			},
		},
		{
			Code: "B1_2", Level: q.LevelDaily, Cluster: "B1",
			Name:        "What fed the urge",
			Description: "Identify today's urge triggers",
			Frequency:   q.FrequencyDaily, CooldownDays: 1,
			ShowOnHighUrge: true,
			Questions: []q.Question{
				{Code: "B1_2_Q1", Prompt: "What might have fed the urge today?", AnswerType: q.AnswerChoice, AllowMultiple: true, Choices: []string{
					"Stress", "Boredom / emptiness", "Anxiety", "A conflict or unpleasant conversation",
					"Bad news", "Thoughts about money", "Ads or notifications", "A sports event or market move",
					"Tiredness", "Just habit", "I don't know",
				}},
			},
			Responses: map[string]string{
				"unknown": "Knowing what feeds the urge is the first step to managing it.",
			},
		},
		{
			Code: "B1_3", Level: q.LevelDaily, Cluster: "B1",
			Name:        "Urgency of the impulse",
			Description: "How imperative the urge felt",
			Frequency:   q.FrequencyDaily, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B1_3_Q1", Prompt: "How imperative did the urge feel — like something you had to do right now?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "A faint wish", "A clear pull", "Nearly irresistible"}},
			},
		},
		{
			Code: "B1_4", Level: q.LevelDaily, Cluster: "B1",
			Name:        "Intrusive thoughts",
			Description: "How often the behavior came to mind",
			Frequency:   q.FrequencyDaily, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B1_4_Q1", Prompt: "How often did thoughts about the behavior surface today?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "A couple of times", "On and off", "Constantly"}},
			},
		},
		{
			Code: "B1_5", Level: q.LevelDaily, Cluster: "B1",
			Name:        "Autopilot moments",
			Description: "Whether an automatic slip nearly happened",
			Frequency:   q.FrequencyDaily, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B1_5_Q1", Prompt: "Was there a moment today when you could have done it on reflex, without deciding?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B1_6", Level: q.LevelDaily, Cluster: "B1",
			Name:        "Riding it out",
			Description: "Whether you managed to wait the urge out",
			Frequency:   q.FrequencyDaily, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B1_6_Q1", Prompt: "Did you manage to wait the urge out?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "A little", "Partly", "Completely"}},
			},
			Interpretation: q.Interpretation{
				MaxScore: 3,
				Ranges: []q.InterpretationRange{
					{Min: 0, Max: 1, Level: "low", Message: "The urge mostly won today."},
					{Min: 2, Max: 3, Level: "high", Message: "You rode the urge out."},
				},
			},
			Responses: map[string]string{
				"low":  "Waiting an urge out is hard — every attempt is practice.",
				"high": "Excellent. The ability to postpone is the core skill.",
			},
		},

		// ── B2: impulses ────────────────────────────────────────────────
		{
			Code: "B2_1", Level: q.LevelDaily, Cluster: "B2",
			Name:        "Impulses under stress",
			Description: "The link between stress and impulsivity",
			Frequency:   q.FrequencyAlternateDays, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B2_1_Q1", Prompt: "Did impulses come up against a background of stress?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"None", "Weak", "Noticeable", "Strong"}},
				{Code: "B2_1_Q2", Prompt: "Did you feel like escaping into the old behavior to distract yourself?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
			},
		},
		{
			Code: "B2_2", Level: q.LevelDaily, Cluster: "B2",
			Name:        "Impulses from boredom",
			Description: "The link between emptiness and impulsivity",
			Frequency:   q.FrequencyAlternateDays, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B2_2_Q1", Prompt: "Did you feel like doing \"just anything\" out of emptiness or boredom?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "A little", "Yes", "Very much"}},
				{Code: "B2_2_Q2", Prompt: "Did you want to jolt your brain awake with something sharp?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
			},
		},
		{
			Code: "B2_3", Level: q.LevelDaily, Cluster: "B2",
			Name:        "Fear of missing out",
			Description: "The feeling of a slipping opportunity",
			Tracks:      []q.Track{q.TrackGambling, q.TrackTrading},
			Frequency:   q.FrequencyAlternateDays, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B2_3_Q1", Prompt: "Did it feel like \"now is a good moment\" without any facts behind it?", AnswerType: q.AnswerYesNo},
				{Code: "B2_3_Q2", Prompt: "Did the thought \"I'll miss my chance if I don't try\" come up?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B2_4", Level: q.LevelDaily, Cluster: "B2",
			Name:        "Impulses after setbacks",
			Description: "The wish to compensate for something bad",
			Frequency:   q.FrequencyAlternateDays, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B2_4_Q1", Prompt: "Did you want to offset a bad event with something drastic?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
				{Code: "B2_4_Q2", Prompt: "Was there a feeling of needing to discharge the tension the fast way?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
			},
		},

		// ── B3: trigger awareness ───────────────────────────────────────
		{
			Code: "B3_1", Level: q.LevelDaily, Cluster: "B3",
			Name:        "Emotional triggers",
			Description: "Which emotions drove today",
			Frequency:   q.FrequencyWeekly2to3, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B3_1_Q1", Prompt: "Which emotions influenced you most today?", AnswerType: q.AnswerChoice, AllowMultiple: true, Choices: []string{
					"Anxiety", "Resentment", "Boredom", "Irritation", "Tiredness", "Joy (wanted to celebrate)", "Sadness", "Loneliness",
				}},
				{Code: "B3_1_Q2", Prompt: "Was there a state that usually comes right before the urge?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B3_2", Level: q.LevelDaily, Cluster: "B3",
			Name:        "Situational triggers",
			Description: "External factors",
			Frequency:   q.FrequencyWeekly2to3, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B3_2_Q1", Prompt: "Did you see ads or notifications connected to the behavior?", AnswerType: q.AnswerYesNo},
				{Code: "B3_2_Q2", Prompt: "Was there a habit moment — a place or time of day where it usually happens?", AnswerType: q.AnswerYesNo},
				{Code: "B3_2_Q3", Prompt: "Did easy access to money sharpen the urge?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B3_3", Level: q.LevelDaily, Cluster: "B3",
			Name:        "Social triggers",
			Description: "The influence of people and relationships",
			Frequency:   q.FrequencyWeekly2to3, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B3_3_Q1", Prompt: "Did conflicts or tense conversations affect you today?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "A little", "Yes", "Strongly"}},
				{Code: "B3_3_Q2", Prompt: "Was there a loneliness that amplified the impulses?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Strongly"}},
			},
		},
		{
			Code: "B3_4", Level: q.LevelDaily, Cluster: "B3",
			Name:        "Physical triggers",
			Description: "The body's influence on impulses",
			Frequency:   q.FrequencyWeekly2to3, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B3_4_Q1", Prompt: "Did tiredness sharpen the urge?", AnswerType: q.AnswerYesNo},
				{Code: "B3_4_Q2", Prompt: "Did lack of sleep make you more impulsive?", AnswerType: q.AnswerYesNo},
				{Code: "B3_4_Q3", Prompt: "Did hunger or physical discomfort affect your state?", AnswerType: q.AnswerYesNo},
			},
		},

		// ── B4: emotional drift ─────────────────────────────────────────
		{
			Code: "B4_1", Level: q.LevelDaily, Cluster: "B4",
			Name:        "Mood and tension",
			Description: "Baseline emotional state",
			Frequency:   q.FrequencyDaily, CooldownDays: 1,
			Questions: []q.Question{
				{Code: "B4_1_Q1", Prompt: "Mood level today", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"Very low", "", "", "", "", "", "", "", "", "", "Excellent"}},
				{Code: "B4_1_Q2", Prompt: "Level of inner tension", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"Completely calm", "", "", "", "", "", "", "", "", "", "Maximum tension"}},
			},
		},
		{
			Code: "B4_2", Level: q.LevelDaily, Cluster: "B4",
			Name:        "Emotional clarity",
			Description: "How well you read your own emotions",
			Frequency:   q.FrequencyDaily, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B4_2_Q1", Prompt: "How well did you understand your emotions today?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "Poorly", "Reasonably", "Clearly"}},
				{Code: "B4_2_Q2", Prompt: "Was there a sense of emotional fog?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B4_3", Level: q.LevelDaily, Cluster: "B4",
			Name:        "Coping",
			Description: "Handling difficult emotions",
			Frequency:   q.FrequencyDaily, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B4_3_Q1", Prompt: "How well did you manage difficult emotions?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "With difficulty", "Reasonably", "Well"}},
				{Code: "B4_3_Q2", Prompt: "Did it feel like the emotions were running you?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Completely"}},
			},
		},

		// ── B5: stress reactivity ───────────────────────────────────────
		{
			Code: "B5_1", Level: q.LevelDaily, Cluster: "B5",
			Name:        "Stress level",
			Description: "Today's stress load",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 3,
			Questions: []q.Question{
				{Code: "B5_1_Q1", Prompt: "Stress level today", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"No stress", "", "", "", "", "", "", "", "", "", "Maximum stress"}},
				{Code: "B5_1_Q2", Prompt: "Which was closest to your reaction to stress?", AnswerType: q.AnswerChoice, Choices: []string{
					"Freeze, do nothing", "Make a snap decision", "Avoid the situation", "Look for a quick escape or distraction",
				}},
			},
		},
		{
			Code: "B5_2", Level: q.LevelDaily, Cluster: "B5",
			Name:        "Reaction control",
			Description: "Steering your response to stress",
			Frequency:   q.FrequencyWeekly1to2, CooldownDays: 4,
			Questions: []q.Question{
				{Code: "B5_2_Q1", Prompt: "How well did you control your reaction to stress?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"Not at all", "Poorly", "Reasonably", "Well"}},
				{Code: "B5_2_Q2", Prompt: "Did the thought \"I'm not coping\" come up?", AnswerType: q.AnswerYesNo},
			},
		},

		// ── B6: sleep & energy ──────────────────────────────────────────
		{
			Code: "B6_1", Level: q.LevelDaily, Cluster: "B6",
			Name:        "Sleep quality",
			Description: "Last night's sleep",
			Frequency:   q.FrequencyWeekly2to4, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B6_1_Q1", Prompt: "How did you sleep?", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"Very badly", "", "", "", "", "", "", "", "", "", "Great"}},
				{Code: "B6_1_Q2", Prompt: "Were there anxious or intrusive thoughts before falling asleep?", AnswerType: q.AnswerYesNo},
			},
		},
		{
			Code: "B6_2", Level: q.LevelDaily, Cluster: "B6",
			Name:        "Energy level",
			Description: "Current energy and alertness",
			Frequency:   q.FrequencyWeekly2to4, CooldownDays: 2,
			Questions: []q.Question{
				{Code: "B6_2_Q1", Prompt: "Energy level right now", AnswerType: q.AnswerScale0to10, ScaleLabels: []string{"Completely drained", "", "", "", "", "", "", "", "", "", "Full of energy"}},
				{Code: "B6_2_Q2", Prompt: "Did you wake up with thoughts about the behavior?", AnswerType: q.AnswerYesNo},
			},
		},

		// ── B7: decision pressure ───────────────────────────────────────
		{
			Code: "B7_1", Level: q.LevelDaily, Cluster: "B7",
			Name:        "Illusion of control",
			Description: "Cognitive distortions around outcomes",
			Tracks:      []q.Track{q.TrackGambling, q.TrackTrading},
			Frequency:   q.FrequencyEvent, CooldownDays: 3,
			MinRiskLevel: q.RiskMedium, ShowOnHighUrge: true,
			Questions: []q.Question{
				{Code: "B7_1_Q1", Prompt: "Did the thought come up that one move could fix everything?", AnswerType: q.AnswerYesNo},
				{Code: "B7_1_Q2", Prompt: "Was there a feeling that this time it would work out?", AnswerType: q.AnswerYesNo},
				{Code: "B7_1_Q3", Prompt: "Did the moment feel special — like right now is the lucky window?", AnswerType: q.AnswerYesNo},
			},
			Responses: map[string]string{
				"unknown": "Those thoughts are the signature of a cognitive distortion. Outcomes don't depend on the moment or a gut feeling.",
			},
		},
		{
			Code: "B7_2", Level: q.LevelDaily, Cluster: "B7",
			Name:        "Risk as relief",
			Description: "The emotional function of risk",
			Tracks:      []q.Track{q.TrackGambling, q.TrackTrading},
			Frequency:   q.FrequencyEvent, CooldownDays: 3,
			MinRiskLevel: q.RiskMedium,
			Questions: []q.Question{
				{Code: "B7_2_Q1", Prompt: "Did you want to do something risky just to feel relief?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
				{Code: "B7_2_Q2", Prompt: "Was there a feeling of \"I have to do something\"?", AnswerType: q.AnswerScale0to3, ScaleLabels: []string{"No", "A little", "Yes", "Very much"}},
			},
		},
		{
			Code: "B7_3", Level: q.LevelDaily, Cluster: "B7",
			Name:        "Decisions under emotion",
			Description: "Choices made in a charged state",
			Frequency:   q.FrequencyEvent, CooldownDays: 3,
			MinRiskLevel: q.RiskMedium,
			Questions: []q.Question{
				{Code: "B7_3_Q1", Prompt: "Did you make decisions while strongly emotional?", AnswerType: q.AnswerYesNo},
				{Code: "B7_3_Q2", Prompt: "Was there a \"whatever, let's just see what happens\" moment?", AnswerType: q.AnswerYesNo},
			},
			Responses: map[string]string{
				"unknown": "Decisions made under strong emotion rarely match your real goals. A pause helps.",
			},
		},
	}
}
