package catalog

// DefaultVersion identifies the built-in question set.
const DefaultVersion = "eq-assessor/2024.1"

// def is the package-level built-in catalog, set by init().
var def *Catalog

func init() {
	c, err := New(DefaultVersion, seedQuestions())
	if err != nil {
		panic(err)
	}
	def = c
}

// Default returns the built-in EQ Assessor question catalog.
func Default() *Catalog {
	return def
}

func seedQuestions() []Question {
	return []Question{
		// Psychometric: interest and personality.
		{
			ID:       "p1",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I find myself naturally curious about what motivates people and drives their behavior.",
			Category: "interest",
			Weight:   1.2,
		},
		{
			ID:       "p2",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I enjoy helping others understand their emotions and improve their interpersonal skills.",
			Category: "empathy",
			Weight:   1.5,
		},
		{
			ID:       "p3",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I am comfortable handling sensitive or confidential information about people.",
			Category: "ethics",
			Weight:   1.3,
		},
		{
			ID:       "p4",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I remain calm and objective when others share difficult emotions or personal challenges.",
			Category: "emotional_stability",
			Weight:   1.4,
		},
		{
			ID:       "p5",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I prefer working with people over working with data or technical systems.",
			Category: "preference",
			Weight:   1.0,
		},
		{
			ID:      "p6",
			Section: SectionPsychometric,
			Type:    TypeScenario,
			Prompt:  "During a team meeting, you notice a colleague seems withdrawn and upset. What would you most likely do?",
			Options: []string{
				"Approach them privately after the meeting to check if they're okay",
				"Mention it to the team leader so they can address it",
				"Give them space and wait for them to bring it up if they want to",
				"Try to lighten the mood with humor or casual conversation",
			},
			Category: "interpersonal",
			Weight:   1.3,
		},
		{
			ID:       "p7",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I can easily recognize when someone is masking their true feelings.",
			Category: "emotional_awareness",
			Weight:   1.4,
		},
		{
			ID:       "p8",
			Section:  SectionPsychometric,
			Type:     TypeScale,
			Prompt:   "I find satisfaction in seeing others achieve personal growth and self-awareness.",
			Category: "motivation",
			Weight:   1.2,
		},

		// Technical and aptitude.
		{
			ID:      "t1",
			Section: SectionTechnical,
			Type:    TypeChoice,
			Prompt:  "Which of the following best describes Emotional Intelligence (EQ)?",
			Options: []string{
				"The ability to control your emotions at all times",
				"The ability to understand, use, and manage emotions effectively",
				"Being naturally empathetic and caring toward others",
				"Having good social skills and being popular",
			},
			Category: "eq_knowledge",
			Weight:   1.5,
		},
		{
			ID:      "t2",
			Section: SectionTechnical,
			Type:    TypeChoice,
			Prompt:  "According to Daniel Goleman's model, which is NOT one of the main EQ competencies?",
			Options: []string{
				"Self-awareness",
				"Social skills",
				"IQ correlation",
				"Self-regulation",
			},
			Category: "eq_theory",
			Weight:   1.3,
		},
		{
			ID:      "t3",
			Section: SectionTechnical,
			Type:    TypeScenario,
			Prompt:  "You're interpreting EQ assessment results that show high self-awareness but low social skills. What would be your primary recommendation?",
			Options: []string{
				"Focus on developing interpersonal communication and relationship management",
				"Work on emotional self-control and stress management",
				"Increase empathy and understanding of others' emotions",
				"Build confidence and assertiveness skills",
			},
			Category: "interpretation",
			Weight:   1.4,
		},
		{
			ID:       "t4",
			Section:  SectionTechnical,
			Type:     TypeScale,
			Prompt:   "I understand basic statistical concepts like averages, percentiles, and standard deviations.",
			Category: "statistics",
			Weight:   1.1,
		},
		{
			ID:      "t5",
			Section: SectionTechnical,
			Type:    TypeChoice,
			Prompt:  "What is the most important ethical consideration when conducting EQ assessments?",
			Options: []string{
				"Ensuring the assessment is completed quickly",
				"Maintaining confidentiality and informed consent",
				"Focusing on positive results to build confidence",
				"Using the most advanced assessment tools available",
			},
			Category: "ethics",
			Weight:   1.5,
		},
		{
			ID:      "t6",
			Section: SectionTechnical,
			Type:    TypeScenario,
			Prompt:  "A client receives low EQ scores and becomes defensive. How do you handle this situation?",
			Options: []string{
				"Explain that the scores are just numbers and not that important",
				"Focus on growth opportunities and frame results positively",
				"Suggest they retake the assessment when they're feeling better",
				"Recommend they work with a different type of coach",
			},
			Category: "client_management",
			Weight:   1.4,
		},

		// WISCAR framework.
		{
			ID:       "w1",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I am motivated to learn new skills even when the learning process is challenging.",
			Category: "will",
			Weight:   1.3,
		},
		{
			ID:       "w2",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I actively seek out opportunities to understand human behavior and psychology.",
			Category: "interest",
			Weight:   1.2,
		},
		{
			ID:       "w3",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I have experience in counseling, coaching, HR, or related people-focused roles.",
			Category: "skill",
			Weight:   1.1,
		},
		{
			ID:       "w4",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I can analyze complex information and identify patterns or trends.",
			Category: "cognitive",
			Weight:   1.2,
		},
		{
			ID:       "w5",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I am open to feedback and actively use it to improve my performance.",
			Category: "ability",
			Weight:   1.3,
		},
		{
			ID:      "w6",
			Section: SectionWISCAR,
			Type:    TypeScenario,
			Prompt:  "You're asked to assess a senior executive who is skeptical about EQ. How do you approach this?",
			Options: []string{
				"Present research and business case for EQ in leadership",
				"Start with a brief, less formal conversation about their goals",
				"Use data-driven examples from similar executive assessments",
				"Focus on ROI and performance metrics related to EQ",
			},
			Category: "realWorld",
			Weight:   1.4,
		},
		{
			ID:       "w7",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I persist through setbacks and view challenges as learning opportunities.",
			Category: "will",
			Weight:   1.2,
		},
		{
			ID:       "w8",
			Section:  SectionWISCAR,
			Type:     TypeScale,
			Prompt:   "I genuinely enjoy learning about emotional intelligence research and applications.",
			Category: "interest",
			Weight:   1.3,
		},
	}
}
