package worksheet

func init() {
	MustRegister(founderOnboarding)
	MustRegister(opportunityDiscovery)
	MustRegister(painPointResearch)
	MustRegister(competitiveAnalysis)
}

// founderOnboarding is the intake questionnaire shown before the program
// starts. It feeds the coach context and the dashboard defaults.
var founderOnboarding = &Worksheet{
	ID:            "founder-onboarding",
	Title:         "Founder Onboarding",
	Description:   "Tell us where you are in your founder journey so the program can meet you there",
	Difficulty:    DifficultyBeginner,
	EstimatedTime: "15 minutes",
	Objectives: []string{
		"Capture your starting point and goals",
		"Set your weekly time commitment",
	},
	Sections: []Section{
		{
			ID:           "basics",
			Title:        "The Basics",
			Description:  "Who you are and what you are building",
			TimeEstimate: "5 minutes",
			Questions: []Question{
				{
					ID:       "founder-name",
					Kind:     KindText,
					Label:    "What should we call you?",
					Required: true,
					Rules:    &Rules{MinLength: 2, MaxLength: 60},
				},
				{
					ID:       "venture-stage",
					Kind:     KindSingleChoice,
					Label:    "Where is your venture today?",
					Required: true,
					Choices: []string{
						"Just an itch, no concrete idea yet",
						"One or more ideas, nothing validated",
						"Validated problem, building a solution",
						"Live product with early users",
						"Revenue-generating business",
					},
				},
				{
					ID:          "venture-summary",
					Kind:        KindLongText,
					Label:       "Describe your idea or venture in a few sentences",
					HelpText:    "A rough sketch is fine. This is your day-zero snapshot",
					Placeholder: "What problem, for whom, and why you...",
					Required:    false,
					Rules:       &Rules{MaxLength: 600},
				},
			},
		},
		{
			ID:           "commitment",
			Title:        "Goals & Commitment",
			TimeEstimate: "10 minutes",
			Questions: []Question{
				{
					ID:       "program-goals",
					Kind:     KindChecklist,
					Label:    "What do you want out of the next 30 days?",
					Required: true,
					Choices: []string{
						"Find and validate a business idea",
						"Talk to real customers",
						"Build a first prototype or MVP",
						"Launch publicly and get first users",
						"Build a repeatable founder routine",
					},
				},
				{
					ID:       "weekly-hours",
					Kind:     KindScale,
					Label:    "How many hours per week can you commit?",
					HelpText: "Be honest, the program adapts to your pace",
					Required: true,
					Scale:    ScaleRange{Min: 5, Max: 40, Labels: [2]string{"5 hrs", "40 hrs"}},
				},
			},
		},
	},
}

var opportunityDiscovery = &Worksheet{
	ID:            "opportunity-discovery",
	Title:         "Professional Opportunity Discovery Worksheet",
	Description:   "Comprehensive framework for identifying and evaluating business opportunities using proven methodologies",
	Difficulty:    DifficultyBeginner,
	EstimatedTime: "90 minutes",
	Objectives: []string{
		"Master systematic opportunity identification techniques",
		"Apply evaluation frameworks to assess opportunity potential",
		"Understand market context and competitive dynamics",
		"Create actionable opportunity assessment reports",
	},
	Sections: []Section{
		{
			ID:           "personal-assessment",
			Title:        "Personal Foundation Assessment",
			Description:  "Understand your strengths, interests, and entrepreneurial readiness",
			TimeEstimate: "20 minutes",
			Objectives: []string{
				"Identify personal strengths and competencies",
				"Clarify entrepreneurial motivations and goals",
				"Assess risk tolerance and resource availability",
			},
			Questions: []Question{
				{
					ID:       "strengths-analysis",
					Kind:     KindChecklist,
					Label:    "Select your top 5 professional strengths and competencies:",
					HelpText: "Choose the skills where you excel compared to most people",
					Hint:     "Think about what colleagues, friends, and mentors consistently praise you for",
					Required: true,
					Choices: []string{
						"Strategic thinking and planning",
						"Sales and persuasion",
						"Technical/engineering skills",
						"Creative problem solving",
						"Financial analysis and management",
						"Leadership and team building",
						"Marketing and communications",
						"Operations and process optimization",
						"Customer relationship management",
						"Product development and design",
						"Data analysis and insights",
						"Project management",
						"Networking and relationship building",
					},
				},
				{
					ID:          "entrepreneurial-motivation",
					Kind:        KindLongText,
					Label:       "Why do you want to become an entrepreneur?",
					HelpText:    "Be specific about your motivations, both professional and personal",
					Placeholder: "Describe your core motivations for pursuing entrepreneurship...",
					Hint:        "Strong motivations include: solving meaningful problems, financial independence, creative control, making an impact",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 500},
				},
				{
					ID:       "risk-tolerance",
					Kind:     KindScale,
					Label:    "How comfortable are you with business and financial risk?",
					HelpText: "Rate your comfort level with uncertainty and potential losses",
					Hint:     "Most successful entrepreneurs rate themselves 6-8 on this scale",
					Required: true,
					Scale:    ScaleRange{Min: 1, Max: 10, Labels: [2]string{"Very risk-averse", "Very risk-tolerant"}},
				},
				{
					ID:       "available-resources",
					Kind:     KindChecklist,
					Label:    "What resources do you currently have available for your business?",
					HelpText: "Check all that apply to your current situation",
					Required: true,
					Choices: []string{
						"Personal savings ($5,000+)",
						"Access to investment capital",
						"Professional network in target industry",
						"Technical skills for product development",
						"Marketing and sales experience",
						"Industry expertise and knowledge",
						"Time availability (20+ hours/week)",
						"Supportive family/friends",
						"Existing business relationships",
						"Legal and financial advisory access",
					},
				},
			},
		},
		{
			ID:           "opportunity-identification",
			Title:        "Opportunity Identification & Research",
			Description:  "Systematically identify and document potential business opportunities",
			TimeEstimate: "35 minutes",
			Objectives: []string{
				"Apply opportunity spotting frameworks",
				"Document problems and market gaps",
				"Identify potential customer segments",
			},
			Questions: []Question{
				{
					ID:          "problem-inventory",
					Kind:        KindLongText,
					Label:       "List 10+ problems you or people around you have experienced recently:",
					HelpText:    "Include personal frustrations, inefficiencies, and unmet needs",
					Placeholder: "1. Problem description and context...\n2. Another problem...",
					Hint:        "Think about daily frustrations at work, home, shopping, travel, health, finance, education",
					Required:    true,
					Rules:       &Rules{MinLength: 200, MaxLength: 1000},
				},
				{
					ID:          "market-trends",
					Kind:        KindLongText,
					Label:       "What major trends do you see affecting your areas of interest?",
					HelpText:    "Consider technology, social, economic, environmental, and cultural trends",
					Required:    true,
					Rules:       &Rules{MinLength: 150, MaxLength: 500},
				},
				{
					ID:       "opportunity-areas",
					Kind:     KindChecklist,
					Label:    "Which opportunity areas most interest you?",
					HelpText: "Select 3-5 areas where you see potential for business creation",
					Required: true,
					Choices: []string{
						"B2B Software/SaaS solutions",
						"E-commerce and marketplace platforms",
						"FinTech and financial services",
						"HealthTech and wellness solutions",
						"EdTech and online learning",
						"Sustainable/green technology",
						"AgTech and food innovation",
						"Tourism and hospitality tech",
						"Logistics and supply chain",
						"Professional services",
						"Creative and media services",
					},
				},
				{
					ID:          "target-customers",
					Kind:        KindLongText,
					Label:       "Describe your potential target customers for your top opportunity:",
					HelpText:    "Be specific about demographics, behaviors, and characteristics",
					Hint:        "Consider: age, location, income, profession, company size, pain points, current behavior",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 400},
				},
			},
		},
		{
			ID:           "opportunity-evaluation",
			Title:        "Opportunity Evaluation & Prioritization",
			Description:  "Apply evaluation frameworks to assess and rank your opportunities",
			TimeEstimate: "35 minutes",
			Objectives: []string{
				"Use systematic evaluation criteria",
				"Assess market potential and competition",
				"Create prioritized opportunity rankings",
			},
			Questions: []Question{
				{
					ID:       "top-opportunities",
					Kind:     KindRanking,
					Label:    "Rank these opportunity criteria by importance to your decision:",
					HelpText: "Order from most to least decisive for you",
					Required: true,
					Choices: []string{
						"Market size and growth",
						"Personal fit and expertise",
						"Competition level",
						"Resource requirements",
						"Time to first revenue",
					},
				},
				{
					ID:       "market-size-assessment",
					Kind:     KindSingleChoice,
					Label:    "What is your estimated total addressable market (TAM) for your #1 opportunity?",
					HelpText: "Choose the range that best represents the total market size",
					Hint:     "Research similar companies, industry reports, and government data for estimates",
					Required: true,
					Choices: []string{
						"Under $10 million (niche market)",
						"$10-100 million (small market)",
						"$100 million - $1 billion (medium market)",
						"$1-10 billion (large market)",
						"Over $10 billion (massive market)",
						"Unknown - need more research",
					},
				},
				{
					ID:          "differentiation-strategy",
					Kind:        KindLongText,
					Label:       "How would your solution be different from and better than existing alternatives?",
					HelpText:    "Describe your unique value proposition and competitive advantages",
					Hint:        "Focus on: faster, cheaper, easier, more effective, unserved segments, new technology",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 400},
				},
				{
					ID:       "execution-confidence",
					Kind:     KindScale,
					Label:    "How confident are you in your ability to execute this opportunity?",
					HelpText: "Consider your skills, resources, network, and market knowledge",
					Required: true,
					Scale:    ScaleRange{Min: 1, Max: 10, Labels: [2]string{"No confidence", "Extremely confident"}},
				},
			},
		},
	},
}

var painPointResearch = &Worksheet{
	ID:            "pain-point-research",
	Title:         "Professional Customer Pain Point Research",
	Description:   "Systematic approach to discovering, validating, and prioritizing customer pain points",
	Difficulty:    DifficultyIntermediate,
	EstimatedTime: "105 minutes",
	Objectives: []string{
		"Master customer pain point discovery methodologies",
		"Conduct effective customer research interviews",
		"Analyze and prioritize pain points systematically",
	},
	Sections: []Section{
		{
			ID:           "research-planning",
			Title:        "Research Planning & Methodology",
			Description:  "Plan your customer research approach and methodology",
			TimeEstimate: "25 minutes",
			Questions: []Question{
				{
					ID:       "research-objectives",
					Kind:     KindChecklist,
					Label:    "What are your primary research objectives?",
					HelpText: "Select all objectives that apply to your research goals",
					Required: true,
					Choices: []string{
						"Validate specific pain points exist",
						"Understand pain point frequency and intensity",
						"Discover unknown problems and frustrations",
						"Learn how customers currently solve problems",
						"Assess willingness to pay for solutions",
						"Identify decision-making processes",
						"Map the customer journey and touchpoints",
					},
				},
				{
					ID:          "target-research-segments",
					Kind:        KindLongText,
					Label:       "Describe your target customer segments for research:",
					HelpText:    "Be specific about demographics, roles, and characteristics",
					Placeholder: "Segment 1: Description...\nSegment 2: Description...",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 400},
				},
			},
		},
		{
			ID:           "interview-execution",
			Title:        "Customer Interview Data Collection",
			Description:  "Document findings from your customer discovery interviews",
			TimeEstimate: "40 minutes",
			Questions: []Question{
				{
					ID:          "interview-summaries",
					Kind:        KindLongText,
					Label:       "Provide detailed summaries of your customer interviews:",
					HelpText:    "Include key insights, quotes, and pain points from each interview",
					Hint:        "Include demographics, specific pain points, current solutions tried, and exact quotes",
					Required:    true,
					Rules:       &Rules{MinLength: 300, MaxLength: 1500},
				},
				{
					ID:          "pain-point-patterns",
					Kind:        KindLongText,
					Label:       "What patterns do you see across multiple customer interviews?",
					HelpText:    "Identify common themes, repeated problems, and consistent feedback",
					Required:    true,
					Rules:       &Rules{MinLength: 150, MaxLength: 600},
				},
			},
		},
		{
			ID:           "pain-analysis",
			Title:        "Pain Point Analysis & Prioritization",
			Description:  "Analyze and prioritize discovered pain points using systematic frameworks",
			TimeEstimate: "40 minutes",
			Questions: []Question{
				{
					ID:          "validated-pain-points",
					Kind:        KindLongText,
					Label:       "List your top 5 validated pain points with evidence:",
					HelpText:    "Include frequency, intensity, and customer quotes as evidence",
					Required:    true,
					Rules:       &Rules{MinLength: 250, MaxLength: 1000},
				},
				{
					ID:       "pain-prioritization",
					Kind:     KindSingleChoice,
					Label:    "Which pain point scores highest on frequency + intensity + willingness to pay?",
					Required: true,
					Choices: []string{
						"Pain Point 1 from your list above",
						"Pain Point 2 from your list above",
						"Pain Point 3 from your list above",
						"Pain Point 4 from your list above",
						"Pain Point 5 from your list above",
					},
				},
				{
					ID:          "solution-landscape",
					Kind:        KindLongText,
					Label:       "How do customers currently attempt to solve your top pain point?",
					HelpText:    "Include existing solutions, workarounds, and why they fail",
					Required:    true,
					Rules:       &Rules{MinLength: 150, MaxLength: 500},
				},
			},
		},
	},
}

var competitiveAnalysis = &Worksheet{
	ID:            "competitive-analysis",
	Title:         "Comprehensive Competitive Analysis Worksheet",
	Description:   "Professional framework for analyzing competitors and identifying market opportunities",
	Difficulty:    DifficultyAdvanced,
	EstimatedTime: "120 minutes",
	Objectives: []string{
		"Conduct systematic competitive intelligence gathering",
		"Identify competitive gaps and opportunities",
		"Develop unique positioning strategies",
	},
	Sections: []Section{
		{
			ID:           "competitor-mapping",
			Title:        "Competitor Mapping",
			Description:  "Identify and categorize your competitive landscape",
			TimeEstimate: "40 minutes",
			Questions: []Question{
				{
					ID:          "direct-competitors",
					Kind:        KindLongText,
					Label:       "List your 5 closest direct competitors with a one-line description each:",
					HelpText:    "Companies solving the same problem for the same customers",
					Required:    true,
					Rules:       &Rules{MinLength: 150, MaxLength: 800},
				},
				{
					ID:          "indirect-alternatives",
					Kind:        KindLongText,
					Label:       "What indirect alternatives and workarounds do customers use today?",
					HelpText:    "Include DIY solutions, manual processes, and substitute products",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 500},
				},
				{
					ID:       "competitive-intensity",
					Kind:     KindScale,
					Label:    "How intense is competition in your target market?",
					Required: true,
					Scale:    ScaleRange{Min: 1, Max: 10, Labels: [2]string{"Wide open", "Saturated"}},
				},
			},
		},
		{
			ID:           "positioning",
			Title:        "Gap Analysis & Positioning",
			Description:  "Find the space your venture can own",
			TimeEstimate: "40 minutes",
			Questions: []Question{
				{
					ID:       "evaluation-factors",
					Kind:     KindMatrix,
					Label:    "Rate your top competitor on each factor:",
					HelpText: "One rating per row",
					Required: true,
					Rows: []string{
						"Price",
						"Product quality",
						"Customer experience",
						"Distribution reach",
					},
					Columns: []string{"Weak", "Average", "Strong"},
				},
				{
					ID:          "market-gaps",
					Kind:        KindLongText,
					Label:       "What gaps does your analysis reveal?",
					HelpText:    "Underserved segments, ignored use cases, overpriced offerings",
					Required:    true,
					Rules:       &Rules{MinLength: 100, MaxLength: 600},
				},
				{
					ID:          "positioning-statement",
					Kind:        KindLongText,
					Label:       "Write your one-sentence positioning statement:",
					Placeholder: "For <target customer> who <need>, <venture> is the <category> that <key benefit>...",
					Required:    false,
					Rules:       &Rules{MaxLength: 300},
				},
			},
		},
	},
}
