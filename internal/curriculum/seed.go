package curriculum

import "fmt"

// Program returns the full 30-day curriculum in day order.
func Program() []Day {
	return program
}

// DayByNumber returns the given program day, or nil if out of range.
func DayByNumber(n int) *Day {
	if n < 1 || n > len(program) {
		return nil
	}
	return &program[n-1]
}

var program = buildProgram()

func buildProgram() []Day {
	days := []Day{
		{
			Number:      1,
			Title:       "The Founder's Mindset & Opportunity Discovery",
			Phase:       PhaseFoundation,
			Description: "Develop the entrepreneurial mindset and learn to spot opportunities everywhere",
			Objectives: []string{
				"Understand the founder's mindset fundamentals",
				"Learn opportunity spotting frameworks",
				"Begin your entrepreneurial journey documentation",
			},
			Tasks: []Task{
				{ID: "1-t1", Title: "Complete personal strengths assessment", Type: TaskAnalysis, EstimatedTime: "15 min", Priority: PriorityHigh},
				{ID: "1-t2", Title: "Document 10 problems you've experienced this week", Type: TaskResearch, EstimatedTime: "20 min", Priority: PriorityHigh},
				{ID: "1-t3", Title: "Research 3 successful local entrepreneurs", Type: TaskResearch, EstimatedTime: "30 min", Priority: PriorityMedium},
			},
			Reflection: []string{
				"What mindset shifts do I need to make to think like a founder?",
				"Which opportunities resonate most with my strengths and passions?",
				"What fears or limiting beliefs might hold me back?",
			},
			Deliverables: []string{"Personal strengths assessment", "Opportunity identification list", "Founder mindset commitment"},
			WorksheetID:  "opportunity-discovery",
		},
		{
			Number:      2,
			Title:       "Problem Discovery & Customer Pain Point Research",
			Phase:       PhaseFoundation,
			Description: "Deep dive into problem identification and understanding customer pain points",
			Objectives: []string{
				"Master problem discovery techniques",
				"Learn to identify real vs. perceived problems",
				"Create a structured approach to customer pain research",
			},
			Tasks: []Task{
				{ID: "2-t1", Title: "Conduct 3 informal problem discovery conversations", Type: TaskResearch, EstimatedTime: "60 min", Priority: PriorityHigh},
				{ID: "2-t2", Title: "Analyze online forums and communities for pain points", Type: TaskResearch, EstimatedTime: "30 min", Priority: PriorityMedium},
				{ID: "2-t3", Title: "Create initial problem hypothesis document", Type: TaskCreation, EstimatedTime: "25 min", Priority: PriorityHigh},
			},
			Reflection: []string{
				"Which problems came up again and again?",
				"Am I hearing real pain or polite agreement?",
			},
			Deliverables: []string{"Problem hypothesis document", "Pain point research notes"},
			WorksheetID:  "pain-point-research",
		},
		{
			Number:      3,
			Title:       "Competitive Analysis & Blue Ocean Strategy",
			Phase:       PhaseFoundation,
			Description: "Map the competitive landscape and find the space nobody serves",
			Objectives: []string{
				"Research direct and indirect competitors",
				"Identify underserved segments",
				"Draft a unique value proposition",
			},
			Tasks: []Task{
				{ID: "3-t1", Title: "Research 5 direct competitors in detail", Type: TaskResearch, EstimatedTime: "45 min", Priority: PriorityHigh},
				{ID: "3-t2", Title: "Identify 3 indirect/alternative solutions", Type: TaskResearch, EstimatedTime: "20 min", Priority: PriorityMedium},
				{ID: "3-t3", Title: "Define your unique value proposition draft", Type: TaskCreation, EstimatedTime: "30 min", Priority: PriorityHigh},
			},
			Reflection: []string{
				"Where do existing solutions fail their customers?",
				"What would make switching to my solution worth the trouble?",
			},
			Deliverables: []string{"Competitive analysis matrix", "Value proposition draft"},
			WorksheetID:  "competitive-analysis",
		},
		{
			Number:      4,
			Title:       "Customer Avatar Creation & Targeting",
			Phase:       PhaseFoundation,
			Description: "Define exactly who you are building for",
			Objectives: []string{
				"Research the target demographic",
				"Build a concrete primary customer avatar",
				"Sketch the customer journey",
			},
			Tasks: []Task{
				{ID: "4-t1", Title: "Research target demographic data and trends", Type: TaskResearch, EstimatedTime: "30 min", Priority: PriorityHigh},
				{ID: "4-t2", Title: "Create primary customer avatar with photo and name", Type: TaskCreation, EstimatedTime: "25 min", Priority: PriorityHigh},
				{ID: "4-t3", Title: "Develop customer journey mapping draft", Type: TaskCreation, EstimatedTime: "30 min", Priority: PriorityMedium},
			},
			Reflection: []string{
				"Could I pick my avatar out of a crowd?",
				"Where does my avatar spend time and attention?",
			},
			Deliverables: []string{"Primary customer avatar", "Customer journey map draft"},
		},
		{
			Number:      5,
			Title:       "Validation Interview Techniques & Execution",
			Phase:       PhaseFoundation,
			Description: "Learn to run interviews that surface truth instead of politeness",
			Objectives: []string{
				"Master non-leading interview technique",
				"Practice with cohort members",
				"Line up real customer interviews",
			},
			Tasks: []Task{
				{ID: "5-t1", Title: "Schedule 5 customer interviews for this week", Type: TaskOutreach, EstimatedTime: "30 min", Priority: PriorityHigh},
				{ID: "5-t2", Title: "Conduct 2 practice interviews with cohort members", Type: TaskAction, EstimatedTime: "40 min", Priority: PriorityHigh},
				{ID: "5-t3", Title: "Create interview documentation template", Type: TaskCreation, EstimatedTime: "20 min", Priority: PriorityMedium},
			},
			Reflection: []string{
				"What interview techniques feel most natural to me?",
				"How can I ensure I'm not leading customers to tell me what I want to hear?",
				"What follow-up questions reveal the deepest insights?",
			},
			Deliverables: []string{"Interview script", "Scheduled customer interviews", "Interview documentation system"},
		},
	}

	for _, d := range remainingDays {
		days = append(days, expandDay(d))
	}
	return days
}

// compactDay is the short form used for the later program days, which
// share a common task shape.
type compactDay struct {
	number       int
	title        string
	description  string
	tasks        []string
	deliverables []string
}

func expandDay(c compactDay) Day {
	d := Day{
		Number:       c.number,
		Title:        c.title,
		Phase:        PhaseOf(c.number),
		Description:  c.description,
		Deliverables: c.deliverables,
		Reflection: []string{
			"What did I learn today that changes my plan?",
			"What is the one thing I must do tomorrow?",
		},
	}
	for i, title := range c.tasks {
		prio := PriorityMedium
		if i == 0 {
			prio = PriorityHigh
		}
		d.Tasks = append(d.Tasks, Task{
			ID:       fmt.Sprintf("%d-t%d", c.number, i+1),
			Title:    title,
			Type:     TaskAction,
			Priority: prio,
		})
	}
	return d
}

var remainingDays = []compactDay{
	{6, "Interview Insights & Problem Validation", "Synthesize interview findings into validated problem statements",
		[]string{"Summarize findings from this week's interviews", "Score each problem hypothesis against the evidence"},
		[]string{"Validated problem statement"}},
	{7, "Solution Brainstorming & Concept Selection", "Generate solution concepts and pick one to pursue",
		[]string{"Brainstorm 20 solution ideas without judging them", "Select the top concept with a scoring matrix"},
		[]string{"Chosen solution concept"}},
	{8, "Value Proposition Design", "Sharpen the promise your solution makes to your avatar",
		[]string{"Complete a value proposition canvas", "Test the pitch on 3 people outside the cohort"},
		[]string{"One-sentence value proposition"}},
	{9, "Business Model Foundations", "Map how the venture creates, delivers and captures value",
		[]string{"Fill in a business model canvas", "Identify the riskiest assumption in the model"},
		[]string{"Business model canvas"}},
	{10, "Foundation Review & First Pitch", "Consolidate the foundation phase and pitch the opportunity",
		[]string{"Prepare a 3-minute opportunity pitch", "Collect structured feedback from two cohort members"},
		[]string{"Recorded practice pitch"}},
	{11, "MVP Scoping & Feature Prioritization", "Decide the smallest thing worth building",
		[]string{"List every imagined feature, then cut to the top 3", "Write the single user story the MVP must serve"},
		[]string{"MVP scope document"}},
	{12, "Rapid Prototyping", "Turn the scope into something you can put in front of people",
		[]string{"Sketch the core flow on paper or in a design tool", "Build a clickable or physical mock of the core flow"},
		[]string{"First prototype"}},
	{13, "Landing Page & Messaging Test", "Test the message before building the product",
		[]string{"Draft landing page copy around the value proposition", "Publish the page and share it in 2 communities"},
		[]string{"Live landing page"}},
	{14, "Pricing Strategy & Revenue Experiments", "Put a price on the promise and test reactions",
		[]string{"Research pricing of 5 adjacent offerings", "Draft 3 pricing tiers and test them in conversations"},
		[]string{"Pricing hypothesis"}},
	{15, "Early Adopter Outreach", "Build a list of people who feel the problem most",
		[]string{"List 25 potential early adopters with contact info", "Send 10 personal outreach messages"},
		[]string{"Early adopter pipeline"}},
	{16, "MVP Build Sprint I", "Heads-down building on the core flow",
		[]string{"Build the first half of the core user flow", "Log every cut decision for later review"},
		[]string{"Working core flow, part one"}},
	{17, "MVP Build Sprint II", "Finish the core flow end to end",
		[]string{"Complete the core user flow", "Run through the flow yourself and fix the worst friction"},
		[]string{"End-to-end MVP"}},
	{18, "Usability Testing With Real Users", "Watch real people use the MVP",
		[]string{"Run 3 usability sessions with early adopters", "Rank the observed problems by severity"},
		[]string{"Usability findings report"}},
	{19, "Metrics & Feedback Loops", "Decide what to measure and wire it up",
		[]string{"Pick one activation and one retention metric", "Instrument the MVP to capture both"},
		[]string{"Metrics baseline"}},
	{20, "Build Review & Iteration Plan", "Close the build phase with a clear iteration plan",
		[]string{"Review metrics and usability findings", "Write the top 3 changes for the next iteration"},
		[]string{"Iteration plan"}},
	{21, "Launch Narrative & Brand Basics", "Craft the story you will launch with",
		[]string{"Write the founding story in 200 words", "Pick a name, logo direction and tone of voice"},
		[]string{"Launch narrative"}},
	{22, "Marketing Channels & Content Plan", "Choose where and how you will reach customers",
		[]string{"Pick 2 primary channels based on avatar research", "Draft a 2-week content calendar"},
		[]string{"Channel plan"}},
	{23, "Sales Conversations & Objection Handling", "Get comfortable asking for money",
		[]string{"Script answers to the 5 most likely objections", "Run 2 mock sales calls with cohort members"},
		[]string{"Objection handling sheet"}},
	{24, "Launch Assets & Checklist", "Prepare everything the launch day needs",
		[]string{"Finalize launch copy, visuals and announcement posts", "Walk the full launch checklist twice"},
		[]string{"Launch checklist"}},
	{25, "Soft Launch To Early Adopters", "Open the doors quietly to the pipeline",
		[]string{"Invite the early adopter list personally", "Track activation and collect first reactions"},
		[]string{"Soft launch report"}},
	{26, "Public Launch Day", "Ship it to everyone",
		[]string{"Publish launch announcements on chosen channels", "Respond to every comment and question same-day"},
		[]string{"Public launch"}},
	{27, "Post-Launch Metrics Review", "Read what the launch data says",
		[]string{"Compare launch metrics to the baseline", "Identify the biggest drop-off in the funnel"},
		[]string{"Launch metrics review"}},
	{28, "Customer Retention & Referrals", "Turn first users into returning advocates",
		[]string{"Contact every activated user for feedback", "Design one simple referral incentive"},
		[]string{"Retention plan"}},
	{29, "Fundraising & Growth Options", "Map how the venture could grow from here",
		[]string{"Outline bootstrap, angel and grant scenarios", "Draft a one-page growth summary for each"},
		[]string{"Growth options memo"}},
	{30, "Demo Day & 90-Day Roadmap", "Present the venture and commit to what happens next",
		[]string{"Deliver the final demo day pitch", "Write the 90-day post-program roadmap"},
		[]string{"Demo day pitch", "90-day roadmap"}},
}
