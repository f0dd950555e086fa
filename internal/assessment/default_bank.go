package assessment

import "pathfinders-assessment/internal/domain"

// DefaultBankID identifies the built-in career personality bank.
const DefaultBankID = "career-personality"

// DefaultBank returns the built-in eight question career personality bank.
func DefaultBank() *Bank {
	b, err := NewBank(DefaultBankID, defaultQuestions())
	if err != nil {
		panic("assessment: invalid default bank: " + err.Error())
	}
	return b
}

func opt(text string, points int, c domain.Category) domain.Option {
	return domain.Option{Text: text, Points: points, Category: c}
}

func defaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:     "creativity",
			Prompt: "How do you prefer to solve problems?",
			Options: []domain.Option{
				opt("Think outside the box with creative solutions", 5, domain.CategoryCreative),
				opt("Analyze data and use logical reasoning", 3, domain.CategoryAnalytical),
				opt("Collaborate with others to find solutions", 4, domain.CategorySocial),
				opt("Take charge and lead the solution process", 4, domain.CategoryEnterprising),
			},
		},
		{
			ID:     "work_environment",
			Prompt: "What type of work environment energizes you most?",
			Options: []domain.Option{
				opt("A dynamic startup with lots of change", 5, domain.CategoryEnterprising),
				opt("A quiet lab or research facility", 4, domain.CategoryInvestigative),
				opt("An open office with team collaboration", 5, domain.CategorySocial),
				opt("A workshop or hands-on environment", 4, domain.CategoryRealistic),
			},
		},
		{
			ID:     "motivation",
			Prompt: "What motivates you most in your work?",
			Options: []domain.Option{
				opt("Making a positive impact on people's lives", 5, domain.CategorySocial),
				opt("Discovering new knowledge or innovations", 5, domain.CategoryInvestigative),
				opt("Building something tangible with my hands", 4, domain.CategoryRealistic),
				opt("Creating beautiful or meaningful art/content", 5, domain.CategoryCreative),
			},
		},
		{
			ID:     "communication",
			Prompt: "How do you prefer to communicate ideas?",
			Options: []domain.Option{
				opt("Through visual presentations and storytelling", 4, domain.CategoryCreative),
				opt("With detailed reports and data analysis", 5, domain.CategoryAnalytical),
				opt("Face-to-face discussions and meetings", 5, domain.CategorySocial),
				opt("Through demonstrations and hands-on examples", 4, domain.CategoryRealistic),
			},
		},
		{
			ID:     "interests",
			Prompt: "Which subjects fascinated you most in school?",
			Options: []domain.Option{
				opt("Art, Literature, and Creative Writing", 5, domain.CategoryCreative),
				opt("Math, Science, and Technology", 5, domain.CategoryInvestigative),
				opt("Psychology, History, and Social Studies", 5, domain.CategorySocial),
				opt("Business, Economics, and Leadership", 5, domain.CategoryEnterprising),
			},
		},
		{
			ID:     "decision_making",
			Prompt: "When making important decisions, you tend to:",
			Options: []domain.Option{
				opt("Go with your gut feeling and intuition", 4, domain.CategoryCreative),
				opt("Research thoroughly and analyze all options", 5, domain.CategoryAnalytical),
				opt("Seek advice from friends and mentors", 4, domain.CategorySocial),
				opt("Make quick decisions and adapt as you go", 5, domain.CategoryEnterprising),
			},
		},
		{
			ID:     "ideal_outcome",
			Prompt: "What would be your ideal career outcome?",
			Options: []domain.Option{
				opt("Leading a successful company or organization", 5, domain.CategoryEnterprising),
				opt("Making groundbreaking discoveries or inventions", 5, domain.CategoryInvestigative),
				opt("Creating art or content that inspires others", 5, domain.CategoryCreative),
				opt("Helping others achieve their potential", 5, domain.CategorySocial),
			},
		},
		{
			ID:     "work_style",
			Prompt: "Which work style suits you best?",
			Options: []domain.Option{
				opt("Working independently on focused projects", 4, domain.CategoryInvestigative),
				opt("Collaborating in diverse teams", 5, domain.CategorySocial),
				opt("Leading and managing other people", 5, domain.CategoryEnterprising),
				opt("Creating and building things yourself", 4, domain.CategoryRealistic),
			},
		},
	}
}
