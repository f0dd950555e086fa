// Package careers suggests career interests for a completed personality profile.
package careers

import (
	"context"
	"fmt"

	"pathfinders-assessment/internal/domain"
)

// InterestCount is how many interests an advisor returns.
const InterestCount = 5

// Advisor turns a dominant category and its score breakdown into career interests.
type Advisor interface {
	Suggest(ctx context.Context, dominant domain.Category, totals map[domain.Category]int) ([]string, error)
}

// StaticAdvisor serves a fixed list per category. It needs no network and is
// used when no model API key is configured.
type StaticAdvisor struct{}

var staticInterests = map[domain.Category][]string{
	domain.CategoryCreative:      {"Graphic Design", "Content Creation", "Architecture", "Film Production", "UX Design"},
	domain.CategoryAnalytical:    {"Data Science", "Software Engineering", "Financial Analysis", "Actuarial Science", "Research"},
	domain.CategorySocial:        {"Teaching", "Counseling", "Nursing", "Social Work", "Human Resources"},
	domain.CategoryEnterprising:  {"Entrepreneurship", "Sales Management", "Marketing", "Consulting", "Product Management"},
	domain.CategoryInvestigative: {"Scientific Research", "Medicine", "Forensics", "Cybersecurity", "Environmental Science"},
	domain.CategoryRealistic:     {"Mechanical Engineering", "Construction Management", "Electrician", "Agriculture", "Aviation"},
}

func (StaticAdvisor) Suggest(_ context.Context, dominant domain.Category, _ map[domain.Category]int) ([]string, error) {
	interests, ok := staticInterests[dominant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, dominant)
	}
	return append([]string(nil), interests...), nil
}
