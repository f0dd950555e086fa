package assessment

import "sort"

// BadgeRule awards ExceedBadge when the total is strictly above Threshold and
// DefaultBadge otherwise. An empty badge name awards nothing.
type BadgeRule struct {
	Threshold    int    `yaml:"threshold" json:"threshold"`
	ExceedBadge  string `yaml:"exceedBadge" json:"exceedBadge"`
	DefaultBadge string `yaml:"defaultBadge" json:"defaultBadge"`
}

// BadgeRules is the badge lookup table evaluated at completion.
type BadgeRules []BadgeRule

// DefaultBadgeRules returns the production badge table.
func DefaultBadgeRules() BadgeRules {
	return BadgeRules{
		{Threshold: 35, ExceedBadge: "quiz_master", DefaultBadge: "quiz_completed"},
	}
}

// Assign returns the sorted set of badges earned. Incomplete quizzes earn none.
func (r BadgeRules) Assign(totalPoints int, completed bool) []string {
	if !completed {
		return []string{}
	}
	set := make(map[string]struct{}, len(r))
	for _, rule := range r {
		badge := rule.DefaultBadge
		if totalPoints > rule.Threshold {
			badge = rule.ExceedBadge
		}
		if badge != "" {
			set[badge] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}
