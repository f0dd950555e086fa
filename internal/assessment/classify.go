package assessment

import "pathfinders-assessment/internal/domain"

// Classify returns the dominant category. Ties go to the category declared
// first in domain.Categories.
func Classify(totals map[domain.Category]int) (domain.Category, error) {
	if len(totals) == 0 {
		return "", domain.ErrNoAnswersRecorded
	}

	var (
		best      domain.Category
		bestScore int
		found     bool
	)
	for _, c := range domain.Categories {
		score, ok := totals[c]
		if !ok {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	if !found {
		return "", domain.ErrUnknownCategory
	}
	return best, nil
}
