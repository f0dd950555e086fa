package domain

import (
	"fmt"
	"strings"
)

// Category is a personality/interest label accumulated during the quiz.
type Category string

const (
	CategoryCreative      Category = "creative"
	CategoryAnalytical    Category = "analytical"
	CategorySocial        Category = "social"
	CategoryEnterprising  Category = "enterprising"
	CategoryInvestigative Category = "investigative"
	CategoryRealistic     Category = "realistic"
)

// Categories is the declared category order. Classification ties resolve to
// the earliest category in this list.
var Categories = []Category{
	CategoryCreative,
	CategoryAnalytical,
	CategorySocial,
	CategoryEnterprising,
	CategoryInvestigative,
	CategoryRealistic,
}

// ParseCategory validates a raw label against the declared set.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in Categories, or -1.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	return string(c)
}
