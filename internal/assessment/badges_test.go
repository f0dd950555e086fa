package assessment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultBadgeRules(t *testing.T) {
	rules := DefaultBadgeRules()
	cases := []struct {
		points int
		want   []string
	}{
		{40, []string{"quiz_master"}},
		{30, []string{"quiz_completed"}},
		{35, []string{"quiz_completed"}}, // threshold itself is not exceeded
		{36, []string{"quiz_master"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, rules.Assign(tc.points, true)); diff != "" {
			t.Fatalf("Assign(%d) mismatch (-want +got):\n%s", tc.points, diff)
		}
	}
}

func TestBadgesRequireCompletion(t *testing.T) {
	if got := DefaultBadgeRules().Assign(99, false); len(got) != 0 {
		t.Fatalf("expected no badges for an incomplete quiz, got %v", got)
	}
}

func TestBadgeRulesAreData(t *testing.T) {
	rules := BadgeRules{
		{Threshold: 10, ExceedBadge: "rising_star", DefaultBadge: "quiz_completed"},
		{Threshold: 20, ExceedBadge: "quiz_master", DefaultBadge: ""},
		{Threshold: 5, ExceedBadge: "quiz_completed", DefaultBadge: "quiz_completed"},
	}
	cases := []struct {
		points int
		want   []string
	}{
		{3, []string{"quiz_completed"}},
		{15, []string{"quiz_completed", "rising_star"}},
		{25, []string{"quiz_completed", "quiz_master", "rising_star"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, rules.Assign(tc.points, true)); diff != "" {
			t.Fatalf("Assign(%d) mismatch (-want +got):\n%s", tc.points, diff)
		}
	}
}
