package assessment

import (
	"fmt"
	"time"

	"pathfinders-assessment/internal/domain"
)

// NewScoreState returns an empty running total.
func NewScoreState() domain.ScoreState {
	return domain.ScoreState{CategoryTotals: make(map[domain.Category]int)}
}

// RecordAnswer returns state with answer applied. state is never mutated.
func RecordAnswer(state domain.ScoreState, answer domain.Answer) (domain.ScoreState, error) {
	if answer.PointsEarned < 0 {
		return state, fmt.Errorf("%w: question %s earned %d", domain.ErrNegativePoints, answer.QuestionID, answer.PointsEarned)
	}
	if !answer.Category.Valid() {
		return state, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, answer.Category)
	}

	next := domain.ScoreState{
		TotalPoints:    state.TotalPoints + answer.PointsEarned,
		CategoryTotals: make(map[domain.Category]int, len(state.CategoryTotals)+1),
	}
	for c, v := range state.CategoryTotals {
		next.CategoryTotals[c] = v
	}
	next.CategoryTotals[answer.Category] += answer.PointsEarned
	return next, nil
}

// NewAttempt starts an empty attempt for a participant.
func NewAttempt(id, bankID, participantID, displayName string, now time.Time) domain.Attempt {
	return domain.Attempt{
		ID:            id,
		ParticipantID: participantID,
		DisplayName:   displayName,
		BankID:        bankID,
		Score:         NewScoreState(),
		StartedAt:     now,
	}
}

// Record resolves submission against bank and returns the attempt with the
// answer appended. A second answer to the same question is rejected.
func Record(bank *Bank, attempt domain.Attempt, submission domain.AnswerSubmission, now time.Time) (domain.Attempt, domain.Answer, error) {
	answer, err := bank.Resolve(submission)
	if err != nil {
		return attempt, domain.Answer{}, err
	}
	if Answered(attempt, answer.QuestionID) {
		return attempt, domain.Answer{}, fmt.Errorf("%w: %s", domain.ErrDuplicateAnswer, answer.QuestionID)
	}

	score, err := RecordAnswer(attempt.Score, answer)
	if err != nil {
		return attempt, domain.Answer{}, err
	}
	answer.AttemptID = attempt.ID
	answer.AnsweredAt = now

	next := attempt
	next.Answers = make([]domain.Answer, len(attempt.Answers), len(attempt.Answers)+1)
	copy(next.Answers, attempt.Answers)
	next.Answers = append(next.Answers, answer)
	next.Score = score
	return next, answer, nil
}

// Answered reports whether questionID already has an answer in attempt.
func Answered(attempt domain.Attempt, questionID string) bool {
	for _, a := range attempt.Answers {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// Remaining counts bank questions without an answer.
func Remaining(bank *Bank, attempt domain.Attempt) int {
	n := 0
	for _, q := range bank.questions {
		if !Answered(attempt, q.ID) {
			n++
		}
	}
	return n
}

// Complete reports whether every bank question has been answered.
func Complete(bank *Bank, attempt domain.Attempt) bool {
	return Remaining(bank, attempt) == 0
}
