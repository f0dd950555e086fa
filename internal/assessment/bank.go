// Package assessment holds the quiz scoring and leaderboard ranking engine.
// Every function here is pure: callers own state and persistence.
package assessment

import (
	"fmt"

	"pathfinders-assessment/internal/domain"
)

// Bank is a validated, immutable question bank.
type Bank struct {
	id        string
	questions []domain.Question
	index     map[string]int
}

// NewBank validates questions and returns an immutable bank. Options without
// an ID receive their display label (A, B, C, ...).
func NewBank(id string, questions []domain.Question) (*Bank, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty bank id", domain.ErrInvalidBank)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: bank %s has no questions", domain.ErrInvalidBank, id)
	}

	b := &Bank{
		id:        id,
		questions: make([]domain.Question, 0, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: question without id", domain.ErrInvalidBank)
		}
		if _, dup := b.index[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question %s", domain.ErrInvalidBank, q.ID)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %s has no options", domain.ErrInvalidBank, q.ID)
		}

		options := make([]domain.Option, len(q.Options))
		seen := make(map[string]struct{}, len(q.Options))
		for i, opt := range q.Options {
			category, err := domain.ParseCategory(string(opt.Category))
			if err != nil {
				return nil, fmt.Errorf("question %s option %d: %w", q.ID, i, err)
			}
			if opt.Points < 0 {
				return nil, fmt.Errorf("question %s option %d: %w", q.ID, i, domain.ErrNegativePoints)
			}
			opt.Category = category
			if opt.ID == "" {
				opt.ID = Label(i)
			}
			if _, dup := seen[opt.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate option %s in question %s", domain.ErrInvalidBank, opt.ID, q.ID)
			}
			seen[opt.ID] = struct{}{}
			options[i] = opt
		}

		q.Options = options
		b.index[q.ID] = len(b.questions)
		b.questions = append(b.questions, q)
	}
	return b, nil
}

// Label returns the display label for the option at position i.
func Label(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%s%d", Label(i%26), i/26)
}

func (b *Bank) ID() string { return b.id }

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// Questions returns a copy of the ordered questions.
func (b *Bank) Questions() []domain.Question {
	out := make([]domain.Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = append([]domain.Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Question looks up a question by ID.
func (b *Bank) Question(id string) (domain.Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return domain.Question{}, false
	}
	q := b.questions[i]
	q.Options = append([]domain.Option(nil), q.Options...)
	return q, true
}

// Resolve maps a submission to the Answer it would record.
func (b *Bank) Resolve(submission domain.AnswerSubmission) (domain.Answer, error) {
	i, ok := b.index[submission.QuestionID]
	if !ok {
		return domain.Answer{}, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, submission.QuestionID)
	}
	for _, opt := range b.questions[i].Options {
		if opt.ID == submission.OptionID {
			return domain.Answer{
				QuestionID:   submission.QuestionID,
				OptionID:     opt.ID,
				Category:     opt.Category,
				PointsEarned: opt.Points,
			}, nil
		}
	}
	return domain.Answer{}, fmt.Errorf("%w: %s/%s", domain.ErrOptionNotFound, submission.QuestionID, submission.OptionID)
}

// Document returns the serializable form of the bank.
func (b *Bank) Document() domain.QuestionBank {
	return domain.QuestionBank{ID: b.id, Questions: b.Questions()}
}

// FromDocument validates a serialized bank.
func FromDocument(doc domain.QuestionBank) (*Bank, error) {
	return NewBank(doc.ID, doc.Questions)
}
