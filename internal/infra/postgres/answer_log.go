package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"pathfinders-assessment/internal/domain"
)

type answerRow struct {
	bun.BaseModel `bun:"table:quiz_answers,alias:qa"`

	ID            string          `bun:"id,pk"`
	AttemptID     string          `bun:"attempt_id,notnull"`
	ParticipantID string          `bun:"participant_id,notnull"`
	QuestionID    string          `bun:"question_id,notnull"`
	OptionID      string          `bun:"option_id,notnull"`
	Category      domain.Category `bun:"category,notnull"`
	PointsEarned  int             `bun:"points_earned,notnull"`
	AnsweredAt    time.Time       `bun:"answered_at,notnull"`
}

// AnswerLog is the durable audit trail of recorded answers. A repeated
// write for the same attempt and question is ignored.
type AnswerLog struct {
	db *bun.DB
}

func NewAnswerLog(db *bun.DB) *AnswerLog {
	return &AnswerLog{db: db}
}

func (l *AnswerLog) Create(ctx context.Context, participantID string, answer domain.Answer) error {
	row := answerRow{
		ID:            answer.ID,
		AttemptID:     answer.AttemptID,
		ParticipantID: participantID,
		QuestionID:    answer.QuestionID,
		OptionID:      answer.OptionID,
		Category:      answer.Category,
		PointsEarned:  answer.PointsEarned,
		AnsweredAt:    answer.AnsweredAt,
	}
	if _, err := l.insertQuery(&row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateAnswer, answer.QuestionID)
		}
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (l *AnswerLog) insertQuery(row *answerRow) *bun.InsertQuery {
	return l.db.NewInsert().
		Model(row).
		On("CONFLICT (attempt_id, question_id) DO NOTHING")
}

func (l *AnswerLog) List(ctx context.Context, participantID string) ([]domain.Answer, error) {
	var rows []answerRow
	err := l.db.NewSelect().
		Model(&rows).
		Where("participant_id = ?", participantID).
		Order("answered_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	answers := make([]domain.Answer, 0, len(rows))
	for _, r := range rows {
		answers = append(answers, domain.Answer{
			ID:           r.ID,
			AttemptID:    r.AttemptID,
			QuestionID:   r.QuestionID,
			OptionID:     r.OptionID,
			Category:     r.Category,
			PointsEarned: r.PointsEarned,
			AnsweredAt:   r.AnsweredAt,
		})
	}
	return answers, nil
}
