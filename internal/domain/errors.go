package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnswer is returned when a submission does not match the question bank.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrQuestionNotFound indicates a submitted question ID is not part of the bank.
	ErrQuestionNotFound = fmt.Errorf("%w: question not found", ErrInvalidAnswer)
	// ErrOptionNotFound indicates a submitted option ID is not part of the question.
	ErrOptionNotFound = fmt.Errorf("%w: option not found", ErrInvalidAnswer)
	// ErrDuplicateAnswer is returned when a question was already answered in the attempt.
	ErrDuplicateAnswer = fmt.Errorf("%w: question already answered", ErrInvalidAnswer)

	// ErrNoAnswersRecorded is returned when classification runs over empty totals.
	ErrNoAnswersRecorded = errors.New("no answers recorded")
	// ErrNegativePoints is returned for options or answers carrying negative points.
	ErrNegativePoints = errors.New("negative points")
	// ErrDuplicateParticipant is returned when a leaderboard holds two entries for one participant.
	ErrDuplicateParticipant = errors.New("duplicate participant in leaderboard")

	// ErrUnknownCategory indicates a category label outside the declared set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidBank indicates a question bank failed structural validation.
	ErrInvalidBank = errors.New("invalid question bank")
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrAttemptNotFound is returned when a participant answers before starting an attempt.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrProfileNotFound is returned when a participant has not completed the quiz.
	ErrProfileNotFound = errors.New("profile not found")
)
