package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/domain"
	"pathfinders-assessment/internal/logging"
)

// AssessmentService contains the quiz and leaderboard use cases.
type AssessmentService struct {
	banks    BankRepository
	attempts AttemptRepository
	answers  AnswerLog
	profiles ProfileRepository
	board    LeaderboardRepository
	advisor  CareerAdvisor

	rules       assessment.BadgeRules
	goals       []int
	defaultBank string
	hub   *Hub
	locks *participantLocks
	now   func() time.Time
	newID func() string
}

// Stores groups the persistence collaborators of the service.
type Stores struct {
	Banks       BankRepository
	Attempts    AttemptRepository
	Answers     AnswerLog
	Profiles    ProfileRepository
	Leaderboard LeaderboardRepository
}

// Option customizes an AssessmentService.
type Option func(*AssessmentService)

// WithBadgeRules overrides the default badge table.
func WithBadgeRules(rules assessment.BadgeRules) Option {
	return func(s *AssessmentService) { s.rules = rules }
}

// WithGoals sets the leaderboard milestone ladder.
func WithGoals(goals []int) Option {
	return func(s *AssessmentService) { s.goals = append([]int(nil), goals...) }
}

// WithCareerAdvisor enables career interest suggestions at completion.
func WithCareerAdvisor(advisor CareerAdvisor) Option {
	return func(s *AssessmentService) { s.advisor = advisor }
}

// WithDefaultBank sets the bank used when a client does not name one.
func WithDefaultBank(bankID string) Option {
	return func(s *AssessmentService) {
		if bankID != "" {
			s.defaultBank = bankID
		}
	}
}

// WithClock is test-only for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *AssessmentService) { s.now = now }
}

func NewAssessmentService(stores Stores, opts ...Option) *AssessmentService {
	s := &AssessmentService{
		banks:    stores.Banks,
		attempts: stores.Attempts,
		answers:  stores.Answers,
		profiles: stores.Profiles,
		board:    stores.Leaderboard,
		rules:       assessment.DefaultBadgeRules(),
		goals:       []int{1000},
		defaultBank: assessment.DefaultBankID,
		hub:         NewHub(),
		locks:       newParticipantLocks(),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultBankID returns the bank used when a client does not name one.
func (s *AssessmentService) DefaultBankID() string {
	return s.defaultBank
}

// Bank returns the question bank participants answer.
func (s *AssessmentService) Bank(ctx context.Context, bankID string) (*assessment.Bank, error) {
	return s.banks.GetBank(ctx, bankID)
}

// Start creates an attempt for the participant, or resumes the one in progress
// for the same bank. A participant with a completed profile may start again.
// An answered-out attempt whose completion failed is completed first.
func (s *AssessmentService) Start(ctx context.Context, bankID, participantID, displayName string) (domain.Attempt, error) {
	// Users cannot start unknown banks.
	bank, err := s.banks.GetBank(ctx, bankID)
	if err != nil {
		return domain.Attempt{}, err
	}

	unlock := s.locks.lock(participantID)
	defer unlock()

	existing, ok, err := s.attempts.Get(ctx, participantID)
	if err != nil {
		return domain.Attempt{}, err
	}
	if ok && existing.BankID == bankID && assessment.Complete(bank, existing) {
		if _, err := s.complete(ctx, bank, existing); err != nil {
			return domain.Attempt{}, err
		}
		ok = false
	}
	if ok && existing.BankID == bankID {
		if displayName != "" && existing.DisplayName != displayName {
			existing.DisplayName = displayName
			if err := s.attempts.Save(ctx, existing); err != nil {
				return domain.Attempt{}, err
			}
		}
		return existing, nil
	}

	attempt := assessment.NewAttempt(s.newID(), bankID, participantID, displayName, s.now())
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return domain.Attempt{}, err
	}
	logging.WithContext(ctx).WithField("participant", participantID).Info("attempt started")
	return attempt, nil
}

// SubmitAnswer records one answer. On the final question the profile is
// derived, stored and pushed to the leaderboard.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, bankID, participantID string, submission domain.AnswerSubmission) (domain.AnswerResult, error) {
	bank, err := s.banks.GetBank(ctx, bankID)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	unlock := s.locks.lock(participantID)
	defer unlock()

	attempt, ok, err := s.attempts.Get(ctx, participantID)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	if !ok || attempt.BankID != bankID {
		return domain.AnswerResult{}, domain.ErrAttemptNotFound
	}

	// Every question is answered but completion failed earlier: finish it now.
	if assessment.Complete(bank, attempt) {
		return s.finish(ctx, bank, attempt, attempt.Answers[len(attempt.Answers)-1])
	}

	next, answer, err := assessment.Record(bank, attempt, submission, s.now())
	if err != nil {
		return domain.AnswerResult{}, err
	}
	answer.ID = answerID(attempt.ID, answer.QuestionID)
	next.Answers[len(next.Answers)-1].ID = answer.ID

	// The log is idempotent per attempt and question, so a failed attempt
	// save can be retried with the same submission.
	if err := s.answers.Create(ctx, participantID, answer); err != nil {
		return domain.AnswerResult{}, err
	}
	if err := s.attempts.Save(ctx, next); err != nil {
		return domain.AnswerResult{}, err
	}

	if remaining := assessment.Remaining(bank, next); remaining > 0 {
		return domain.AnswerResult{Answer: answer, Score: next.Score, Remaining: remaining}, nil
	}
	return s.finish(ctx, bank, next, answer)
}

func (s *AssessmentService) finish(ctx context.Context, bank *assessment.Bank, attempt domain.Attempt, last domain.Answer) (domain.AnswerResult, error) {
	profile, err := s.complete(ctx, bank, attempt)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	return domain.AnswerResult{
		Answer:    last,
		Score:     attempt.Score,
		Completed: true,
		Profile:   &profile,
	}, nil
}

// answerID is stable per attempt and question so retried writes collapse.
func answerID(attemptID, questionID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(attemptID+"/"+questionID)).String()
}

// complete derives and stores the profile and leaderboard entry. The attempt
// is dropped only after both writes succeed, so a failure can be retried.
func (s *AssessmentService) complete(ctx context.Context, bank *assessment.Bank, attempt domain.Attempt) (domain.Profile, error) {
	log := logging.WithContext(ctx).WithField("participant", attempt.ParticipantID)

	profile, err := assessment.BuildProfile(bank, attempt, s.rules, s.now())
	if err != nil {
		return domain.Profile{}, err
	}
	if s.advisor != nil {
		interests, err := s.advisor.Suggest(ctx, profile.DominantCategory, profile.CategoryTotals)
		if err != nil {
			log.WithError(err).Warn("career suggestions unavailable")
		} else {
			profile.CareerInterests = interests
		}
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	if err := s.board.Upsert(ctx, assessment.EntryFromProfile(profile)); err != nil {
		return domain.Profile{}, err
	}
	if err := s.attempts.Delete(ctx, attempt.ParticipantID); err != nil {
		log.WithError(err).Warn("failed to drop finished attempt")
	}

	log.WithFields(map[string]interface{}{
		"points":   profile.TotalPoints,
		"category": profile.DominantCategory,
		"badges":   profile.Badges,
	}).Info("quiz completed")

	if lb, err := s.snapshot(ctx); err == nil {
		s.hub.Publish(lb)
	} else {
		log.WithError(err).Error("leaderboard rebuild failed")
	}
	return profile, nil
}

// Attempt returns the participant's attempt in progress.
func (s *AssessmentService) Attempt(ctx context.Context, participantID string) (domain.Attempt, error) {
	attempt, ok, err := s.attempts.Get(ctx, participantID)
	if err != nil {
		return domain.Attempt{}, err
	}
	if !ok {
		return domain.Attempt{}, domain.ErrAttemptNotFound
	}
	return attempt, nil
}

// Answers returns the recorded answer history of a participant.
func (s *AssessmentService) Answers(ctx context.Context, participantID string) ([]domain.Answer, error) {
	return s.answers.List(ctx, participantID)
}

// Profile returns the participant's latest completion profile.
func (s *AssessmentService) Profile(ctx context.Context, participantID string) (domain.Profile, error) {
	return s.profiles.Get(ctx, participantID)
}

// Leaderboard returns the ranked board as seen by viewerID, which may be empty.
func (s *AssessmentService) Leaderboard(ctx context.Context, viewerID string) (domain.LeaderboardView, error) {
	lb, err := s.snapshot(ctx)
	if err != nil {
		return domain.LeaderboardView{}, err
	}
	return s.View(lb, viewerID), nil
}

// View decorates a ranked snapshot for one viewer.
func (s *AssessmentService) View(lb domain.Leaderboard, viewerID string) domain.LeaderboardView {
	entries := assessment.MarkCurrent(lb.Entries, viewerID)
	view := domain.LeaderboardView{
		Leaderboard: domain.Leaderboard{Entries: entries, UpdatedAt: lb.UpdatedAt},
		Podium:      assessment.Podium(entries),
	}

	points := 0
	if current, ok := assessment.Find(entries, viewerID); ok {
		view.Current = &current
		points = current.TotalPoints
	}
	if viewerID != "" {
		if goal, ok := assessment.NextGoal(points, s.goals); ok {
			view.NextGoal = &goal
		}
	}
	return view
}

// Subscribe returns a channel that receives leaderboard updates.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *AssessmentService) Subscribe(ctx context.Context) (<-chan domain.Leaderboard, func(), error) {
	ch, cancel := s.hub.Subscribe()
	if s.hub.latestMissing() {
		lb, err := s.snapshot(ctx)
		if err != nil {
			cancel()
			return nil, nil, err
		}
		s.hub.Publish(lb)
	}
	return ch, cancel, nil
}

func (s *AssessmentService) snapshot(ctx context.Context) (domain.Leaderboard, error) {
	stored, err := s.board.List(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	entries, err := assessment.Rebuild(stored, nil)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: s.now()}, nil
}

// IsNotFound reports whether err means the requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrBankNotFound) ||
		errors.Is(err, domain.ErrAttemptNotFound) ||
		errors.Is(err, domain.ErrProfileNotFound)
}
