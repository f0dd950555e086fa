package domain

import "time"

// Option represents a possible answer for a question.
type Option struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Points   int      `json:"points" yaml:"points"`
	Category Category `json:"category" yaml:"category"`
}

// Question is a multiple-choice prompt. Option order is display order only.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []Option `json:"options" yaml:"options"`
}

// AnswerSubmission models the selection sent by clients.
type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	OptionID   string `json:"optionId"`
}

// Answer is recorded once per question and never changes afterwards.
type Answer struct {
	ID           string    `json:"id"`
	AttemptID    string    `json:"attemptId"`
	QuestionID   string    `json:"questionId"`
	OptionID     string    `json:"optionId"`
	Category     Category  `json:"category"`
	PointsEarned int       `json:"pointsEarned"`
	AnsweredAt   time.Time `json:"answeredAt"`
}

// ScoreState is the running total of an attempt.
type ScoreState struct {
	TotalPoints    int              `json:"totalPoints"`
	CategoryTotals map[Category]int `json:"categoryTotals"`
}

// Attempt is a participant's in-progress pass through a question bank.
type Attempt struct {
	ID            string     `json:"id"`
	ParticipantID string     `json:"participantId"`
	DisplayName   string     `json:"displayName"`
	BankID        string     `json:"bankId"`
	Answers       []Answer   `json:"answers"`
	Score         ScoreState `json:"score"`
	StartedAt     time.Time  `json:"startedAt"`
}

// Profile is derived once at quiz completion. A retake produces a new Profile.
type Profile struct {
	ParticipantID    string           `json:"participantId"`
	DisplayName      string           `json:"displayName"`
	BankID           string           `json:"bankId"`
	TotalPoints      int              `json:"totalPoints"`
	DominantCategory Category         `json:"dominantCategory"`
	CategoryTotals   map[Category]int `json:"categoryTotals"`
	Badges           []string         `json:"badges"`
	CareerInterests  []string         `json:"careerInterests,omitempty"`
	CompletedAt      time.Time        `json:"completedAt"`
}

// LeaderboardEntry is one participant's standing. Rank is always derived by
// the ranker and never stored as authoritative.
type LeaderboardEntry struct {
	ParticipantID    string    `json:"participantId"`
	DisplayName      string    `json:"displayName"`
	TotalPoints      int       `json:"totalPoints"`
	Rank             int       `json:"rank"`
	IsCurrentUser    bool      `json:"isCurrentUser"`
	DominantCategory Category  `json:"dominantCategory,omitempty"`
	Badges           []string  `json:"badges,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Leaderboard captures the ordered standings.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// LeaderboardView is the leaderboard as seen by one viewer.
type LeaderboardView struct {
	Leaderboard
	Podium   []LeaderboardEntry `json:"podium"`
	Current  *LeaderboardEntry  `json:"current,omitempty"`
	NextGoal *int               `json:"nextGoal,omitempty"`
}

// AnswerResult summarizes the outcome of a submission for a single participant.
type AnswerResult struct {
	Answer    Answer     `json:"answer"`
	Score     ScoreState `json:"score"`
	Remaining int        `json:"remaining"`
	Completed bool       `json:"completed"`
	Profile   *Profile   `json:"profile,omitempty"`
}

// QuestionBank is the serializable form of a question bank.
type QuestionBank struct {
	ID        string     `json:"id" yaml:"id"`
	Questions []Question `json:"questions" yaml:"questions"`
}
