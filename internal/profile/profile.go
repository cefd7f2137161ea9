// Package profile holds the persisted per-learner aggregate: settings,
// progression and session history, keyed by profile name.
package profile

import (
	"time"

	"github.com/mvoronov/mathmage/internal/problemgen"
)

// InputMode selects how answers are entered during a session.
type InputMode string

const (
	InputKeyboard InputMode = "keyboard"
	InputChoices  InputMode = "choices"
)

// UserSettings are per-profile preferences.
type UserSettings struct {
	InputMode       InputMode `json:"inputMode"`
	SoundEnabled    bool      `json:"soundEnabled"`
	MusicEnabled    bool      `json:"musicEnabled"`
	NegativeNumbers bool      `json:"negativeNumbers"`
}

// UserProgress is the cumulative progression state.
// TotalStars and BestStreak never decrease; Achievements never shrinks.
type UserProgress struct {
	TotalStars    int      `json:"totalStars"`
	Level         int      `json:"level"`
	Achievements  []string `json:"achievements"`
	CurrentStreak int      `json:"currentStreak"`
	BestStreak    int      `json:"bestStreak"`
}

// HasAchievement reports whether the achievement ID is already unlocked.
func (p UserProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// MistakeRecord is one finally-wrong question in a session result.
type MistakeRecord struct {
	Question   problemgen.Question `json:"question"`
	UserAnswer int                 `json:"userAnswer"`
	WasRetried bool                `json:"wasRetried"`
}

// SessionResult is the persisted outcome of one completed session.
// Immutable once created.
type SessionResult struct {
	ID                string                   `json:"id"`
	Date              time.Time                `json:"date"`
	Config            problemgen.SessionConfig `json:"config"`
	TotalQuestions    int                      `json:"totalQuestions"`
	CorrectAnswers    int                      `json:"correctAnswers"`
	CorrectOnFirstTry int                      `json:"correctOnFirstTry"`
	TimeSpentMs       *int64                   `json:"timeSpent"`
	Mistakes          []MistakeRecord          `json:"mistakes"`
}

// Accuracy returns the fraction of questions answered correctly, 0 for an
// empty session.
func (r SessionResult) Accuracy() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}

// UserProfile is the stored aggregate for one learner.
type UserProfile struct {
	Name         string          `json:"name"`
	Settings     UserSettings    `json:"settings"`
	Progress     UserProgress    `json:"progress"`
	History      []SessionResult `json:"history"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastActiveAt time.Time       `json:"lastActiveAt"`
}

// New creates a profile with default settings and empty progress.
func New(name string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		Name: name,
		Settings: UserSettings{
			InputMode:       InputChoices,
			SoundEnabled:    true,
			MusicEnabled:    true,
			NegativeNumbers: false,
		},
		Progress: UserProgress{
			Level:        1,
			Achievements: []string{},
		},
		History:      []SessionResult{},
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

// Touch updates the last-active timestamp.
func (p *UserProfile) Touch() {
	p.LastActiveAt = time.Now().UTC()
}
