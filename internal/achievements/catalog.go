// Package achievements defines the fixed achievement catalogue and the
// pure evaluator that determines which entries newly unlock.
package achievements

import (
	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
)

// Achievement pairs an identifier with its unlock predicate.
// latest is the just-completed session result, nil outside session end.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Check       func(p *profile.UserProfile, latest *profile.SessionResult) bool
}

// masteryAccuracy is the per-session accuracy bar for the single-operation
// mastery achievements (strictly greater than).
const masteryAccuracy = 0.8

// Catalog is the fixed, ordered achievement list. Evaluation and returned
// unlock order follow this order.
var Catalog = []Achievement{
	{
		ID:          "first_training",
		Name:        "First Lesson",
		Description: "Complete your first training",
		Icon:        "📖",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return len(p.History) >= 1
		},
	},
	{
		ID:          "five_trainings",
		Name:        "Diligent Student",
		Description: "Complete 5 trainings",
		Icon:        "📚",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return len(p.History) >= 5
		},
	},
	{
		ID:          "ten_trainings",
		Name:        "Keeper of Lore",
		Description: "Complete 10 trainings",
		Icon:        "🎓",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return len(p.History) >= 10
		},
	},
	{
		ID:          "perfect_session",
		Name:        "Flawless Spell",
		Description: "Answer every question correctly",
		Icon:        "💎",
		Check: func(_ *profile.UserProfile, latest *profile.SessionResult) bool {
			return latest != nil && latest.CorrectAnswers == latest.TotalQuestions
		},
	},
	{
		ID:          "streak_5",
		Name:        "Streak of 5",
		Description: "5 correct answers in a row",
		Icon:        "🔥",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.BestStreak >= 5
		},
	},
	{
		ID:          "streak_10",
		Name:        "Unstoppable Streak",
		Description: "10 correct answers in a row",
		Icon:        "⚡",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.BestStreak >= 10
		},
	},
	{
		ID:          "streak_20",
		Name:        "Great Mage",
		Description: "20 correct answers in a row",
		Icon:        "🌟",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.BestStreak >= 20
		},
	},
	{
		ID:          "stars_50",
		Name:        "50 Stars",
		Description: "Collect 50 magic stars",
		Icon:        "⭐",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.TotalStars >= 50
		},
	},
	{
		ID:          "stars_100",
		Name:        "100 Stars",
		Description: "Collect 100 magic stars",
		Icon:        "🌠",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.TotalStars >= 100
		},
	},
	{
		ID:          "stars_500",
		Name:        "Star Shower",
		Description: "Collect 500 magic stars",
		Icon:        "✨",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return p.Progress.TotalStars >= 500
		},
	},
	{
		ID:          "multiplication_master",
		Name:        "Master of Multiplication",
		Description: "5 multiplication trainings above 80% accuracy",
		Icon:        "✖️",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return singleOpMastery(p, problemgen.OpMultiplication)
		},
	},
	{
		ID:          "division_master",
		Name:        "Master of Division",
		Description: "5 division trainings above 80% accuracy",
		Icon:        "➗",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			return singleOpMastery(p, problemgen.OpDivision)
		},
	},
	{
		ID:          "hard_mode",
		Name:        "Brave Mage",
		Description: "Complete a training on a hard level",
		Icon:        "💪",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			for _, s := range p.History {
				if s.Config.Difficulty == problemgen.DifficultyHard ||
					s.Config.Difficulty == problemgen.DifficultyVeryHard {
					return true
				}
			}
			return false
		},
	},
	{
		ID:          "mixed_master",
		Name:        "All-Rounder",
		Description: "Complete a mixed training with 3 or more operations",
		Icon:        "🎯",
		Check: func(p *profile.UserProfile, _ *profile.SessionResult) bool {
			for _, s := range p.History {
				if len(s.Config.Operations) >= 3 {
					return true
				}
			}
			return false
		},
	},
}

// singleOpMastery counts historical sessions that drilled exactly the one
// operation with accuracy above the mastery bar.
func singleOpMastery(p *profile.UserProfile, op problemgen.Operation) bool {
	good := 0
	for _, s := range p.History {
		if len(s.Config.Operations) != 1 || s.Config.Operations[0] != op {
			continue
		}
		if s.Accuracy() > masteryAccuracy {
			good++
		}
	}
	return good >= 5
}

// Get returns the catalogue entry for an ID, or false if unknown.
func Get(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
