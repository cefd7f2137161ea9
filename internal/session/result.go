package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/progression"
)

// StarsPerStreakDivisor converts the session's best streak into bonus stars.
const StarsPerStreakDivisor = 3

// ProgressDelta is the progression update a completed session produces.
// The caller merges it into the stored profile.
type ProgressDelta struct {
	StarsEarned   int
	NewTotalStars int
	NewLevel      int
	NewBestStreak int
}

// BuildResult folds the session's answer records into a SessionResult.
// A retried-then-correct answer counts as correct; mistakes carry the final
// submitted answer for every question never answered correctly.
func BuildResult(s *State) profile.SessionResult {
	var correct, firstTry int
	var mistakes []profile.MistakeRecord

	for _, rec := range s.Records {
		if rec.Correct {
			correct++
			if !rec.WasRetried {
				firstTry++
			}
			continue
		}
		mistakes = append(mistakes, profile.MistakeRecord{
			Question:   rec.Question,
			UserAnswer: rec.UserAnswer,
			WasRetried: rec.WasRetried,
		})
	}

	var timeSpent *int64
	if s.Config.TimerEnabled {
		ms := time.Since(s.StartTime).Milliseconds()
		timeSpent = &ms
	}

	return profile.SessionResult{
		ID:                uuid.New().String(),
		Date:              time.Now().UTC(),
		Config:            s.Config,
		TotalQuestions:    len(s.Records),
		CorrectAnswers:    correct,
		CorrectOnFirstTry: firstTry,
		TimeSpentMs:       timeSpent,
		Mistakes:          mistakes,
	}
}

// StarsEarned computes the session's star award: one star per correct
// answer plus a bonus for the best streak run.
func StarsEarned(result profile.SessionResult, maxStreak int) int {
	return result.CorrectAnswers + maxStreak/StarsPerStreakDivisor
}

// Delta computes the progression update for a finished session against the
// learner's previous progress.
func Delta(prev profile.UserProgress, result profile.SessionResult, maxStreak int) ProgressDelta {
	stars := StarsEarned(result, maxStreak)
	newTotal := prev.TotalStars + stars

	best := prev.BestStreak
	if maxStreak > best {
		best = maxStreak
	}

	return ProgressDelta{
		StarsEarned:   stars,
		NewTotalStars: newTotal,
		NewLevel:      progression.LevelForStars(newTotal),
		NewBestStreak: best,
	}
}

// Apply merges the delta into a progress value. The streak counter ends
// every session at zero; the high-water mark lives in BestStreak.
func (d ProgressDelta) Apply(p profile.UserProgress) profile.UserProgress {
	p.TotalStars = d.NewTotalStars
	p.Level = d.NewLevel
	p.BestStreak = d.NewBestStreak
	p.CurrentStreak = 0
	return p
}
