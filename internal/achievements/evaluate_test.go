package achievements

import (
	"testing"

	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
)

func sessionWith(ops []problemgen.Operation, d problemgen.Difficulty, total, correct int) profile.SessionResult {
	return profile.SessionResult{
		Config: problemgen.SessionConfig{
			Operations:    ops,
			Difficulty:    d,
			QuestionCount: total,
		},
		TotalQuestions: total,
		CorrectAnswers: correct,
	}
}

func TestUnlockedNow_FirstTraining(t *testing.T) {
	p := profile.New("maya")
	result := sessionWith([]problemgen.Operation{problemgen.OpAddition}, problemgen.DifficultyEasy, 5, 5)
	p.History = append(p.History, result)

	got := UnlockedNow(p, &result)

	want := map[string]bool{"first_training": true, "perfect_session": true}
	if len(got) != len(want) {
		t.Fatalf("UnlockedNow = %v, want %v", got, want)
	}
	for _, id := range got {
		if !want[id] {
			t.Errorf("unexpected unlock %q", id)
		}
	}
}

func TestUnlockedNow_Idempotent(t *testing.T) {
	p := profile.New("maya")
	result := sessionWith([]problemgen.Operation{problemgen.OpAddition}, problemgen.DifficultyEasy, 5, 3)
	p.History = append(p.History, result)

	first := UnlockedNow(p, &result)
	second := UnlockedNow(p, &result)

	if len(first) != len(second) {
		t.Fatalf("evaluator not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("evaluator not stable: %v vs %v", first, second)
		}
	}
}

func TestUnlockedNow_MergedIDsNeverReturnAgain(t *testing.T) {
	p := profile.New("maya")
	result := sessionWith([]problemgen.Operation{problemgen.OpAddition}, problemgen.DifficultyEasy, 5, 5)
	p.History = append(p.History, result)

	first := UnlockedNow(p, &result)
	p.Progress.Achievements = append(p.Progress.Achievements, first...)

	second := UnlockedNow(p, &result)
	if len(second) != 0 {
		t.Errorf("merged IDs returned again: %v", second)
	}
}

func TestUnlockedNow_StreakThreshold(t *testing.T) {
	p := profile.New("maya")
	p.Progress.BestStreak = 5
	result := sessionWith([]problemgen.Operation{problemgen.OpAddition}, problemgen.DifficultyEasy, 5, 3)
	p.History = append(p.History, result)

	got := UnlockedNow(p, &result)

	found := false
	for _, id := range got {
		if id == "streak_5" {
			found = true
		}
		if id == "streak_10" || id == "streak_20" {
			t.Errorf("unexpected unlock %q at best streak 5", id)
		}
	}
	if !found {
		t.Error("streak_5 should unlock at best streak 5")
	}
}

func TestUnlockedNow_StarThresholds(t *testing.T) {
	p := profile.New("maya")
	p.Progress.TotalStars = 120

	got := UnlockedNow(p, nil)

	want := []string{"stars_50", "stars_100"}
	if len(got) != len(want) {
		t.Fatalf("UnlockedNow = %v, want %v", got, want)
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("got[%d] = %q, want %q (catalogue order)", i, got[i], id)
		}
	}
}

func TestUnlockedNow_MultiplicationMastery(t *testing.T) {
	p := profile.New("maya")
	mult := []problemgen.Operation{problemgen.OpMultiplication}

	// Four good sessions: not yet.
	for i := 0; i < 4; i++ {
		p.History = append(p.History, sessionWith(mult, problemgen.DifficultyEasy, 10, 9))
	}
	for _, id := range UnlockedNow(p, nil) {
		if id == "multiplication_master" {
			t.Fatal("mastery unlocked after 4 sessions")
		}
	}

	// A session at exactly 80% does not count (strictly greater).
	p.History = append(p.History, sessionWith(mult, problemgen.DifficultyEasy, 10, 8))
	for _, id := range UnlockedNow(p, nil) {
		if id == "multiplication_master" {
			t.Fatal("80% session counted toward mastery")
		}
	}

	// A mixed session does not count either.
	p.History = append(p.History, sessionWith(
		[]problemgen.Operation{problemgen.OpMultiplication, problemgen.OpAddition},
		problemgen.DifficultyEasy, 10, 10))
	// Fifth good single-op session unlocks.
	p.History = append(p.History, sessionWith(mult, problemgen.DifficultyEasy, 10, 9))

	found := false
	for _, id := range UnlockedNow(p, nil) {
		if id == "multiplication_master" {
			found = true
		}
		if id == "division_master" {
			t.Error("division mastery unlocked by multiplication sessions")
		}
	}
	if !found {
		t.Error("multiplication_master should unlock after 5 good sessions")
	}
}

func TestUnlockedNow_HardModeAndMixed(t *testing.T) {
	p := profile.New("maya")
	p.History = append(p.History, sessionWith(
		[]problemgen.Operation{problemgen.OpAddition, problemgen.OpSubtraction, problemgen.OpDivision},
		problemgen.DifficultyVeryHard, 10, 4))

	got := UnlockedNow(p, nil)

	foundHard, foundMixed := false, false
	for _, id := range got {
		switch id {
		case "hard_mode":
			foundHard = true
		case "mixed_master":
			foundMixed = true
		}
	}
	if !foundHard {
		t.Error("hard_mode should unlock for a very_hard session")
	}
	if !foundMixed {
		t.Error("mixed_master should unlock for a 3-operation session")
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Check == nil {
			t.Errorf("achievement %q has no predicate", a.ID)
		}
	}
}

func TestGet(t *testing.T) {
	if a, ok := Get("perfect_session"); !ok || a.ID != "perfect_session" {
		t.Error("Get(perfect_session) failed")
	}
	if _, ok := Get("nope"); ok {
		t.Error("Get(nope) should miss")
	}
}
