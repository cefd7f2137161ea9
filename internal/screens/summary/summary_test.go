package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/router"
	sess "github.com/mvoronov/mathmage/internal/session"
)

func testScreen() *SummaryScreen {
	result := profile.SessionResult{
		ID: "s-1",
		Config: problemgen.SessionConfig{
			Operations:    []problemgen.Operation{problemgen.OpAddition},
			Difficulty:    problemgen.DifficultyMedium,
			QuestionCount: 10,
		},
		TotalQuestions:    10,
		CorrectAnswers:    8,
		CorrectOnFirstTry: 7,
	}
	delta := sess.ProgressDelta{
		StarsEarned:   9,
		NewTotalStars: 59,
		NewLevel:      2,
		NewBestStreak: 4,
	}
	return New(result, delta, []string{"first_training"})
}

func TestSummaryScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testScreen().View(80, 24)
	if view == "" {
		t.Error("expected a non-empty summary view")
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	s := testScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should leave the summary")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
