package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/router"
)

func newTestSetup() *SetupScreen {
	return New(nil, profile.New("Test"))
}

func press(s *SetupScreen, code rune) tea.Cmd {
	msg := tea.KeyPressMsg{Code: code}
	if code < 0x80 && code >= ' ' {
		msg.Text = string(code)
	}
	_, cmd := s.Update(msg)
	return cmd
}

func TestDefaultConfig(t *testing.T) {
	s := newTestSetup()
	cfg := s.config()

	if len(cfg.Operations) != 1 || cfg.Operations[0] != problemgen.OpAddition {
		t.Errorf("default operations = %v, want [addition]", cfg.Operations)
	}
	if cfg.Difficulty != problemgen.DifficultyEasy {
		t.Errorf("default difficulty = %q, want easy", cfg.Difficulty)
	}
	if cfg.QuestionCount != 10 {
		t.Errorf("default question count = %d, want 10", cfg.QuestionCount)
	}
	if cfg.SpecificNumber != nil {
		t.Error("default config should have no practice number")
	}
	if cfg.TimerEnabled {
		t.Error("timer should default to off")
	}
}

func TestToggleOperations(t *testing.T) {
	s := newTestSetup()

	// Focus starts on addition; toggle it off, enable subtraction.
	press(s, ' ')
	press(s, 'j')
	press(s, ' ')

	cfg := s.config()
	if len(cfg.Operations) != 1 || cfg.Operations[0] != problemgen.OpSubtraction {
		t.Errorf("operations = %v, want [subtraction]", cfg.Operations)
	}
}

func TestStartRequiresAnOperation(t *testing.T) {
	s := newTestSetup()

	press(s, ' ') // turn addition off, leaving nothing selected
	for i := 0; i < rowTotal; i++ {
		press(s, 'j')
	}
	if s.focus != rowStart {
		t.Fatalf("focus = %d, want start row %d", s.focus, rowStart)
	}

	cmd := press(s, tea.KeyEnter)
	if cmd != nil {
		t.Error("start with no operations should not push a screen")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestPracticeNumberOnlyForSingleMultiplicationOrDivision(t *testing.T) {
	s := newTestSetup()

	if s.numberEligible() {
		t.Error("addition alone should not offer a practice number")
	}

	// Switch to multiplication only.
	press(s, ' ') // addition off
	press(s, 'j') // subtraction
	press(s, 'j') // multiplication
	press(s, ' ') // multiplication on

	if !s.numberEligible() {
		t.Fatal("single multiplication should offer a practice number")
	}

	// Walk down to the number row and pick 7.
	for s.focus != rowNumber {
		press(s, 'j')
	}
	for i := 0; i < 7; i++ {
		press(s, 'l')
	}

	cfg := s.config()
	if cfg.SpecificNumber == nil || *cfg.SpecificNumber != 7 {
		t.Fatalf("SpecificNumber = %v, want 7", cfg.SpecificNumber)
	}

	// Adding a second operation drops the number again.
	for s.focus != rowOpsStart {
		press(s, 'k')
	}
	press(s, ' ')
	if s.numberEligible() {
		t.Error("two operations should not offer a practice number")
	}
	if s.config().SpecificNumber != nil {
		t.Error("practice number should reset when no longer eligible")
	}
}

func TestDifficultyAndCountCycle(t *testing.T) {
	s := newTestSetup()

	for s.focus != rowDifficulty {
		press(s, 'j')
	}
	press(s, 'l')
	if got := s.config().Difficulty; got != problemgen.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", got)
	}
	press(s, 'h')
	press(s, 'h')
	if got := s.config().Difficulty; got != problemgen.DifficultyVeryHard {
		t.Errorf("difficulty should wrap backwards to very_hard, got %q", got)
	}

	press(s, 'j') // count row
	press(s, 'l')
	if got := s.config().QuestionCount; got != 15 {
		t.Errorf("question count = %d, want 15", got)
	}
}

func TestStartPushesSessionScreen(t *testing.T) {
	s := newTestSetup()

	for i := 0; i < rowTotal; i++ {
		press(s, 'j')
	}
	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg with the session screen")
	}
}

func TestEscPops(t *testing.T) {
	s := newTestSetup()
	cmd := press(s, tea.KeyEscape)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
