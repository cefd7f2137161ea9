package session

import (
	"testing"

	"github.com/mvoronov/mathmage/internal/problemgen"
)

func makeQuestions(n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		qs[i] = problemgen.Question{
			ID:            "q-" + string(rune('a'+i)),
			Operand1:      i + 1,
			Operand2:      1,
			Operation:     problemgen.OpAddition,
			CorrectAnswer: i + 2,
		}
	}
	return qs
}

func testConfig(n int) problemgen.SessionConfig {
	return problemgen.SessionConfig{
		Operations:    []problemgen.Operation{problemgen.OpAddition},
		Difficulty:    problemgen.DifficultyEasy,
		QuestionCount: n,
	}
}

func TestSubmit_CorrectFirstTry(t *testing.T) {
	s := New(testConfig(1), makeQuestions(1))

	out := s.Submit(2)

	if out.State != StateCorrect {
		t.Fatalf("state = %d, want StateCorrect", out.State)
	}
	if out.Record == nil {
		t.Fatal("expected a record at terminal transition")
	}
	if out.Record.WasRetried {
		t.Error("first-try correct should not be marked retried")
	}
	if !s.Done() {
		t.Error("session should be done")
	}
	if s.Streak != 1 || s.MaxStreak != 1 {
		t.Errorf("streak = %d, max = %d, want 1, 1", s.Streak, s.MaxStreak)
	}
}

func TestSubmit_WrongThenCorrect(t *testing.T) {
	s := New(testConfig(1), makeQuestions(1))

	out := s.Submit(99)
	if out.State != StateWrongFirst {
		t.Fatalf("state = %d, want StateWrongFirst", out.State)
	}
	if out.Record != nil {
		t.Fatal("no record expected before terminal transition")
	}

	// Same question re-presented.
	if q, ok := s.Current(); !ok || q.CorrectAnswer != 2 {
		t.Fatalf("current question changed after first wrong answer")
	}

	out = s.Submit(2)
	if out.State != StateCorrect {
		t.Fatalf("state = %d, want StateCorrect", out.State)
	}
	if !out.Record.Correct || !out.Record.WasRetried {
		t.Errorf("record = %+v, want correct and retried", out.Record)
	}
	if s.Streak != 1 {
		t.Errorf("retried-correct should extend the streak, got %d", s.Streak)
	}
}

func TestSubmit_WrongTwice(t *testing.T) {
	s := New(testConfig(1), makeQuestions(1))

	s.Submit(99)
	out := s.Submit(98)

	if out.State != StateWrongFinal {
		t.Fatalf("state = %d, want StateWrongFinal", out.State)
	}
	if out.Record.Correct {
		t.Error("record should be incorrect")
	}
	if !out.Record.WasRetried {
		t.Error("record should be marked retried")
	}
	if out.Record.UserAnswer != 98 {
		t.Errorf("record carries answer %d, want the final submission 98", out.Record.UserAnswer)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0 after final wrong", s.Streak)
	}
}

func TestSubmit_OneRecordPerQuestion(t *testing.T) {
	s := New(testConfig(3), makeQuestions(3))

	s.Submit(2)  // q1 correct
	s.Submit(99) // q2 wrong first
	s.Submit(3)  // q2 correct on retry
	s.Submit(99) // q3 wrong first
	s.Submit(99) // q3 wrong final

	if len(s.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(s.Records))
	}
	if !s.Done() {
		t.Error("session should be done")
	}
}

func TestStreak_MaxSurvivesLateReset(t *testing.T) {
	s := New(testConfig(5), makeQuestions(5))

	s.Submit(2) // correct
	s.Submit(3) // correct
	s.Submit(4) // correct, streak 3
	s.Submit(0)
	s.Submit(0) // q4 wrong final, streak resets
	s.Submit(6) // correct, streak 1

	if s.Streak != 1 {
		t.Errorf("live streak = %d, want 1", s.Streak)
	}
	if s.MaxStreak != 3 {
		t.Errorf("max streak = %d, want 3", s.MaxStreak)
	}
}

func TestSubmit_AfterEndPanics(t *testing.T) {
	s := New(testConfig(1), makeQuestions(1))
	s.Submit(2)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on submit after end")
		}
	}()
	s.Submit(2)
}
