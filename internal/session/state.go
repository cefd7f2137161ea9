package session

import (
	"fmt"
	"time"

	"github.com/mvoronov/mathmage/internal/problemgen"
)

// AnswerState is the per-question retry state.
//
// Answering → Correct                     (terminal)
// Answering → WrongFirst → Correct        (terminal, retried)
// Answering → WrongFirst → WrongFinal     (terminal, retried)
type AnswerState int

const (
	StateAnswering AnswerState = iota
	StateWrongFirst
	StateCorrect
	StateWrongFinal
)

// Terminal reports whether the question is finished.
func (s AnswerState) Terminal() bool {
	return s == StateCorrect || s == StateWrongFinal
}

// AnswerRecord is produced exactly once per question, at the terminal
// transition of its retry state machine.
type AnswerRecord struct {
	Question   problemgen.Question
	UserAnswer int
	Correct    bool
	WasRetried bool
}

// State tracks one running session: the question sequence, the per-question
// retry state, the produced answer records and the live streak counter.
type State struct {
	Config    problemgen.SessionConfig
	Questions []problemgen.Question
	Records   []AnswerRecord
	StartTime time.Time

	// Streak counts consecutive finally-correct answers; it resets to 0
	// whenever a question ends in WrongFinal. MaxStreak is its high-water
	// mark, the bestStreak candidate for this session.
	Streak    int
	MaxStreak int

	index       int
	answerState AnswerState
}

// New starts a session over the given questions.
func New(cfg problemgen.SessionConfig, questions []problemgen.Question) *State {
	return &State{
		Config:      cfg,
		Questions:   questions,
		Records:     make([]AnswerRecord, 0, len(questions)),
		StartTime:   time.Now(),
		answerState: StateAnswering,
	}
}

// Current returns the active question, or false when the session is done.
func (s *State) Current() (problemgen.Question, bool) {
	if s.index >= len(s.Questions) {
		return problemgen.Question{}, false
	}
	return s.Questions[s.index], true
}

// Done reports whether every question has reached a terminal state.
func (s *State) Done() bool {
	return s.index >= len(s.Questions)
}

// AnswerState returns the retry state of the current question.
func (s *State) AnswerState() AnswerState {
	return s.answerState
}

// Outcome describes the result of one submission.
type Outcome struct {
	State AnswerState
	// Record is set only on a terminal transition.
	Record *AnswerRecord
}

// Submit feeds one answer into the retry state machine.
//
// A wrong first submission re-presents the same question; a second wrong
// submission (or a correct one) ends the question and produces its record.
// Calling Submit after the session is done is a caller bug.
func (s *State) Submit(answer int) Outcome {
	q, ok := s.Current()
	if !ok {
		panic("session: submit after session end")
	}

	correct := problemgen.CheckAnswer(q, answer)

	switch s.answerState {
	case StateAnswering:
		if !correct {
			s.answerState = StateWrongFirst
			return Outcome{State: StateWrongFirst}
		}
		return s.finish(q, answer, true, false)

	case StateWrongFirst:
		if correct {
			return s.finish(q, answer, true, true)
		}
		return s.finish(q, answer, false, true)

	default:
		panic(fmt.Sprintf("session: submit in terminal state %d", s.answerState))
	}
}

// finish records the terminal transition, updates the streak and advances
// to the next question.
func (s *State) finish(q problemgen.Question, answer int, correct, retried bool) Outcome {
	rec := AnswerRecord{
		Question:   q,
		UserAnswer: answer,
		Correct:    correct,
		WasRetried: retried,
	}
	s.Records = append(s.Records, rec)

	if correct {
		s.Streak++
		if s.Streak > s.MaxStreak {
			s.MaxStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	state := StateCorrect
	if !correct {
		state = StateWrongFinal
	}

	s.index++
	s.answerState = StateAnswering

	return Outcome{State: state, Record: &rec}
}
