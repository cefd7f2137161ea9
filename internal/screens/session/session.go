// Package session implements the active practice screen: it presents the
// generated questions, runs the one-retry answer protocol and persists the
// finished session into the learner's profile.
package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/achievements"
	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/screens/summary"
	sess "github.com/mvoronov/mathmage/internal/session"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/components"
	"github.com/mvoronov/mathmage/internal/ui/layout"
)

type phase int

const (
	phaseActive phase = iota
	phaseFeedback
	phaseQuitConfirm
)

type feedbackKind int

const (
	feedbackRetry feedbackKind = iota
	feedbackCorrect
	feedbackWrong
)

type timerTickMsg time.Time

type sessionSavedMsg struct {
	result   profile.SessionResult
	delta    sess.ProgressDelta
	unlocked []string
	err      error
}

// SessionScreen runs one practice session.
type SessionScreen struct {
	store   store.Store
	profile *profile.UserProfile

	gen     *problemgen.Generator
	state   *sess.State
	choices components.MultiChoice
	input   components.TextInput

	useChoices bool
	phase      phase
	feedback   feedbackKind
	elapsed    time.Duration
	errMsg     string

	// answered is the question the feedback view talks about; the state
	// machine has already advanced past it by then.
	answered problemgen.Question
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen, generating the full question sequence
// up front.
func New(st store.Store, p *profile.UserProfile, cfg problemgen.SessionConfig) *SessionScreen {
	gen := problemgen.NewGenerator(problemgen.NewRand())
	questions := gen.GenerateSession(cfg, p.Settings.NegativeNumbers)

	s := &SessionScreen{
		store:      st,
		profile:    p,
		gen:        gen,
		state:      sess.New(cfg, questions),
		input:      components.NewTextInput("Your answer...", true, 8),
		useChoices: p.Settings.InputMode == profile.InputChoices,
	}
	s.presentCurrent()
	return s
}

// presentCurrent prepares the input widgets for the active question.
func (s *SessionScreen) presentCurrent() {
	q, ok := s.state.Current()
	if !ok {
		return
	}
	if s.useChoices {
		opts := s.gen.Choices(q.CorrectAnswer, q.Difficulty)
		s.choices = components.NewMultiChoice(opts)
	}
	s.input.Reset()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

func (s *SessionScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.state.Config.TimerEnabled {
		cmds = append(cmds, tickTimer())
	}
	return tea.Batch(cmds...)
}

func tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		if s.useChoices {
			return []layout.KeyHint{
				{Key: "1-6", Description: "Pick"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Leave"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.state.Done() {
			return s, nil
		}
		s.elapsed += time.Second
		return s, tickTimer()

	case sessionSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		next := summary.New(msg.result, msg.delta, msg.unlocked)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseActive && !s.useChoices {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseQuitConfirm:
		switch msg.String() {
		case "y", "Y", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseActive
		}
		return s, nil

	case phaseFeedback:
		return s.advance()
	}

	if msg.String() == "esc" {
		s.phase = phaseQuitConfirm
		return s, nil
	}

	if s.useChoices {
		var submitted bool
		s.choices, submitted = s.choices.Update(msg)
		if submitted {
			return s.submit(s.choices.Value())
		}
		return s, nil
	}

	if msg.String() == "enter" {
		answer, err := s.input.NumericValue()
		if err != nil {
			return s, nil
		}
		return s.submit(answer)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit runs one answer through the retry protocol.
func (s *SessionScreen) submit(answer int) (screen.Screen, tea.Cmd) {
	s.answered, _ = s.state.Current()
	outcome := s.state.Submit(answer)

	switch outcome.State {
	case sess.StateWrongFirst:
		s.feedback = feedbackRetry
	case sess.StateCorrect:
		s.feedback = feedbackCorrect
	default:
		s.feedback = feedbackWrong
	}
	s.phase = phaseFeedback
	return s, nil
}

// advance leaves the feedback view: either to the next question or, when
// every question is finished, to persisting the session.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if s.feedback == feedbackRetry {
		// Same question again; keep the same answer options.
		s.phase = phaseActive
		s.input.Reset()
		return s, nil
	}

	if s.state.Done() {
		return s, s.finalize()
	}

	s.presentCurrent()
	s.phase = phaseActive
	return s, nil
}

// finalize folds the finished session into the profile and persists it.
func (s *SessionScreen) finalize() tea.Cmd {
	return func() tea.Msg {
		result := sess.BuildResult(s.state)
		delta := sess.Delta(s.profile.Progress, result, s.state.MaxStreak)

		s.profile.Progress = delta.Apply(s.profile.Progress)
		s.profile.History = append(s.profile.History, result)

		unlocked := achievements.UnlockedNow(s.profile, &result)
		s.profile.Progress.Achievements = append(s.profile.Progress.Achievements, unlocked...)
		s.profile.Touch()

		if err := s.store.Put(s.profile); err != nil {
			return sessionSavedMsg{err: err}
		}
		return sessionSavedMsg{result: result, delta: delta, unlocked: unlocked}
	}
}
