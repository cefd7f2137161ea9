// Package setup implements the session configuration screen: operation
// toggles, difficulty, question count, an optional practice number for
// single-operation multiplication or division, and the timer switch.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	sessionscreen "github.com/mvoronov/mathmage/internal/screens/session"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/layout"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

var questionCounts = []int{5, 10, 15, 20}

// row indices in the setup form.
const (
	rowOpsStart   = 0 // four operation rows
	rowDifficulty = 4
	rowCount      = 5
	rowNumber     = 6
	rowTimer      = 7
	rowStart      = 8
	rowTotal      = 9
)

// SetupScreen is the pre-session configuration form.
type SetupScreen struct {
	store   store.Store
	profile *profile.UserProfile

	ops        map[problemgen.Operation]bool
	difficulty int // index into problemgen.AllDifficulties()
	countIdx   int // index into questionCounts
	number     int // 0 means "any", otherwise the practice table
	timer      bool

	focus  int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with the defaults for a first session.
func New(st store.Store, p *profile.UserProfile) *SetupScreen {
	return &SetupScreen{
		store:   st,
		profile: p,
		ops: map[problemgen.Operation]bool{
			problemgen.OpAddition: true,
		},
		countIdx: 1, // 10 questions
	}
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// selectedOps returns the enabled operations in display order.
func (s *SetupScreen) selectedOps() []problemgen.Operation {
	var ops []problemgen.Operation
	for _, op := range problemgen.AllOperations() {
		if s.ops[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

// numberEligible reports whether the practice number row is active:
// exactly one operation selected, and it is multiplication or division.
func (s *SetupScreen) numberEligible() bool {
	ops := s.selectedOps()
	if len(ops) != 1 {
		return false
	}
	return ops[0] == problemgen.OpMultiplication || ops[0] == problemgen.OpDivision
}

func (s *SetupScreen) config() problemgen.SessionConfig {
	cfg := problemgen.SessionConfig{
		Operations:    s.selectedOps(),
		Difficulty:    problemgen.AllDifficulties()[s.difficulty],
		QuestionCount: questionCounts[s.countIdx],
		TimerEnabled:  s.timer,
	}
	if s.numberEligible() && s.number > 0 {
		n := s.number
		cfg.SpecificNumber = &n
	}
	return cfg
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		s.focus = s.prevRow(s.focus)

	case "down", "j":
		s.focus = s.nextRow(s.focus)

	case " ", "space":
		s.toggle()

	case "left", "h":
		s.cycle(-1)

	case "right", "l":
		s.cycle(1)

	case "enter":
		if s.focus == rowStart {
			return s.start()
		}
		if s.focus >= rowOpsStart && s.focus < rowOpsStart+4 {
			s.toggle()
			return s, nil
		}
		s.focus = rowStart
	}

	return s, nil
}

func (s *SetupScreen) prevRow(from int) int {
	for i := from - 1; i >= 0; i-- {
		if s.rowActive(i) {
			return i
		}
	}
	return from
}

func (s *SetupScreen) nextRow(from int) int {
	for i := from + 1; i < rowTotal; i++ {
		if s.rowActive(i) {
			return i
		}
	}
	return from
}

func (s *SetupScreen) rowActive(i int) bool {
	if i == rowNumber {
		return s.numberEligible()
	}
	return true
}

func (s *SetupScreen) toggle() {
	switch {
	case s.focus >= rowOpsStart && s.focus < rowOpsStart+4:
		op := problemgen.AllOperations()[s.focus-rowOpsStart]
		s.ops[op] = !s.ops[op]
		s.errMsg = ""
		if !s.numberEligible() {
			s.number = 0
		}
	case s.focus == rowTimer:
		s.timer = !s.timer
	}
}

func (s *SetupScreen) cycle(dir int) {
	switch s.focus {
	case rowDifficulty:
		n := len(problemgen.AllDifficulties())
		s.difficulty = (s.difficulty + dir + n) % n
	case rowCount:
		n := len(questionCounts)
		s.countIdx = (s.countIdx + dir + n) % n
	case rowNumber:
		// 0 means "any number"; tables run 1 to 10.
		s.number += dir
		if s.number < 0 {
			s.number = 10
		}
		if s.number > 10 {
			s.number = 0
		}
	}
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	cfg := s.config()
	if len(cfg.Operations) == 0 {
		s.errMsg = "Pick at least one operation"
		return s, nil
	}
	next := sessionscreen.New(s.store, s.profile, cfg)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var lines []string

	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Set up your session"))
	lines = append(lines, "")

	for i, op := range problemgen.AllOperations() {
		check := "[ ]"
		if s.ops[op] {
			check = "[✓]"
		}
		label := fmt.Sprintf("%s %s  %s", check, problemgen.Symbol(op), op.DisplayName())
		lines = append(lines, s.renderRow(rowOpsStart+i, label))
	}

	lines = append(lines, "")

	diff := problemgen.AllDifficulties()[s.difficulty]
	lines = append(lines, s.renderRow(rowDifficulty,
		fmt.Sprintf("Difficulty   ◂ %s ▸", diff.DisplayName())))
	lines = append(lines, s.renderRow(rowCount,
		fmt.Sprintf("Questions    ◂ %d ▸", questionCounts[s.countIdx])))

	if s.numberEligible() {
		numLabel := "Any"
		if s.number > 0 {
			numLabel = fmt.Sprintf("%d", s.number)
		}
		lines = append(lines, s.renderRow(rowNumber,
			fmt.Sprintf("Practice number  ◂ %s ▸", numLabel)))
	}

	timerCheck := "[ ]"
	if s.timer {
		timerCheck = "[✓]"
	}
	lines = append(lines, s.renderRow(rowTimer, timerCheck+" Track time"))

	lines = append(lines, "")
	lines = append(lines, s.renderRow(rowStart, "▶ START"))

	if s.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) renderRow(row int, label string) string {
	if row == s.focus {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
}
