package problemgen

import "fmt"

// CheckAnswer reports whether the submitted answer is correct.
// Exact integer equality; callers parse free-text input before calling.
func CheckAnswer(q Question, answer int) bool {
	return answer == q.CorrectAnswer
}

// FormatQuestion renders the question for display, e.g. "7 × 8 = ?".
func FormatQuestion(q Question) string {
	return fmt.Sprintf("%d %s %d = ?", q.Operand1, Symbol(q.Operation), q.Operand2)
}
