package problemgen

// Operation identifies an arithmetic operation.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations returns the operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// DisplayName returns a human-readable label for the operation.
func (o Operation) DisplayName() string {
	switch o {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Subtraction"
	case OpMultiplication:
		return "Multiplication"
	case OpDivision:
		return "Division"
	default:
		return string(o)
	}
}

// Difficulty identifies a difficulty level.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	default:
		return string(d)
	}
}

// Question is one generated arithmetic question.
// Immutable once generated; owned by the session that created it.
type Question struct {
	ID            string     `json:"id"`
	Operand1      int        `json:"operand1"`
	Operand2      int        `json:"operand2"`
	Operation     Operation  `json:"operation"`
	CorrectAnswer int        `json:"correctAnswer"`
	Difficulty    Difficulty `json:"difficulty"`
}

// SessionConfig describes one practice session's setup.
//
// SpecificNumber restricts one operand of multiplication or division
// (e.g. "practice the 7 times table"). It is meaningful only when exactly
// one operation is selected and that operation is multiplication or
// division; otherwise it must be nil.
type SessionConfig struct {
	Operations     []Operation `json:"operations"`
	Difficulty     Difficulty  `json:"difficulty"`
	QuestionCount  int         `json:"questionCount"`
	SpecificNumber *int        `json:"specificNumber"`
	TimerEnabled   bool        `json:"timerEnabled"`
}
