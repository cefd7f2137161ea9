package problemgen

// Range is an inclusive operand range for addition and subtraction.
type Range struct {
	Min int
	Max int
}

// TableRange holds the table and factor ranges for multiplication and
// division. The table number is the fixed side of a times-table drill,
// the factor is the side that varies.
type TableRange struct {
	TableMin  int
	TableMax  int
	FactorMin int
	FactorMax int
}

var additionRanges = map[Difficulty]Range{
	DifficultyEasy:     {Min: 0, Max: 10},
	DifficultyMedium:   {Min: 0, Max: 50},
	DifficultyHard:     {Min: 0, Max: 100},
	DifficultyVeryHard: {Min: 0, Max: 1000},
}

var multiplicationRanges = map[Difficulty]TableRange{
	DifficultyEasy:     {TableMin: 2, TableMax: 5, FactorMin: 1, FactorMax: 10},
	DifficultyMedium:   {TableMin: 2, TableMax: 9, FactorMin: 1, FactorMax: 10},
	DifficultyHard:     {TableMin: 2, TableMax: 12, FactorMin: 1, FactorMax: 10},
	DifficultyVeryHard: {TableMin: 2, TableMax: 9, FactorMin: 13, FactorMax: 25},
}

// AdditionRange returns the operand range for addition at the given difficulty.
func AdditionRange(d Difficulty) Range {
	return additionRanges[d]
}

// SubtractionRange returns the operand range for subtraction.
// Subtraction shares the addition table.
func SubtractionRange(d Difficulty) Range {
	return additionRanges[d]
}

// MultiplicationRange returns the table/factor ranges for multiplication.
func MultiplicationRange(d Difficulty) TableRange {
	return multiplicationRanges[d]
}

// DivisionRange returns the table/factor ranges for division.
// Division shares the multiplication table.
func DivisionRange(d Difficulty) TableRange {
	return multiplicationRanges[d]
}

// ChoiceCount returns the number of multiple-choice options shown at the
// given difficulty: 4 for easy and medium, 6 for hard and very hard.
func ChoiceCount(d Difficulty) int {
	switch d {
	case DifficultyHard, DifficultyVeryHard:
		return 6
	default:
		return 4
	}
}

// Symbol returns the display glyph for the operation.
func Symbol(o Operation) string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "−"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "?"
	}
}
