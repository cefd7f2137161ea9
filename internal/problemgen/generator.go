package problemgen

import "fmt"

// Generator produces arithmetic questions. It owns its random source and
// question ID counter, so two generators never share hidden state.
type Generator struct {
	rng     Rand
	counter int
}

// NewGenerator creates a Generator using the given random source.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// nextID returns a fresh question identifier, unique per generator.
func (g *Generator) nextID() string {
	g.counter++
	return fmt.Sprintf("q-%d", g.counter)
}

// Generate produces one question for the operation at the given difficulty.
// specificNumber, when non-nil, fixes one factor of multiplication or the
// divisor of division. allowNegative permits negative operands and results.
func (g *Generator) Generate(op Operation, d Difficulty, specificNumber *int, allowNegative bool) Question {
	switch op {
	case OpAddition:
		return g.addition(d, allowNegative)
	case OpSubtraction:
		return g.subtraction(d, allowNegative)
	case OpMultiplication:
		return g.multiplication(d, specificNumber, allowNegative)
	case OpDivision:
		return g.division(d, specificNumber, allowNegative)
	default:
		panic(fmt.Sprintf("problemgen: unknown operation %q", op))
	}
}

// GenerateSession produces cfg.QuestionCount questions, each question's
// operation drawn uniformly at random from cfg.Operations.
func (g *Generator) GenerateSession(cfg SessionConfig, allowNegative bool) []Question {
	if len(cfg.Operations) == 0 {
		panic("problemgen: session config has no operations")
	}

	questions := make([]Question, 0, cfg.QuestionCount)
	for i := 0; i < cfg.QuestionCount; i++ {
		op := cfg.Operations[g.rng.IntN(0, len(cfg.Operations)-1)]
		questions = append(questions, g.Generate(op, cfg.Difficulty, cfg.SpecificNumber, allowNegative))
	}
	return questions
}

func (g *Generator) addition(d Difficulty, allowNegative bool) Question {
	r := AdditionRange(d)

	var a, b int
	if allowNegative {
		a = g.rng.IntN(-r.Max, r.Max)
		b = g.rng.IntN(-r.Max, r.Max)
	} else {
		a = g.rng.IntN(r.Min, r.Max)
		b = g.rng.IntN(r.Min, r.Max)
	}

	return Question{
		ID:            g.nextID(),
		Operand1:      a,
		Operand2:      b,
		Operation:     OpAddition,
		CorrectAnswer: a + b,
		Difficulty:    d,
	}
}

func (g *Generator) subtraction(d Difficulty, allowNegative bool) Question {
	r := SubtractionRange(d)

	var a, b int
	if allowNegative {
		a = g.rng.IntN(-r.Max, r.Max)
		b = g.rng.IntN(-r.Max, r.Max)
	} else {
		// Draw b below a so the result is never negative.
		a = g.rng.IntN(r.Min, r.Max)
		b = g.rng.IntN(r.Min, a)
	}

	return Question{
		ID:            g.nextID(),
		Operand1:      a,
		Operand2:      b,
		Operation:     OpSubtraction,
		CorrectAnswer: a - b,
		Difficulty:    d,
	}
}

func (g *Generator) multiplication(d Difficulty, specificNumber *int, allowNegative bool) Question {
	r := MultiplicationRange(d)

	var a, b int
	if specificNumber != nil {
		a = *specificNumber
		b = g.rng.IntN(r.FactorMin, r.FactorMax)
	} else {
		a = g.rng.IntN(r.TableMin, r.TableMax)
		b = g.rng.IntN(r.FactorMin, r.FactorMax)
	}

	// Swap so the table number is not always in the same position.
	if g.rng.Bool() {
		a, b = b, a
	}

	if allowNegative && g.rng.Bool() {
		a = -a
	}

	return Question{
		ID:            g.nextID(),
		Operand1:      a,
		Operand2:      b,
		Operation:     OpMultiplication,
		CorrectAnswer: a * b,
		Difficulty:    d,
	}
}

func (g *Generator) division(d Difficulty, specificNumber *int, allowNegative bool) Question {
	r := DivisionRange(d)

	var divisor, quotient int
	if specificNumber != nil {
		divisor = *specificNumber
		quotient = g.rng.IntN(r.FactorMin, r.FactorMax)
	} else {
		divisor = g.rng.IntN(r.TableMin, r.TableMax)
		quotient = g.rng.IntN(r.FactorMin, r.FactorMax)
	}

	// Construct the dividend from its factors so division is always exact.
	dividend := divisor * quotient

	if allowNegative && g.rng.Bool() {
		dividend = -dividend
	}

	return Question{
		ID:            g.nextID(),
		Operand1:      dividend,
		Operand2:      divisor,
		Operation:     OpDivision,
		CorrectAnswer: dividend / divisor,
		Difficulty:    d,
	}
}
