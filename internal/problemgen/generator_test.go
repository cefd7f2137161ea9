package problemgen

import "testing"

// evaluate recomputes the expected answer from the operands.
func evaluate(t *testing.T, q Question) int {
	t.Helper()
	switch q.Operation {
	case OpAddition:
		return q.Operand1 + q.Operand2
	case OpSubtraction:
		return q.Operand1 - q.Operand2
	case OpMultiplication:
		return q.Operand1 * q.Operand2
	case OpDivision:
		if q.Operand2 == 0 {
			t.Fatalf("division question with zero divisor: %+v", q)
		}
		if q.Operand1%q.Operand2 != 0 {
			t.Fatalf("division question with remainder: %+v", q)
		}
		return q.Operand1 / q.Operand2
	default:
		t.Fatalf("unknown operation %q", q.Operation)
		return 0
	}
}

func TestGenerate_AnswerMatchesOperands(t *testing.T) {
	gen := NewGenerator(NewSeededRand(1))

	for _, op := range AllOperations() {
		for _, d := range AllDifficulties() {
			for i := 0; i < 200; i++ {
				q := gen.Generate(op, d, nil, false)
				if want := evaluate(t, q); q.CorrectAnswer != want {
					t.Fatalf("%s/%s: CorrectAnswer = %d, want %d (%+v)", op, d, q.CorrectAnswer, want, q)
				}
			}
		}
	}
}

func TestGenerate_OperandsStayInRange(t *testing.T) {
	gen := NewGenerator(NewSeededRand(2))

	for _, d := range AllDifficulties() {
		r := AdditionRange(d)
		for i := 0; i < 200; i++ {
			q := gen.Generate(OpAddition, d, nil, false)
			for _, v := range []int{q.Operand1, q.Operand2} {
				if v < r.Min || v > r.Max {
					t.Fatalf("addition/%s: operand %d outside [%d, %d]", d, v, r.Min, r.Max)
				}
			}
		}

		tr := MultiplicationRange(d)
		for i := 0; i < 200; i++ {
			q := gen.Generate(OpMultiplication, d, nil, false)
			// Operands may be swapped; one must come from the table range,
			// the other from the factor range.
			a, b := q.Operand1, q.Operand2
			tableFirst := a >= tr.TableMin && a <= tr.TableMax && b >= tr.FactorMin && b <= tr.FactorMax
			factorFirst := b >= tr.TableMin && b <= tr.TableMax && a >= tr.FactorMin && a <= tr.FactorMax
			if !tableFirst && !factorFirst {
				t.Fatalf("multiplication/%s: operands %d, %d outside table/factor ranges %+v", d, a, b, tr)
			}
		}
	}
}

func TestGenerate_SubtractionNeverNegative(t *testing.T) {
	gen := NewGenerator(NewSeededRand(3))

	for _, d := range AllDifficulties() {
		for i := 0; i < 500; i++ {
			q := gen.Generate(OpSubtraction, d, nil, false)
			if q.CorrectAnswer < 0 {
				t.Fatalf("subtraction/%s: negative result %d from %+v", d, q.CorrectAnswer, q)
			}
		}
	}
}

func TestGenerate_NegativeModeOperandsStayInSignedRange(t *testing.T) {
	gen := NewGenerator(NewSeededRand(13))

	ranges := map[Operation]func(Difficulty) Range{
		OpAddition:    AdditionRange,
		OpSubtraction: SubtractionRange,
	}

	for op, rangeFor := range ranges {
		for _, d := range AllDifficulties() {
			r := rangeFor(d)
			sawNegativeOperand := false
			for i := 0; i < 500; i++ {
				q := gen.Generate(op, d, nil, true)
				for _, v := range []int{q.Operand1, q.Operand2} {
					if v < -r.Max || v > r.Max {
						t.Fatalf("%s/%s: operand %d outside [%d, %d]", op, d, v, -r.Max, r.Max)
					}
					if v < 0 {
						sawNegativeOperand = true
					}
				}
				if want := evaluate(t, q); q.CorrectAnswer != want {
					t.Fatalf("%s/%s: CorrectAnswer = %d, want %d (%+v)", op, d, q.CorrectAnswer, want, q)
				}
			}
			if !sawNegativeOperand {
				t.Errorf("%s/%s: 500 negative-mode draws produced no negative operand", op, d)
			}
		}
	}
}

func TestGenerate_DivisionAlwaysExact(t *testing.T) {
	gen := NewGenerator(NewSeededRand(4))

	for i := 0; i < 1000; i++ {
		q := gen.Generate(OpDivision, DifficultyEasy, nil, false)
		if q.Operand1%q.Operand2 != 0 {
			t.Fatalf("division with remainder: %+v", q)
		}
		if q.Operand2 < 2 || q.Operand2 > 5 {
			t.Fatalf("easy division divisor %d outside [2, 5]", q.Operand2)
		}
	}
}

func TestGenerate_DivisionExactWithNegatives(t *testing.T) {
	gen := NewGenerator(NewSeededRand(5))

	for i := 0; i < 1000; i++ {
		q := gen.Generate(OpDivision, DifficultyMedium, nil, true)
		if q.Operand2 == 0 || q.Operand1%q.Operand2 != 0 {
			t.Fatalf("inexact division: %+v", q)
		}
		if q.CorrectAnswer != q.Operand1/q.Operand2 {
			t.Fatalf("CorrectAnswer = %d, want %d (%+v)", q.CorrectAnswer, q.Operand1/q.Operand2, q)
		}
	}
}

func TestGenerate_SpecificNumberFixesOneSide(t *testing.T) {
	gen := NewGenerator(NewSeededRand(6))
	seven := 7

	for i := 0; i < 500; i++ {
		q := gen.Generate(OpMultiplication, DifficultyEasy, &seven, false)
		if q.Operand1 != 7 && q.Operand2 != 7 {
			t.Fatalf("specific number 7 missing from operands: %+v", q)
		}
	}

	for i := 0; i < 500; i++ {
		q := gen.Generate(OpDivision, DifficultyEasy, &seven, false)
		if q.Operand2 != 7 {
			t.Fatalf("specific divisor 7 not used: %+v", q)
		}
		if q.Operand1%7 != 0 {
			t.Fatalf("dividend %d not divisible by 7", q.Operand1)
		}
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	gen := NewGenerator(NewSeededRand(7))
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		q := gen.Generate(OpAddition, DifficultyEasy, nil, false)
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateSession_CountAndOperations(t *testing.T) {
	gen := NewGenerator(NewSeededRand(8))
	cfg := SessionConfig{
		Operations:    []Operation{OpAddition, OpDivision},
		Difficulty:    DifficultyMedium,
		QuestionCount: 50,
	}

	questions := gen.GenerateSession(cfg, false)

	if len(questions) != 50 {
		t.Fatalf("len(questions) = %d, want 50", len(questions))
	}
	for _, q := range questions {
		if q.Operation != OpAddition && q.Operation != OpDivision {
			t.Fatalf("unexpected operation %s", q.Operation)
		}
	}
}

func TestGenerateSession_EmptyOperationsPanics(t *testing.T) {
	gen := NewGenerator(NewSeededRand(9))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty operations")
		}
	}()
	gen.GenerateSession(SessionConfig{Difficulty: DifficultyEasy, QuestionCount: 1}, false)
}
