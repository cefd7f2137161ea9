package problemgen

// distractor strategies, tried in random order for each new distractor.
// They produce plausible near misses (off-by-one, sign-of-carry slips,
// double/half confusion) rather than arbitrary random numbers.
func (g *Generator) distractorStrategies(correct int) []func() int {
	return []func() int{
		func() int { return correct + 1 },
		func() int { return correct - 1 },
		func() int { return correct + 2 },
		func() int { return correct - 2 },
		func() int { return correct + 10 },
		func() int { return correct - 10 },
		func() int { return correct * 2 },
		func() int { return floorDiv2(correct) },
		func() int { return correct + g.rng.IntN(1, 5) },
		func() int { return correct - g.rng.IntN(1, 5) },
		func() int { return correct + g.rng.IntN(3, 13) },
		func() int { return correct - g.rng.IntN(3, 13) },
	}
}

// Choices returns ChoiceCount(d) answer options in random order: the correct
// answer exactly once plus unique distractors.
func (g *Generator) Choices(correct int, d Difficulty) []int {
	count := ChoiceCount(d)
	used := map[int]bool{correct: true}
	choices := []int{correct}

	for len(choices) < count {
		v := g.distractor(correct, used)
		used[v] = true
		choices = append(choices, v)
	}

	g.shuffle(choices)
	return choices
}

// distractor returns one value not yet in used and different from correct.
// If every strategy collides it scans correct+k upward, which terminates
// because used is finite.
func (g *Generator) distractor(correct int, used map[int]bool) int {
	strategies := g.distractorStrategies(correct)
	g.shuffleStrategies(strategies)

	for _, s := range strategies {
		v := s()
		if !used[v] && v != correct {
			return v
		}
	}

	for k := 1; ; k++ {
		if !used[correct+k] {
			return correct + k
		}
	}
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(vals []int) {
	for i := len(vals) - 1; i > 0; i-- {
		j := g.rng.IntN(0, i)
		vals[i], vals[j] = vals[j], vals[i]
	}
}

func (g *Generator) shuffleStrategies(fns []func() int) {
	for i := len(fns) - 1; i > 0; i-- {
		j := g.rng.IntN(0, i)
		fns[i], fns[j] = fns[j], fns[i]
	}
}

// floorDiv2 halves with floor semantics for negative values, matching
// integer floor division rather than Go's truncation toward zero.
func floorDiv2(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}
