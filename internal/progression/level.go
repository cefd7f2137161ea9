// Package progression holds the star/level arithmetic shared by the
// session aggregator and the achievement evaluator's callers.
package progression

// StarsPerLevel is the star threshold between levels.
const StarsPerLevel = 50

var levelNames = []string{
	"Novice Mage",
	"Apprentice Mage",
	"Journeyman Mage",
	"Master Mage",
	"Senior Mage",
	"Grand Mage",
	"Archmage",
	"Legend of Magic",
}

// LevelForStars derives the level from the cumulative star count.
func LevelForStars(totalStars int) int {
	return totalStars/StarsPerLevel + 1
}

// StarsForNextLevel returns the total stars needed to leave the given level.
func StarsForNextLevel(level int) int {
	return level * StarsPerLevel
}

// LevelName returns the display title for a level, clamped at the top rank.
func LevelName(level int) string {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(levelNames) {
		idx = len(levelNames) - 1
	}
	return levelNames[idx]
}
