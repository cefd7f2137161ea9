package progression

import "testing"

func TestLevelForStars(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 1},
		{6, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{500, 11},
	}

	for _, tt := range tests {
		if got := LevelForStars(tt.stars); got != tt.want {
			t.Errorf("LevelForStars(%d) = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestStarsForNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 50},
		{2, 100},
		{7, 350},
	}

	for _, tt := range tests {
		if got := StarsForNextLevel(tt.level); got != tt.want {
			t.Errorf("StarsForNextLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(1); got != "Novice Mage" {
		t.Errorf("LevelName(1) = %q", got)
	}
	if got := LevelName(8); got != "Legend of Magic" {
		t.Errorf("LevelName(8) = %q", got)
	}
	// Levels beyond the list keep the top title.
	if got := LevelName(40); got != "Legend of Magic" {
		t.Errorf("LevelName(40) = %q", got)
	}
	if got := LevelName(0); got != "Novice Mage" {
		t.Errorf("LevelName(0) = %q", got)
	}
}
