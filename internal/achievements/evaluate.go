package achievements

import "github.com/mvoronov/mathmage/internal/profile"

// UnlockedNow returns the IDs of achievements that newly qualify, in
// catalogue order. The profile is not mutated; the caller merges the
// returned IDs into the profile's achievement set and persists it.
func UnlockedNow(p *profile.UserProfile, latest *profile.SessionResult) []string {
	var unlocked []string
	for _, a := range Catalog {
		if p.Progress.HasAchievement(a.ID) {
			continue
		}
		if a.Check(p, latest) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
