package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvoronov/mathmage/internal/achievements"
	"github.com/mvoronov/mathmage/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show a profile's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := st.Get(args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no profile named %q", args[0])
		}

		prog := p.Progress
		fmt.Printf("%s — %s (level %d)\n", p.Name, progression.LevelName(prog.Level), prog.Level)
		fmt.Printf("  Stars:        %d (next level at %d)\n",
			prog.TotalStars, progression.StarsForNextLevel(prog.Level))
		fmt.Printf("  Best streak:  %d\n", prog.BestStreak)
		fmt.Printf("  Sessions:     %d\n", len(p.History))
		fmt.Printf("  Achievements: %d/%d\n", len(prog.Achievements), len(achievements.Catalog))

		for _, a := range achievements.Catalog {
			if prog.HasAchievement(a.ID) {
				fmt.Printf("    %s %s\n", a.Icon, a.Name)
			}
		}
		return nil
	},
}
