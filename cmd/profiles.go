package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage stored profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		profiles, err := st.ListAll()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Run `mathmage play` to create one.")
			return nil
		}
		for _, p := range profiles {
			fmt.Printf("%-20s ★ %-6d level %-3d last active %s\n",
				p.Name, p.Progress.TotalStars, p.Progress.Level,
				p.LastActiveAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and all of its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q\n", args[0])
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
