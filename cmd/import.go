package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/store"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a profile from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		if err := store.ValidateProfileJSON(raw); err != nil {
			return fmt.Errorf("validate %s: %w", args[0], err)
		}

		var p profile.UserProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		existing, err := st.Get(p.Name)
		if err != nil {
			return err
		}
		if existing != nil && !importForce {
			return fmt.Errorf("profile %q already exists (use --force to replace)", p.Name)
		}

		if err := st.Put(&p); err != nil {
			return err
		}
		fmt.Printf("Imported profile %q\n", p.Name)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importForce, "force", false, "Replace an existing profile with the same name")
}
