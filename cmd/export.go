package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <name> [file]",
	Short: "Export a profile as JSON",
	Long:  "Export a profile as JSON to the given file, or to stdout when no file is given.",
	Args:  cobra.RangeArgs(1, 2),
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

		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if len(args) == 2 {
			return os.WriteFile(args[1], data, 0o644)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
