package cmd

import (
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathmage",
	Short: "Math practice for kids",
	Long:  "MathMage — a terminal math practice app for children: arithmetic sessions, stars, levels and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to profile database file (overrides MATHMAGE_DB env var)")
	rootCmd.PersistentFlags().String("store", store.EngineSQLite, "Storage engine: sqlite or json")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHMAGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and engine flags and opens the profile store.
func openStore(cmd *cobra.Command) (store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	engine, _ := cmd.Flags().GetString("store")
	return store.Open(engine, path)
}
