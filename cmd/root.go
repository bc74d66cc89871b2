package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/config"
	"github.com/akshad/studyquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyquest",
	Short: "Gamified exam-prep study companion",
	Long:  "StudyQuest — terminal study companion with a pomodoro focus timer, daily challenges, streaks, and collectible pets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYQUEST_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to use (overrides STUDYQUEST_USER env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("STUDYQUEST_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the profile id using --user flag, then
// STUDYQUEST_USER, then "default".
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("STUDYQUEST_USER"); u != "" {
		return u
	}
	return "default"
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}
