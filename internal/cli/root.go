package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msommer/pickem/internal/kv"
	"github.com/msommer/pickem/internal/session"
	"github.com/msommer/pickem/internal/testutil"
)

var (
	cfg     *Config
	client  *Client
	manager *session.Manager
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pickem",
		Short: "CLI client for the pick'em contest API",
		Long: `pickem is a CLI client for the pick'em contest JSON API.

It supports signup, login, pick submission, the scored game view and
the leaderboard. Sessions persist across invocations when login uses
--remember; otherwise they last for the current process only.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The durable tier survives process restarts; the ephemeral
			// tier is this process's memory, so a session stored there
			// ends when the process does
			durable := kv.NewFileStore(cfg.SessionFile)
			ephemeral := kv.NewMemoryStore()

			auth := &apiAuthenticator{}
			manager = session.NewManager(durable, ephemeral, auth, testutil.NopLogger())
			client = NewClient(cfg.ServerURL, manager.Credential())
			auth.client = client

			return manager.Restore(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PICKEM_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: PICKEM_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newResetPasswordCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newResultCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newPicksCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
