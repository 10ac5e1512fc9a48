package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the game schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newResultCmd() *cobra.Command {
	var game, first, gwg string

	cmd := &cobra.Command{
		Use:   "result",
		Short: "Record a game result (requires the admin key)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.AdminKey == "" {
				return fmt.Errorf("admin key required (env: PICKEM_ADMIN_KEY)")
			}

			req := map[string]string{
				"firstGoalPlayerId": first,
				"gwGoalPlayerId":    gwg,
			}
			header := http.Header{}
			header.Set("X-Admin-Key", cfg.AdminKey)

			var result Game
			path := fmt.Sprintf("/api/v1/games/%s/result", game)
			if err := client.Do(http.MethodPost, path, header, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&first, "first", "", "First goal scorer player ID (required)")
	cmd.Flags().StringVar(&gwg, "gwg", "", "Game-winning-goal scorer player ID (required)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("gwg")

	return cmd
}
