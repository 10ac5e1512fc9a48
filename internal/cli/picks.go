package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	var game, first, gwg string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Submit a pick for a game",
		Long: `Submit a pick for a game.

Either selection may be set on its own; a selection you omit keeps
whatever you previously picked for that game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if first == "" && gwg == "" {
				return fmt.Errorf("at least one of --first or --gwg is required")
			}

			req := map[string]string{"gameId": game}
			if first != "" {
				req["firstGoalPlayerId"] = first
			}
			if gwg != "" {
				req["gwGoalPlayerId"] = gwg
			}

			var result Pick
			if err := client.Post("/api/v1/picks", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&first, "first", "", "First goal scorer player ID")
	cmd.Flags().StringVar(&gwg, "gwg", "", "Game-winning-goal scorer player ID")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newPicksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picks",
		Short: "List your submitted picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Pick
			if err := client.Get("/api/v1/picks", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show your scored games, the next game and what's upcoming",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ViewModel
			if err := client.Get("/api/v1/pickem", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
