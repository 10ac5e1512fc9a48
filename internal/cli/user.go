package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDefaultsCmd() *cobra.Command {
	var first, gwg string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Set your default pick selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if first == "" && gwg == "" {
				return fmt.Errorf("at least one of --first or --gwg is required")
			}

			req := map[string]string{}
			if first != "" {
				req["defaultFirstGoal"] = first
			}
			if gwg != "" {
				req["defaultGWG"] = gwg
			}

			var result User
			if err := client.Patch("/api/v1/users/defaults", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "Default first goal scorer player ID")
	cmd.Flags().StringVar(&gwg, "gwg", "", "Default game-winning-goal scorer player ID")

	return cmd
}
