package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newCardsCmd() *cobra.Command {
	var cardType string

	cmd := &cobra.Command{
		Use:   "cards [name]",
		Short: "Show the card catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if len(args) == 1 {
				var result Card
				if err := client.Get("/api/v1/cards/"+url.PathEscape(args[0]), &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			path := "/api/v1/cards"
			if cardType != "" {
				path += "?type=" + url.QueryEscape(cardType)
			}

			var result []Card
			if err := client.Get(path, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cardType, "type", "", "Filter by card type (ROLE, BONUS, ACTION)")

	return cmd
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Game settings commands",
	}

	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsSetCmd())

	return cmd
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the active game settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Settings

			if err := client.Get("/api/v1/settings", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var rounds, timer int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the game settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 || timer <= 0 {
				return fmt.Errorf("--rounds and --timer must be positive")
			}

			req := map[string]int{
				"rounds_to_win": rounds,
				"timer_seconds": timer,
			}
			var result Settings

			if err := client.Put("/api/v1/settings", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 10, "Rounds a faction needs to trigger the endgame")
	cmd.Flags().IntVar(&timer, "timer", 10, "Eyes-open countdown in seconds")

	return cmd
}
