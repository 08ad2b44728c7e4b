package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game table commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameCaptainVoteCmd())
	cmd.AddCommand(newGameRevealCmd())
	cmd.AddCommand(newGameAdvanceCmd())
	cmd.AddCommand(newGameCrewCmd())
	cmd.AddCommand(newGameCardCmd())
	cmd.AddCommand(newGameFinalVoteCmd())
	cmd.AddCommand(newGameRestartCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var players string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game for a table of players",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := splitNames(players)
			if len(names) == 0 {
				return fmt.Errorf("--players is required (comma-separated names)")
			}

			req := map[string]any{"player_names": names}
			var result GameState

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&players, "players", "", "Comma-separated player names, 7 to 20 (required)")
	_ = cmd.MarkFlagRequired("players")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCaptainVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "captain-vote <game-id> <voter> <target>",
		Short: "Cast a captain election vote",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, target, err := parseSeatPair(args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"voter": voter, "target": target}
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/captain-vote", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	var decline bool

	cmd := &cobra.Command{
		Use:   "reveal <game-id> <player>",
		Short: "Privately reveal a player's role card",
		Long: `Open the reveal screen for a player, then confirm it.

By default the player accepts the reveal and the role is printed.
With --decline the reveal screen is closed without showing the role.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player: %w", err)
			}

			gameID := args[0]
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reveal", gameID),
				map[string]int{"player_id": player}, nil); err != nil {
				return err
			}

			confirmReq := map[string]any{"player_id": player, "accept": !decline}
			out := NewOutput(cfg.Output)

			if decline {
				if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reveal/confirm", gameID), confirmReq, nil); err != nil {
					return err
				}
				out.PrintMessage("Reveal declined")
				return nil
			}

			var result RevealResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reveal/confirm", gameID), confirmReq, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&decline, "decline", false, "Close the reveal without showing the role")

	return cmd
}

func newGameAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <game-id>",
		Short: "Advance the game to the next phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/advance", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCrewCmd() *cobra.Command {
	var confirm, decline bool

	cmd := &cobra.Command{
		Use:   "crew <game-id> <captain> [target]",
		Short: "Select crew members or confirm the crew (captain only)",
		Long: `Toggle a player in or out of the proposed crew, or settle the proposal.

  ico game crew GAME42 2 5           toggle player 5
  ico game crew GAME42 2 --confirm   accept the crew of three
  ico game crew GAME42 2 --decline   reject it and pass the captaincy`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			captain, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid captain: %w", err)
			}

			gameID := args[0]
			var result GameState

			if confirm || decline {
				req := map[string]any{"actor": captain, "accept": confirm}
				if err := client.Post(fmt.Sprintf("/api/v1/games/%s/crew/confirm", gameID), req, &result); err != nil {
					return err
				}
			} else {
				if len(args) < 3 {
					return fmt.Errorf("target required unless --confirm or --decline is given")
				}
				target, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("invalid target: %w", err)
				}

				req := map[string]int{"actor": captain, "target": target}
				if err := client.Post(fmt.Sprintf("/api/v1/games/%s/crew", gameID), req, &result); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Accept the proposed crew")
	cmd.Flags().BoolVar(&decline, "decline", false, "Reject the proposed crew")
	cmd.MarkFlagsMutuallyExclusive("confirm", "decline")

	return cmd
}

func newGameCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <game-id> <player> <card>",
		Short: "Play a voyage card (ile, poison)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player: %w", err)
			}

			req := map[string]any{"player_id": player, "card": strings.ToLower(args[2])}
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/card", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameFinalVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "final-vote <game-id> <voter> <target>",
		Short: "Cast a siren hunt vote (pirates and siren only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, target, err := parseSeatPair(args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"voter": voter, "target": target}
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/final-vote", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <game-id>",
		Short: "Restart a finished game with the same table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/restart", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Abandon and delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

func splitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parseSeatPair(voterArg, targetArg string) (int, int, error) {
	voter, err := strconv.Atoi(voterArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid voter: %w", err)
	}
	target, err := strconv.Atoi(targetArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target: %w", err)
	}
	return voter, target, nil
}
