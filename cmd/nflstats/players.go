package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainplayers "github.com/preston-bernstein/nfl-data-service/internal/domain/players"
)

func newPlayersCommand(a *app) *cobra.Command {
	var position, team string
	command := &cobra.Command{
		Use:   "players",
		Short: "List players reconciled across Madden and PFF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.components.Services.Players
			var (
				items []domainplayers.UnifiedPlayer
				err   error
			)
			switch {
			case position != "":
				items, err = svc.ByPosition(cmd.Context(), position)
			case team != "":
				items, err = svc.ByTeam(cmd.Context(), team)
			default:
				items, err = svc.Players(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().StringVar(&position, "position", "", "filter by position")
	command.Flags().StringVar(&team, "team", "", "filter by team")

	command.AddCommand(
		&cobra.Command{
			Use:   "get NAME",
			Short: "Show one reconciled player",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args, " ")
				player, ok, err := a.components.Services.Players.ByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("player not found: %s", name)
				}
				return a.print(cmd, player)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Count reconciled players by position, team and source coverage",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				summary, err := a.components.Services.Players.Stats(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, summaryOutput(summary))
			},
		},
	)
	return command
}
