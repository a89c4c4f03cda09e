package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInjuriesCommand(a *app) *cobra.Command {
	var team, status string
	command := &cobra.Command{
		Use:   "injuries",
		Short: "Show the league injury report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.components.Services.Injuries
			ctx := cmd.Context()
			switch {
			case team != "":
				report, ok, err := svc.ByTeam(ctx, team)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("team not found: %s", team)
				}
				return a.print(cmd, report)
			case status != "":
				entries, err := svc.ByStatus(ctx, status)
				if err != nil {
					return err
				}
				return a.print(cmd, entries)
			default:
				reports, err := svc.Reports(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd, reports)
			}
		},
	}
	command.Flags().StringVar(&team, "team", "", "only this team's report")
	command.Flags().StringVar(&status, "status", "", "injured players with this status across all teams")
	command.MarkFlagsMutuallyExclusive("team", "status")

	command.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Count injured players by status, position and team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.components.Services.Injuries.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, summaryOutput(summary))
		},
	})
	return command
}
