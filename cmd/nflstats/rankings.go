package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nfl-data-service/internal/app/rankings"
)

func newRankingsCommand(a *app) *cobra.Command {
	var team string
	command := &cobra.Command{
		Use:   "rankings",
		Short: "List offensive line rankings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.components.Services.Rankings
			if team != "" {
				ranking, ok, err := svc.ByTeam(cmd.Context(), team)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("team not found: %s", team)
				}
				return a.print(cmd, ranking)
			}
			items, err := svc.Rankings(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().StringVar(&team, "team", "", "only this team's ranking")

	var n int
	top := &cobra.Command{
		Use:   "top",
		Short: "Best ranked offensive lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.components.Services.Rankings.Top(cmd.Context(), n)
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	top.Flags().IntVarP(&n, "limit", "n", rankings.DefaultTopN, "number of teams")

	var minRank, maxRank float64
	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "Offensive lines ranked within [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minRank > maxRank {
				return fmt.Errorf("min must not exceed max")
			}
			items, err := a.components.Services.Rankings.ByRankRange(cmd.Context(), minRank, maxRank)
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	rangeCmd.Flags().Float64Var(&minRank, "min", 1, "best rank")
	rangeCmd.Flags().Float64Var(&maxRank, "max", 32, "worst rank")

	command.AddCommand(top, rangeCmd, &cobra.Command{
		Use:   "stats",
		Short: "Rank distribution and key-detail statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.components.Services.Rankings.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, summaryOutput(summary))
		},
	})
	return command
}
