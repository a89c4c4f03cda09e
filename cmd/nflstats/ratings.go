package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nfl-data-service/internal/app/pff"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
)

func newMaddenCommand(a *app) *cobra.Command {
	var position, team, source string
	command := &cobra.Command{
		Use:   "madden",
		Short: "List Madden player ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.components.Services.Madden
			var (
				items []ratings.MaddenRating
				err   error
			)
			switch {
			case position != "":
				items, err = svc.ByPosition(cmd.Context(), position)
			case team != "":
				items, err = svc.ByTeam(cmd.Context(), team)
			case source != "":
				items, err = svc.BySource(cmd.Context(), source)
			default:
				items, err = svc.Ratings(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().StringVar(&position, "position", "", "filter by position")
	command.Flags().StringVar(&team, "team", "", "filter by team")
	command.Flags().StringVar(&source, "source", "", "filter by rating source tag")

	command.AddCommand(
		&cobra.Command{
			Use:   "player NAME",
			Short: "Show one player's Madden rating",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args, " ")
				rating, ok, err := a.components.Services.Madden.ByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("player not found: %s", name)
				}
				return a.print(cmd, rating)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Summarize Madden ratings by position and team",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				summary, err := a.components.Services.Madden.Stats(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, summaryOutput(summary))
			},
		},
	)
	return command
}

func newPFFCommand(a *app) *cobra.Command {
	var position, team string
	command := &cobra.Command{
		Use:   "pff",
		Short: "List Pro Football Focus ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.components.Services.PFF
			var (
				items []ratings.PFFRating
				err   error
			)
			switch {
			case position != "":
				items, err = svc.ByPosition(cmd.Context(), position)
			case team != "":
				items, err = svc.ByTeam(cmd.Context(), team)
			default:
				items, err = svc.Ratings(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().StringVar(&position, "position", "", "filter by position")
	command.Flags().StringVar(&team, "team", "", "filter by team")

	command.AddCommand(newPFFTopCommand(a), newPFFRangeCommand(a),
		&cobra.Command{
			Use:   "player NAME",
			Short: "Show one player's PFF row",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args, " ")
				rating, ok, err := a.components.Services.PFF.ByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("player not found: %s", name)
				}
				return a.print(cmd, rating)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Summarize PFF ratings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				summary, err := a.components.Services.PFF.Stats(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, summaryOutput(summary))
			},
		},
	)
	return command
}

func newPFFTopCommand(a *app) *cobra.Command {
	var (
		position string
		n        int
	)
	command := &cobra.Command{
		Use:   "top",
		Short: "Best ranked players at a position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.components.Services.PFF.TopByPosition(cmd.Context(), position, n)
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().StringVar(&position, "position", "", "position to rank")
	command.Flags().IntVarP(&n, "limit", "n", pff.DefaultTopN, "number of players")
	_ = command.MarkFlagRequired("position")
	return command
}

func newPFFRangeCommand(a *app) *cobra.Command {
	var minRank, maxRank float64
	command := &cobra.Command{
		Use:   "range",
		Short: "Players whose overall rank falls within [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minRank > maxRank {
				return fmt.Errorf("min must not exceed max")
			}
			items, err := a.components.Services.PFF.ByRankRange(cmd.Context(), minRank, maxRank)
			if err != nil {
				return err
			}
			return a.print(cmd, items)
		},
	}
	command.Flags().Float64Var(&minRank, "min", 0, "lowest overall rank")
	command.Flags().Float64Var(&maxRank, "max", 0, "highest overall rank")
	_ = command.MarkFlagRequired("min")
	_ = command.MarkFlagRequired("max")
	return command
}
