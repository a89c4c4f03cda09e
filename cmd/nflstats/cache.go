package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newCacheCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached source data",
	}

	var source string
	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Refetch sources and overwrite their cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reloaders := a.components.Reloaders
			names := make([]string, 0, len(reloaders))
			if source == "" || strings.EqualFold(source, "all") {
				for name := range reloaders {
					names = append(names, name)
				}
				sort.Strings(names)
			} else {
				name := strings.ToLower(source)
				if _, ok := reloaders[name]; !ok {
					return fmt.Errorf("unknown source %q", source)
				}
				names = append(names, name)
			}

			refreshed := make(map[string]int, len(names))
			for _, name := range names {
				count, err := reloaders[name].Reload(cmd.Context())
				if err != nil {
					return fmt.Errorf("refresh %s: %w", name, err)
				}
				refreshed[name] = count
			}
			return a.print(cmd, map[string]any{"status": "ok", "refreshed": refreshed})
		},
	}
	refresh.Flags().StringVar(&source, "source", "", "source to refresh (injuries, madden, pff, line_rankings or all)")
	command.AddCommand(refresh)
	return command
}
