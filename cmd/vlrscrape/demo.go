package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TongAlan/val-api/internal/domain/regions"
)

const (
	demoMatches = 3
	demoTeams   = 5
)

func (a *app) demoCmd() *cobra.Command {
	var pause time.Duration
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walks the match listing, global rankings and the top team's page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := a.client(pause, pause)

			fmt.Fprintln(a.out, "Recent matches")
			list, err := client.Matches(ctx)
			if err != nil {
				return err
			}
			renderMatches(a.out, firstN(list, demoMatches))

			fmt.Fprintln(a.out, "Top teams")
			ranked, err := client.Teams(ctx, regions.Global)
			if err != nil {
				return err
			}
			top := firstN(ranked, demoTeams)
			renderTeams(a.out, top)

			if len(top) == 0 || top[0].TeamID == "" {
				return nil
			}
			fmt.Fprintf(a.out, "Team %s\n", top[0].Name)
			detail, err := client.Team(ctx, top[0].TeamID)
			if err != nil {
				return err
			}
			renderTeam(a.out, detail)
			return nil
		},
	}
	cmd.Flags().DurationVar(&pause, "pause", defaultPause, "base pause between page fetches; up to the same again is added at random")
	return cmd
}

func firstN[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}
