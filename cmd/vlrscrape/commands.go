package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TongAlan/val-api/internal/domain/regions"
	"github.com/TongAlan/val-api/internal/providers"
)

func (a *app) matchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Lists upcoming and recent matches.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client(0, 0).Matches(cmd.Context())
			if err != nil {
				return err
			}
			renderMatches(a.out, list)
			return nil
		},
	}
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Prints the maps and scores of one match.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.client(0, 0).Match(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderMatch(a.out, detail)
			return nil
		},
	}
}

func (a *app) teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams [region]",
		Short: "Prints the team rankings of a region (default global).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := string(regions.Global)
			if len(args) == 1 {
				raw = args[0]
			}
			region, ok := regions.Parse(raw, regions.TeamRegions)
			if !ok {
				return providers.InvalidRegion(raw, regions.TeamRegions)
			}
			list, err := a.client(0, 0).Teams(cmd.Context(), region)
			if err != nil {
				return err
			}
			renderTeams(a.out, list)
			return nil
		},
	}
}

func (a *app) teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <id>",
		Short: "Prints the roster and recent matches of one team.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.client(0, 0).Team(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderTeam(a.out, detail)
			return nil
		},
	}
}

func (a *app) playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <vlr_id>",
		Short: "Prints one player's profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("vlr_id must be an integer: %q", args[0])
			}
			detail, err := a.client(0, 0).Player(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderPlayer(a.out, detail)
			return nil
		},
	}
}

func (a *app) playersCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "players <region>",
		Short: "Prints every player on a region's league roster.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, ok := regions.Parse(args[0], regions.PlayerRegions)
			if !ok {
				return providers.InvalidRegion(args[0], regions.PlayerRegions)
			}
			list, err := a.client(delay, 0).Players(cmd.Context(), region)
			if err != nil {
				return err
			}
			renderPlayers(a.out, list)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between player page fetches")
	return cmd
}
