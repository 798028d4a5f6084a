package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TongAlan/val-api/internal/fetch"
	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/lookup"
	"github.com/TongAlan/val-api/internal/providers"
	"github.com/TongAlan/val-api/internal/providers/vlr"
)

const (
	defaultPlayersCSV = "data/players.csv"
	defaultPause      = time.Second
)

// app carries flag values and the clients built from them.
type app struct {
	baseURL    string
	playersCSV string
	timeout    time.Duration
	logLevel   string

	out    io.Writer
	logger *slog.Logger
	table  *lookup.Table
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "vlrscrape",
		Short:         "vlrscrape reads matches, teams and players from vlr.gg.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.baseURL, "base-url", vlr.DefaultBaseURL, "vlr.gg base URL")
	flags.StringVar(&a.playersCSV, "players-csv", defaultPlayersCSV, "path to the vlr_id,ign lookup table")
	flags.DurationVar(&a.timeout, "timeout", fetch.DefaultTimeout, "per-page fetch timeout")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.matchesCmd(),
		a.matchCmd(),
		a.teamsCmd(),
		a.teamCmd(),
		a.playerCmd(),
		a.playersCmd(),
		a.demoCmd(),
	)
	return root
}

func (a *app) setup() error {
	a.logger = logging.NewLogger(logging.Config{
		Level:   a.logLevel,
		Service: "vlrscrape",
		Output:  os.Stderr,
	})

	table, err := lookup.Load(a.playersCSV)
	if err != nil {
		return err
	}
	a.table = table
	return nil
}

// client builds a vlr.gg client whose requests are spaced by delay plus up
// to jitter.
func (a *app) client(delay, jitter time.Duration) providers.DataProvider {
	fetcher := fetch.New(fetch.Options{
		Timeout: a.timeout,
		Delay:   delay,
		Jitter:  jitter,
		Logger:  a.logger,
	})
	return vlr.NewClient(fetcher, a.table, vlr.Options{
		BaseURL: a.baseURL,
		Logger:  a.logger,
	})
}
