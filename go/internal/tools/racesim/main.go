// Command racesim runs a ghost-only race offline on a simulated clock and
// prints the results. The same seed always produces the same race.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcdev12/typerace/go/internal/models"
	"github.com/mcdev12/typerace/go/internal/race/results"
)

type options struct {
	seed      int64
	ghosts    []string
	prompt    string
	words     int
	factions  string
	countdown int
	tick      time.Duration
	maxTime   time.Duration
	store     string
	jsonOut   bool
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "racesim",
		Short:        "Simulate a ghost-only typing race",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.seed, "seed", 1, "session seed (0 draws a random one)")
	flags.StringSliceVar(&opts.ghosts, "ghost", []string{"red:MEDIUM", "blue:MEDIUM"}, "ghost as faction:difficulty, repeatable")
	flags.StringVar(&opts.prompt, "prompt", "", "prompt text (generated from the seed when empty)")
	flags.IntVar(&opts.words, "words", 25, "words in a generated prompt")
	flags.StringVar(&opts.factions, "factions", "config/factions.yaml", "faction speed bands file")
	flags.IntVar(&opts.countdown, "countdown", 3, "countdown ticks")
	flags.DurationVar(&opts.tick, "tick", 100*time.Millisecond, "progress tick")
	flags.DurationVar(&opts.maxTime, "max-duration", 0, "race timeout (0 disables)")
	flags.StringVar(&opts.store, "store", "", "record results to this SQLite file")
	flags.BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log race events")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	ghosts, err := parseGhosts(opts.ghosts)
	if err != nil {
		return err
	}

	var sink results.Sink
	if opts.store != "" {
		store, err := results.OpenSQLite(opts.store)
		if err != nil {
			return err
		}
		defer store.Close()
		sink = store
	}

	res, err := simulate(ctx, simConfig{
		Seed:          opts.seed,
		Ghosts:        ghosts,
		PromptText:    opts.prompt,
		PromptWords:   opts.words,
		FactionsPath:  opts.factions,
		Countdown:     opts.countdown,
		Tick:          opts.tick,
		MaxDuration:   opts.maxTime,
		Sink:          sink,
		VerboseEvents: opts.verbose,
	})
	if err != nil {
		return err
	}

	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printTable(out, res)
}

func parseGhosts(specs []string) ([]ghost, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --ghost is required")
	}
	ghosts := make([]ghost, 0, len(specs))
	for i, spec := range specs {
		faction, diff, _ := strings.Cut(spec, ":")
		d := models.Difficulty(strings.ToUpper(strings.TrimSpace(diff)))
		switch d {
		case "":
			d = models.DifficultyMedium
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			return nil, fmt.Errorf("ghost %q: unknown difficulty %q", spec, diff)
		}
		ghosts = append(ghosts, ghost{
			ID:         fmt.Sprintf("ghost-%d", i+1),
			Faction:    strings.TrimSpace(faction),
			Difficulty: d,
		})
	}
	return ghosts, nil
}

func printTable(out io.Writer, res *simResult) error {
	fmt.Fprintf(out, "session %s  seed %d  prompt %d chars\n\n", res.SessionID, res.Seed, res.PromptLength)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tPARTICIPANT\tFACTION\tWPM\tTIME\tREWARD")
	for _, r := range res.Results {
		pos, finish := "DNF", "-"
		if !r.DNF {
			pos = fmt.Sprintf("%d", r.Position)
			finish = fmt.Sprintf("%.2fs", *r.FinishTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%d\n", pos, r.DisplayName, r.Faction, r.Speed, finish, r.RewardAmount)
	}
	return w.Flush()
}
