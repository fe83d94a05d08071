package cmd

import (
	"fmt"
	"slices"

	"junqi/config"
	"junqi/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play a batch of random-vs-random games and record them",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`selfplay plays games between two random agents with the
			settings from --config (or the defaults when no file is
			given) and writes agent, game and move records as CSV into
			a fresh timestamped directory under the output directory.

			Flags given on the command line override the file.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flag("games").Changed {
				cfg.Games, _ = cmd.Flags().GetInt("games")
			}
			if cmd.Flag("seed").Changed {
				cfg.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			if cmd.Flag("output").Changed {
				cfg.OutputDir, _ = cmd.Flags().GetString("output")
			}
			if cmd.Flag("liveness").Changed {
				cfg.Liveness, _ = cmd.Flags().GetString("liveness")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !levelOverridden(cmd) {
				zerolog.SetGlobalLevel(cfg.Level())
			}
			log.Debug().Msgf("config: %+v", cfg)

			summary, err := experiments.Run(cfg)
			if err != nil {
				return err
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "YAML configuration file")
	cmd.Flags().IntP("games", "g", 0, "Number of games to play")
	cmd.Flags().Uint64("seed", 0, "Base seed of the agents")
	cmd.Flags().StringP("output", "o", "", "Directory the records are written under")
	cmd.Flags().String("liveness", "", "Liveness rule: presence or mobility")
	return cmd
}

func printSummary(cmd *cobra.Command, s experiments.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records:   %s\n", s.Dir)
	fmt.Fprintf(out, "games:     %d\n", s.Games)
	winners := make([]string, 0, len(s.Wins))
	for w := range s.Wins {
		winners = append(winners, w)
	}
	slices.Sort(winners)
	for _, w := range winners {
		fmt.Fprintf(out, "  %-8s %d\n", w, s.Wins[w])
	}
	fmt.Fprintf(out, "undecided: %d\n", s.Undecided)
	fmt.Fprintf(out, "stalled:   %d\n", s.Stalled)
	fmt.Fprintf(out, "moves/s:   %.0f\n", s.MovesPerSecond)
	fmt.Fprintf(out, "length:    %.1f\n", s.MeanGameLength)
}
