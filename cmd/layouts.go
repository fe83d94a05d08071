package cmd

import (
	"fmt"

	"junqi/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func Layouts() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Count or sample the valid group layouts",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`layouts enumerates every arrangement of one group's eleven
			units that respects the per-slot tables and the army quota,
			and prints how many there are.

			With --sample N it instead prints N layouts drawn uniformly
			from that universe, one per line, in the wire form used by
			the engine: identity ids listed front row first.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, _ := cmd.Flags().GetInt("sample")
			seed, _ := cmd.Flags().GetUint64("seed")

			if sample <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), len(game.AllLayouts()))
				return nil
			}

			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < sample; i++ {
				data, err := game.RandomGroupLayout(rng).MarshalJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}
			return nil
		},
	}

	cmd.Flags().IntP("sample", "n", 0, "Print N random layouts instead of the count")
	cmd.Flags().Uint64("seed", 1, "Seed for --sample")
	return cmd
}
