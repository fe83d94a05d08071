package cmd

import (
	"fmt"
	"io"
	"strings"

	"junqi/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Inspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Pretty-print a serialized round read from stdin",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`inspect decodes one serialized round from standard input
			and draws the board, one cell per column from x=0 on the
			left and y=10 at the top. Each unit shows its identity id
			and its group; withheld identities show as '?'.

			With --moves the legal moves of the group to move are
			listed as well.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			r, err := game.DeserializeView(strings.TrimSpace(string(payload)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render(r.Board()))
			fmt.Fprintf(out, "round %d, group %d (%v) to move, %v\n",
				r.RoundCount(), r.GroupToMove(), r.GroupToMove().Owner(), r.Status())
			if last, ok := r.LastMove(); ok {
				fmt.Fprintf(out, "last move %v\n", last)
			}
			if moves, _ := cmd.Flags().GetBool("moves"); moves {
				for _, m := range r.LegalMoves() {
					fmt.Fprintln(out, m)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("moves", "m", false, "List the legal moves")
	return cmd
}

func render(b *game.Board) string {
	var sb strings.Builder
	for y := 10; y >= 0; y-- {
		for x := 0; x <= 10; x++ {
			if !game.IsValid(x, y) {
				sb.WriteString("   ")
				continue
			}
			u := b.At(game.NewCoordinate(x, y))
			switch {
			case u == nil:
				sb.WriteString(" . ")
			case u.Identity == game.Unknown:
				fmt.Fprintf(&sb, " ?%d", u.Group)
			default:
				fmt.Fprintf(&sb, " %d%d", u.Identity.ID(), u.Group)
			}
		}
		sb.WriteString("\n")
	}
	if n := len(b.Outcasts()); n > 0 {
		fmt.Fprintf(&sb, "%d outcasts\n", n)
	}
	return sb.String()
}
