package cmd

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "junqi",
		Short: "Four-group Junqi rule engine and self-play harness",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})
			switch {
			case cmd.Flag("trace").Changed:
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			case cmd.Flag("quiet").Changed:
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("quiet", "q", false, "Only Show Warnings and Errors")

	root.AddCommand(Layouts())
	root.AddCommand(SelfPlay())
	root.AddCommand(Inspect())

	return root
}

// levelOverridden reports whether the log level was set on the command line.
func levelOverridden(cmd *cobra.Command) bool {
	return cmd.Flag("trace").Changed || cmd.Flag("quiet").Changed
}
