package main

import (
	"os"

	"junqi/cmd"

	"github.com/rs/zerolog/log"
)

func main() {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("junqi")
	}
}
