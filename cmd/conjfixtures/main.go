package main

import (
	"os"

	"github.com/arabdict/conjfixtures/internal/cli"
	"github.com/arabdict/conjfixtures/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup(false)

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("conjfixtures failed")
		os.Exit(1)
	}
}
