package main

import (
	"os"
	"time"

	"github.com/idfm-prim/idfm/pkg/api"
	"github.com/idfm-prim/idfm/pkg/commands"
	"github.com/idfm-prim/idfm/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("IDFM_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("IDFM_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "idfm",
		Usage:       "Île-de-France Mobilités journeys, places and incidents from the PRIM API",
		Description: "Resolves free-text places to stop areas, plans journeys and lists disruptions",

		Flags: append(config.Flags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "print the raw API document instead of a summary",
		}),

		Commands: append(commands.RegisterCLI(), api.RegisterCLI()),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
