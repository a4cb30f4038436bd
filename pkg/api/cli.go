package api

import (
	"github.com/idfm-prim/idfm/pkg/config"
	"github.com/idfm-prim/idfm/pkg/planner"
	"github.com/idfm-prim/idfm/pkg/prim"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server (default :8080)",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}

					client, err := prim.NewClient(cfg.ClientOptions())
					if err != nil {
						return err
					}

					log.Info().Str("listen", cfg.Listen).Str("base_url", cfg.BaseURL).Msg("Starting web API")

					return SetupServer(cfg.Listen, planner.New(client))
				},
			},
		},
	}
}
