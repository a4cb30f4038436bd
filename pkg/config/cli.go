package config

import (
	"github.com/urfave/cli/v2"
)

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML config file",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "PRIM API key, overrides IDFM_PRIM_API_KEY",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Navitia base URL on the PRIM marketplace",
		},
	}
}

func FromContext(c *cli.Context) (Config, error) {
	return Load(c.String("config"), Overrides{
		APIKey:  c.String("api-key"),
		BaseURL: c.String("base-url"),
		Listen:  c.String("listen"),
	})
}
