package commands

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/idfm-prim/idfm/pkg/config"
	"github.com/idfm-prim/idfm/pkg/planner"
	"github.com/idfm-prim/idfm/pkg/prim"
	"github.com/idfm-prim/idfm/pkg/render"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "places",
			Usage:     "Search places and show the best match",
			ArgsUsage: "<query>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "count",
					Value: 5,
					Usage: "number of places to request",
				},
			},
			Action: places,
		},
		{
			Name:  "journeys",
			Usage: "Plan journeys between two free-text places",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "from",
					Required: true,
					Usage:    "origin query",
				},
				&cli.StringFlag{
					Name:     "to",
					Required: true,
					Usage:    "destination query",
				},
				&cli.IntFlag{
					Name:  "count",
					Value: 3,
					Usage: "number of journeys to request",
				},
			},
			Action: journeys,
		},
		{
			Name:  "incidents",
			Usage: "List disruptions for a line or a Navitia filter",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "line-id",
					Usage: "line identifier, eg. line:IDFM:C01742",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "raw Navitia filter expression",
				},
			},
			Action: incidents,
		},
	}
}

func newClient(c *cli.Context) (*prim.Client, error) {
	cfg, err := config.FromContext(c)
	if err != nil {
		return nil, err
	}

	return prim.NewClient(cfg.ClientOptions())
}

func places(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("places requires a query argument")
	}
	count := c.Int("count")

	client, err := newClient(c)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		document, err := client.Raw(c.Context, "places", url.Values{
			"q":     {query},
			"count": {strconv.Itoa(count)},
		})
		if err != nil {
			return err
		}

		return render.RawJSON(c.App.Writer, document)
	}

	search, err := planner.New(client).SearchPlaces(c.Context, query, count)
	if err != nil {
		return err
	}

	return render.Places(c.App.Writer, search)
}

func journeys(c *cli.Context) error {
	count := c.Int("count")

	client, err := newClient(c)
	if err != nil {
		return err
	}
	journeyPlanner := planner.New(client)

	if c.Bool("json") {
		origin, destination, err := journeyPlanner.ResolveEndpoints(c.Context, c.String("from"), c.String("to"))
		if err != nil {
			return err
		}

		document, err := client.Raw(c.Context, "journeys", url.Values{
			"from":  {origin.ID},
			"to":    {destination.ID},
			"count": {strconv.Itoa(count)},
		})
		if err != nil {
			return err
		}

		return render.RawJSON(c.App.Writer, document)
	}

	plan, err := journeyPlanner.PlanJourney(c.Context, c.String("from"), c.String("to"), count)
	if err != nil {
		return err
	}

	return render.JourneyPlan(c.App.Writer, plan)
}

func incidents(c *cli.Context) error {
	filter, err := planner.DisruptionFilter(c.String("line-id"), c.String("filter"))
	if err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		document, err := client.Raw(c.Context, "disruptions", url.Values{"filter": {filter}})
		if err != nil {
			return err
		}

		return render.RawJSON(c.App.Writer, document)
	}

	report, err := planner.New(client).Incidents(c.Context, "", filter)
	if err != nil {
		return err
	}

	return render.Incidents(c.App.Writer, report)
}
