package planner

import (
	"context"

	"github.com/idfm-prim/idfm/pkg/navitia"
)

// Gateway is the subset of the PRIM API the planner depends on
type Gateway interface {
	Places(ctx context.Context, query string, count int) (*navitia.PlacesResponse, error)
	Journeys(ctx context.Context, fromID string, toID string, count int) (*navitia.JourneysResponse, error)
	Disruptions(ctx context.Context, filter string) (*navitia.DisruptionsResponse, error)
}
