package planner

import (
	"context"
	"fmt"

	"github.com/idfm-prim/idfm/pkg/navitia"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// PlaceSearchCount is how many candidates are requested when resolving a journey endpoint
const PlaceSearchCount = 5

type Planner struct {
	Gateway Gateway
}

func New(gateway Gateway) *Planner {
	return &Planner{Gateway: gateway}
}

type JourneyPlan struct {
	Origin      *navitia.Place `json:"from" groups:"basic"`
	Destination *navitia.Place `json:"to" groups:"basic"`

	Journeys []JourneySummary `json:"journeys" groups:"basic"`
}

type PlaceSearch struct {
	Query  string           `json:"query" groups:"basic"`
	Best   *navitia.Place   `json:"best" groups:"basic"`
	Places []*navitia.Place `json:"places" groups:"basic"`
}

type IncidentReport struct {
	Filter      string                `json:"filter" groups:"basic"`
	Lines       []string              `json:"lines" groups:"basic"`
	Disruptions []*navitia.Disruption `json:"disruptions" groups:"detailed"`
}

// PlanJourney resolves both queries then summarises at most count journeys between them
func (p *Planner) PlanJourney(ctx context.Context, fromQuery string, toQuery string, count int) (*JourneyPlan, error) {
	origin, destination, err := p.ResolveEndpoints(ctx, fromQuery, toQuery)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("from", origin.ID).
		Str("to", destination.ID).
		Int("count", count).
		Msg("Resolved journey endpoints")

	response, err := p.Gateway.Journeys(ctx, origin.ID, destination.ID, count)
	if err != nil {
		return nil, fmt.Errorf("journey search: %w", err)
	}

	return &JourneyPlan{
		Origin:      origin,
		Destination: destination,
		Journeys:    SummarizeJourneys(response.Journeys, count),
	}, nil
}

// ResolveEndpoints runs both place searches concurrently. An origin failure is reported ahead of a destination one.
func (p *Planner) ResolveEndpoints(ctx context.Context, fromQuery string, toQuery string) (*navitia.Place, *navitia.Place, error) {
	var origin, destination *navitia.Place
	var originErr, destinationErr error

	var wg conc.WaitGroup
	wg.Go(func() {
		origin, originErr = p.resolve(ctx, PlaceRoleOrigin, fromQuery)
	})
	wg.Go(func() {
		destination, destinationErr = p.resolve(ctx, PlaceRoleDestination, toQuery)
	})
	wg.Wait()

	if originErr != nil {
		return nil, nil, originErr
	}
	if destinationErr != nil {
		return nil, nil, destinationErr
	}

	return origin, destination, nil
}

func (p *Planner) resolve(ctx context.Context, role PlaceRole, query string) (*navitia.Place, error) {
	response, err := p.Gateway.Places(ctx, query, PlaceSearchCount)
	if err != nil {
		return nil, fmt.Errorf("%s place search: %w", role, err)
	}

	place := ResolvePlace(response.Places)
	if place == nil {
		return nil, &ResolutionError{Role: role, Query: query}
	}

	return place, nil
}

func (p *Planner) SearchPlaces(ctx context.Context, query string, count int) (*PlaceSearch, error) {
	response, err := p.Gateway.Places(ctx, query, count)
	if err != nil {
		return nil, fmt.Errorf("place search: %w", err)
	}

	places := response.Places
	if count > 0 && len(places) > count {
		places = places[:count]
	}
	if places == nil {
		places = []*navitia.Place{}
	}

	return &PlaceSearch{
		Query:  query,
		Best:   ResolvePlace(response.Places),
		Places: places,
	}, nil
}

func (p *Planner) Incidents(ctx context.Context, lineID string, filter string) (*IncidentReport, error) {
	expression, err := DisruptionFilter(lineID, filter)
	if err != nil {
		return nil, err
	}

	response, err := p.Gateway.Disruptions(ctx, expression)
	if err != nil {
		return nil, fmt.Errorf("disruption search: %w", err)
	}

	disruptions := response.Disruptions
	if disruptions == nil {
		disruptions = []*navitia.Disruption{}
	}

	return &IncidentReport{
		Filter:      expression,
		Lines:       FormatDisruptions(disruptions),
		Disruptions: disruptions,
	}, nil
}
