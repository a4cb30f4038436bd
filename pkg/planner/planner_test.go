package planner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/idfm-prim/idfm/pkg/navitia"
	"github.com/idfm-prim/idfm/pkg/prim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway is a hand-written Gateway double that counts calls
type stubGateway struct {
	mu sync.Mutex

	places      map[string][]*navitia.Place
	placesErr   error
	journeys    []*navitia.Journey
	journeysErr error
	disruptions []*navitia.Disruption

	placeQueries  []string
	journeyCalls  []journeyCall
	disruptionsIn []string
}

type journeyCall struct {
	from  string
	to    string
	count int
}

var _ Gateway = (*stubGateway)(nil)

func (s *stubGateway) Places(_ context.Context, query string, _ int) (*navitia.PlacesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.placeQueries = append(s.placeQueries, query)
	if s.placesErr != nil {
		return nil, s.placesErr
	}

	return &navitia.PlacesResponse{Places: s.places[query]}, nil
}

func (s *stubGateway) Journeys(_ context.Context, fromID string, toID string, count int) (*navitia.JourneysResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.journeyCalls = append(s.journeyCalls, journeyCall{from: fromID, to: toID, count: count})
	if s.journeysErr != nil {
		return nil, s.journeysErr
	}

	return &navitia.JourneysResponse{Journeys: s.journeys}, nil
}

func (s *stubGateway) Disruptions(_ context.Context, filter string) (*navitia.DisruptionsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disruptionsIn = append(s.disruptionsIn, filter)
	return &navitia.DisruptionsResponse{Disruptions: s.disruptions}, nil
}

func parisPlaces() map[string][]*navitia.Place {
	return map[string][]*navitia.Place{
		"Châtelet": {
			{ID: "admin:fr:75056", Name: "Paris 1er", EmbeddedType: navitia.PlaceTypeAdministrativeRegion},
			{ID: "stop_area:IDFM:71264", Name: "Châtelet", EmbeddedType: navitia.PlaceTypeStopArea},
		},
		"Gare de Lyon": {
			{ID: "poi:osm:node:1", Name: "Gare de Lyon", EmbeddedType: navitia.PlaceTypePOI},
			{ID: "stop_area:IDFM:73626", Name: "Gare de Lyon", EmbeddedType: navitia.PlaceTypeStopArea},
		},
	}
}

func TestPlanJourney(t *testing.T) {
	gateway := &stubGateway{
		places: parisPlaces(),
		journeys: []*navitia.Journey{
			{
				Duration: 540,
				Sections: []*navitia.Section{
					{
						Type: "public_transport",
						Mode: "RER",
						DisplayInformations: &navitia.DisplayInformations{
							CommercialMode: "RER",
							Label:          "A",
							Direction:      "Boissy",
						},
					},
					{Type: "walking"},
				},
			},
		},
	}

	plan, err := New(gateway).PlanJourney(context.Background(), "Châtelet", "Gare de Lyon", 1)
	require.NoError(t, err)

	assert.Equal(t, "stop_area:IDFM:71264", plan.Origin.ID)
	assert.Equal(t, "stop_area:IDFM:73626", plan.Destination.ID)

	require.Len(t, gateway.journeyCalls, 1)
	assert.Equal(t, journeyCall{from: "stop_area:IDFM:71264", to: "stop_area:IDFM:73626", count: 1}, gateway.journeyCalls[0])

	require.Len(t, plan.Journeys, 1)
	assert.Equal(t, []string{"public_transport - RER - RER A Boissy", "walking"}, plan.Journeys[0].Legs)
	assert.Equal(t, 540, plan.Journeys[0].DurationSeconds)
}

func TestPlanJourneyTruncatesToCount(t *testing.T) {
	gateway := &stubGateway{
		places:   parisPlaces(),
		journeys: []*navitia.Journey{{Duration: 10}, {Duration: 20}, {Duration: 30}},
	}

	plan, err := New(gateway).PlanJourney(context.Background(), "Châtelet", "Gare de Lyon", 2)
	require.NoError(t, err)

	require.Len(t, plan.Journeys, 2)
	assert.Equal(t, 10, plan.Journeys[0].DurationSeconds)
	assert.Equal(t, 20, plan.Journeys[1].DurationSeconds)
}

func TestPlanJourneyUnresolvedOrigin(t *testing.T) {
	gateway := &stubGateway{places: parisPlaces()}

	plan, err := New(gateway).PlanJourney(context.Background(), "Nowhere", "Gare de Lyon", 1)

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrUnresolvedPlace)

	var resolutionError *ResolutionError
	require.True(t, errors.As(err, &resolutionError))
	assert.Equal(t, PlaceRoleOrigin, resolutionError.Role)
	assert.Equal(t, "Nowhere", resolutionError.Query)

	assert.Len(t, gateway.placeQueries, 2)
	assert.Empty(t, gateway.journeyCalls)
}

func TestPlanJourneyUnresolvedDestination(t *testing.T) {
	gateway := &stubGateway{places: parisPlaces()}

	_, err := New(gateway).PlanJourney(context.Background(), "Châtelet", "Nowhere", 1)

	var resolutionError *ResolutionError
	require.True(t, errors.As(err, &resolutionError))
	assert.Equal(t, PlaceRoleDestination, resolutionError.Role)
	assert.Empty(t, gateway.journeyCalls)
}

func TestPlanJourneyPropagatesGatewayError(t *testing.T) {
	gatewayError := &prim.GatewayError{Path: "journeys", StatusCode: 503}
	gateway := &stubGateway{places: parisPlaces(), journeysErr: gatewayError}

	_, err := New(gateway).PlanJourney(context.Background(), "Châtelet", "Gare de Lyon", 1)

	assert.ErrorIs(t, err, prim.ErrGateway)

	var unwrapped *prim.GatewayError
	require.True(t, errors.As(err, &unwrapped))
	assert.Same(t, gatewayError, unwrapped)
}

func TestPlanJourneyPlaceSearchError(t *testing.T) {
	gateway := &stubGateway{placesErr: &prim.GatewayError{Path: "places", StatusCode: 401}}

	_, err := New(gateway).PlanJourney(context.Background(), "Châtelet", "Gare de Lyon", 1)

	assert.ErrorIs(t, err, prim.ErrGateway)
	assert.NotErrorIs(t, err, ErrUnresolvedPlace)
	assert.Empty(t, gateway.journeyCalls)
}

func TestSearchPlaces(t *testing.T) {
	gateway := &stubGateway{places: parisPlaces()}

	search, err := New(gateway).SearchPlaces(context.Background(), "Gare de Lyon", 1)
	require.NoError(t, err)

	assert.Equal(t, "stop_area:IDFM:73626", search.Best.ID)
	require.Len(t, search.Places, 1)
	assert.Equal(t, "poi:osm:node:1", search.Places[0].ID)
}

func TestSearchPlacesNoResults(t *testing.T) {
	search, err := New(&stubGateway{}).SearchPlaces(context.Background(), "zzz", 5)
	require.NoError(t, err)

	assert.Nil(t, search.Best)
	assert.NotNil(t, search.Places)
	assert.Empty(t, search.Places)
}

func TestIncidents(t *testing.T) {
	gateway := &stubGateway{
		disruptions: []*navitia.Disruption{
			{Status: "active", Severity: &navitia.Severity{Name: "information"}, Messages: []navitia.Message{{Text: "one"}}},
			{Status: "active", Severity: &navitia.Severity{Name: "blocking"}, Messages: []navitia.Message{{Text: "two"}}},
			{Status: "future", Messages: []navitia.Message{{Text: "three"}}},
		},
	}

	report, err := New(gateway).Incidents(context.Background(), "line:IDFM:C01742", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"line.id=line:IDFM:C01742"}, gateway.disruptionsIn)
	assert.Equal(t, []string{
		"[active] information: one",
		"[active] blocking: two",
		"[future] n/a: three",
	}, report.Lines)
}

func TestIncidentsWithoutFilter(t *testing.T) {
	gateway := &stubGateway{}

	_, err := New(gateway).Incidents(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrMissingFilter)
	assert.Empty(t, gateway.disruptionsIn)
}
