package planner

import (
	"testing"

	"github.com/idfm-prim/idfm/pkg/navitia"
	"github.com/stretchr/testify/assert"
)

func TestResolvePlaceFirstStopArea(t *testing.T) {
	address := &navitia.Place{ID: "address:1", Name: "Châtelet", EmbeddedType: navitia.PlaceTypeAddress}
	first := &navitia.Place{ID: "stop_area:IDFM:71264", Name: "Châtelet", EmbeddedType: navitia.PlaceTypeStopArea}
	second := &navitia.Place{ID: "stop_area:IDFM:474151", Name: "Châtelet - Les Halles", EmbeddedType: navitia.PlaceTypeStopArea}

	resolved := ResolvePlace([]*navitia.Place{address, first, second})

	assert.Same(t, first, resolved)
}

func TestResolvePlaceFallsBackToFirst(t *testing.T) {
	poi := &navitia.Place{ID: "poi:1", Name: "Musée du Louvre", EmbeddedType: navitia.PlaceTypePOI}
	address := &navitia.Place{ID: "address:2", Name: "Rue de Rivoli", EmbeddedType: navitia.PlaceTypeAddress}

	resolved := ResolvePlace([]*navitia.Place{poi, address})

	assert.Same(t, poi, resolved)
	assert.Equal(t, navitia.Place{ID: "poi:1", Name: "Musée du Louvre", EmbeddedType: navitia.PlaceTypePOI}, *resolved)
}

func TestResolvePlaceEmpty(t *testing.T) {
	assert.Nil(t, ResolvePlace(nil))
	assert.Nil(t, ResolvePlace([]*navitia.Place{}))
}

func TestResolvePlaceSkipsNilEntries(t *testing.T) {
	stopArea := &navitia.Place{ID: "stop_area:1", EmbeddedType: navitia.PlaceTypeStopArea}

	assert.Same(t, stopArea, ResolvePlace([]*navitia.Place{nil, stopArea}))
}
