package planner

import (
	"github.com/idfm-prim/idfm/pkg/navitia"
	"golang.org/x/exp/slices"
)

// ResolvePlace picks the first stop area in gateway order, falling back to the
// top result. The returned pointer is one of the inputs, never a copy.
func ResolvePlace(places []*navitia.Place) *navitia.Place {
	if len(places) == 0 {
		return nil
	}

	stopAreaIndex := slices.IndexFunc(places, func(place *navitia.Place) bool {
		return place.IsStopArea()
	})

	if stopAreaIndex >= 0 {
		return places[stopAreaIndex]
	}

	return places[0]
}
