package navitia

type PlaceType string

const (
	PlaceTypeStopArea             PlaceType = "stop_area"
	PlaceTypeStopPoint            PlaceType = "stop_point"
	PlaceTypeAddress              PlaceType = "address"
	PlaceTypePOI                  PlaceType = "poi"
	PlaceTypeAdministrativeRegion PlaceType = "administrative_region"
)

type Place struct {
	ID           string    `json:"id" groups:"basic"`
	Name         string    `json:"name" groups:"basic"`
	EmbeddedType PlaceType `json:"embedded_type" groups:"basic"`

	Quality int `json:"quality,omitempty" groups:"detailed"`
}

func (p *Place) IsStopArea() bool {
	return p != nil && p.EmbeddedType == PlaceTypeStopArea
}

type PlacesResponse struct {
	Places []*Place `json:"places"`
}
