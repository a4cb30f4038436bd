package navitia

const (
	SectionTypePublicTransport = "public_transport"
	SectionTypeStreetNetwork   = "street_network"
	SectionTypeWalking         = "walking"
	SectionTypeWaiting         = "waiting"
	SectionTypeTransfer        = "transfer"
)

type Journey struct {
	DepartureDateTime DateTime `json:"departure_date_time" groups:"basic"`
	ArrivalDateTime   DateTime `json:"arrival_date_time" groups:"basic"`

	// Duration is in seconds, as sent by the API
	Duration int `json:"duration" groups:"basic"`

	Sections []*Section `json:"sections" groups:"detailed"`
}

type Section struct {
	Type string `json:"type" groups:"basic"`
	Mode string `json:"mode,omitempty" groups:"basic"`

	DisplayInformations *DisplayInformations `json:"display_informations,omitempty" groups:"basic"`
}

type DisplayInformations struct {
	CommercialMode string `json:"commercial_mode,omitempty" groups:"basic"`
	Label          string `json:"label,omitempty" groups:"basic"`
	Direction      string `json:"direction,omitempty" groups:"basic"`
}

type JourneysResponse struct {
	Journeys []*Journey `json:"journeys"`
}
