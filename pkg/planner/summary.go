package planner

import (
	"strings"

	"github.com/idfm-prim/idfm/pkg/navitia"
	"github.com/idfm-prim/idfm/pkg/util"
)

const legSeparator = " - "

type JourneySummary struct {
	Departure       navitia.DateTime `json:"departure" groups:"basic"`
	Arrival         navitia.DateTime `json:"arrival" groups:"basic"`
	DurationSeconds int              `json:"duration_s" groups:"basic"`

	Legs []string `json:"legs" groups:"basic"`
}

func SummarizeJourney(journey *navitia.Journey) JourneySummary {
	if journey == nil {
		return JourneySummary{Legs: []string{}}
	}

	summary := JourneySummary{
		Departure:       journey.DepartureDateTime,
		Arrival:         journey.ArrivalDateTime,
		DurationSeconds: journey.Duration,
		Legs:            make([]string, 0, len(journey.Sections)),
	}

	for _, section := range journey.Sections {
		summary.Legs = append(summary.Legs, DescribeSection(section))
	}

	return summary
}

// SummarizeJourneys keeps response order and stops after limit summaries when limit is positive
func SummarizeJourneys(journeys []*navitia.Journey, limit int) []JourneySummary {
	if limit > 0 && len(journeys) > limit {
		journeys = journeys[:limit]
	}

	summaries := make([]JourneySummary, 0, len(journeys))
	for _, journey := range journeys {
		summaries = append(summaries, SummarizeJourney(journey))
	}

	return summaries
}

// DescribeSection returns an empty string for a section with nothing to show
func DescribeSection(section *navitia.Section) string {
	if section == nil {
		return ""
	}

	var displayName string
	if info := section.DisplayInformations; info != nil {
		displayName = util.JoinNonEmpty(" ", info.CommercialMode, info.Label, info.Direction)
	}

	return util.JoinNonEmpty(legSeparator, section.Type, strings.ToUpper(section.Mode), displayName)
}
