package planner

import (
	"fmt"

	"github.com/idfm-prim/idfm/pkg/navitia"
)

// AbsentMarker stands in for a severity or message the API did not send
const AbsentMarker = "n/a"

func FormatDisruptions(disruptions []*navitia.Disruption) []string {
	lines := make([]string, 0, len(disruptions))

	for _, disruption := range disruptions {
		lines = append(lines, FormatDisruption(disruption))
	}

	return lines
}

func FormatDisruption(disruption *navitia.Disruption) string {
	if disruption == nil {
		return fmt.Sprintf("[%s] %s: %s", AbsentMarker, AbsentMarker, AbsentMarker)
	}

	severity := disruption.SeverityName()
	if severity == "" {
		severity = AbsentMarker
	}

	message, ok := disruption.FirstMessage()
	if !ok {
		message = AbsentMarker
	}

	return fmt.Sprintf("[%s] %s: %s", disruption.Status, severity, message)
}

// DisruptionFilter builds the Navitia filter expression, a line id taking precedence
func DisruptionFilter(lineID string, filter string) (string, error) {
	if lineID != "" {
		return fmt.Sprintf("line.id=%s", lineID), nil
	}

	if filter == "" {
		return "", ErrMissingFilter
	}

	return filter, nil
}
