package render

import (
	"fmt"
	"io"

	"github.com/idfm-prim/idfm/pkg/planner"
)

func Places(w io.Writer, search *planner.PlaceSearch) error {
	if search.Best == nil {
		_, err := fmt.Fprintln(w, "No results")
		return err
	}

	best := search.Best
	if _, err := fmt.Fprintf(w, "best: %s (%s / %s)\n", best.Name, best.EmbeddedType, best.ID); err != nil {
		return err
	}

	for _, place := range search.Places {
		if _, err := fmt.Fprintf(w, "- %s\t%s\t%s\n", place.Name, place.EmbeddedType, place.ID); err != nil {
			return err
		}
	}

	return nil
}

func JourneyPlan(w io.Writer, plan *planner.JourneyPlan) error {
	if _, err := fmt.Fprintf(w, "from: %s (%s)\n", plan.Origin.Name, plan.Origin.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "to:   %s (%s)\n", plan.Destination.Name, plan.Destination.ID); err != nil {
		return err
	}

	if len(plan.Journeys) == 0 {
		_, err := fmt.Fprintln(w, "No journeys")
		return err
	}

	for i, summary := range plan.Journeys {
		_, err := fmt.Fprintf(w, "\n#%d dep=%s arr=%s dur=%ds\n", i+1, summary.Departure, summary.Arrival, summary.DurationSeconds)
		if err != nil {
			return err
		}

		for _, leg := range summary.Legs {
			if _, err := fmt.Fprintf(w, "  %s\n", leg); err != nil {
				return err
			}
		}
	}

	return nil
}

func Incidents(w io.Writer, report *planner.IncidentReport) error {
	if len(report.Lines) == 0 {
		_, err := fmt.Fprintln(w, "No disruptions")
		return err
	}

	for _, line := range report.Lines {
		if _, err := fmt.Fprintf(w, "- %s\n", line); err != nil {
			return err
		}
	}

	return nil
}
