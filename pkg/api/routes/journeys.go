package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/idfm-prim/idfm/pkg/planner"
)

func JourneysRouter(router fiber.Router, journeyPlanner *planner.Planner) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getJourneyPlan(c, journeyPlanner)
	})
}

func getJourneyPlan(c *fiber.Ctx, journeyPlanner *planner.Planner) error {
	fromQuery := c.Query("from")
	toQuery := c.Query("to")

	if fromQuery == "" || toQuery == "" {
		return sendError(c, fiber.StatusBadRequest, "Parameters from and to are required")
	}

	count, err := queryCount(c, 3)
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	plan, err := journeyPlanner.PlanJourney(c.UserContext(), fromQuery, toQuery, count)
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendView(c, plan)
}
