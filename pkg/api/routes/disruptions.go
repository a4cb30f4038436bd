package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/idfm-prim/idfm/pkg/planner"
)

func DisruptionsRouter(router fiber.Router, journeyPlanner *planner.Planner) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listDisruptions(c, journeyPlanner)
	})
	router.Get("/line/:identifier", func(c *fiber.Ctx) error {
		return listLineDisruptions(c, journeyPlanner)
	})
}

func listDisruptions(c *fiber.Ctx, journeyPlanner *planner.Planner) error {
	report, err := journeyPlanner.Incidents(c.UserContext(), c.Query("line_id"), c.Query("filter"))
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendView(c, report)
}

func listLineDisruptions(c *fiber.Ctx, journeyPlanner *planner.Planner) error {
	report, err := journeyPlanner.Incidents(c.UserContext(), c.Params("identifier"), "")
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendView(c, report)
}
