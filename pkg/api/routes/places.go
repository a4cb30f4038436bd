package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/idfm-prim/idfm/pkg/planner"
)

func PlacesRouter(router fiber.Router, journeyPlanner *planner.Planner) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchPlaces(c, journeyPlanner)
	})
}

func searchPlaces(c *fiber.Ctx, journeyPlanner *planner.Planner) error {
	query := c.Query("q")
	if query == "" {
		return sendError(c, fiber.StatusBadRequest, "Parameter q is required")
	}

	count, err := queryCount(c, 5)
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	search, err := journeyPlanner.SearchPlaces(c.UserContext(), query, count)
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendView(c, search)
}
