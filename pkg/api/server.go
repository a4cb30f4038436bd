package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/idfm-prim/idfm/pkg/api/routes"
	"github.com/idfm-prim/idfm/pkg/planner"
)

func NewApp(journeyPlanner *planner.Planner) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlacesRouter(group.Group("/places"), journeyPlanner)
	routes.JourneysRouter(group.Group("/journeys"), journeyPlanner)
	routes.DisruptionsRouter(group.Group("/disruptions"), journeyPlanner)

	return webApp
}

func SetupServer(listen string, journeyPlanner *planner.Planner) error {
	return NewApp(journeyPlanner).Listen(listen)
}
