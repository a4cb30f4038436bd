package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/idfm-prim/idfm/pkg/planner"
	"github.com/idfm-prim/idfm/pkg/prim"
	"github.com/rs/zerolog/log"
)

func sendError(c *fiber.Ctx, status int, message string) error {
	c.Status(status)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

// sendLookupError maps planner and gateway failures onto HTTP statuses
func sendLookupError(c *fiber.Ctx, err error) error {
	var gatewayError *prim.GatewayError

	switch {
	case errors.Is(err, planner.ErrUnresolvedPlace):
		return sendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrMissingFilter):
		return sendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &gatewayError):
		log.Error().Err(err).Int("upstream_status", gatewayError.StatusCode).Msg("PRIM request failed")
		return sendError(c, fiber.StatusBadGateway, err.Error())
	default:
		return sendError(c, fiber.StatusInternalServerError, err.Error())
	}
}
