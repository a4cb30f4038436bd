package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

// sendView serialises only the basic group unless ?detailed=true is set
func sendView(c *fiber.Ctx, value interface{}) error {
	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(reduced)
}

func queryCount(c *fiber.Ctx, fallback int) (int, error) {
	count := c.QueryInt("count", fallback)
	if count <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter count should be a positive integer")
	}

	return count, nil
}
