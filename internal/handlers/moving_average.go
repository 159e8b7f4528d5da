package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/models"
)

// GetMovingAverage handles moving-average requests
// GET /v1/rates/moving-average?window=30&start_date=...&end_date=...
func (h *Handler) GetMovingAverage(c *fiber.Ctx) error {
	window := h.analyticsCfg.DefaultWindow
	if windowStr := c.Query("window"); windowStr != "" {
		parsed, err := strconv.Atoi(windowStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_WINDOW",
					Message: "window must be an integer",
				},
			})
		}
		// Non-positive windows pass through: the core answers with every
		// average undefined rather than an error.
		window = parsed
	}

	points, err := h.rateService.GetMovingAverage(window, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewMovingAverageResponse(points, window))
}
