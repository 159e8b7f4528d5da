package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/models"
)

// GetVariations handles extreme-variation requests
// GET /v1/rates/variations?threshold=1.0&start_date=...&end_date=...
func (h *Handler) GetVariations(c *fiber.Ctx) error {
	threshold := h.analyticsCfg.DefaultThreshold
	if thresholdStr := c.Query("threshold"); thresholdStr != "" {
		parsed, err := strconv.ParseFloat(thresholdStr, 64)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_THRESHOLD",
					Message: "threshold must be a non-negative number",
				},
			})
		}
		threshold = parsed
	}

	variations, err := h.rateService.GetVariations(threshold, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewVariationsResponse(variations, threshold))
}
