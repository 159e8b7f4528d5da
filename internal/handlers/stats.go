package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/models"
)

// GetStatistics handles descriptive statistics requests
// GET /v1/rates/stats?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.rateService.GetStatistics(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewStatisticsResponse(stats))
}
