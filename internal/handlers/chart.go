package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/models"
)

// GetChart handles chart-data requests: the filtered points plus the min and
// max observations for annotation. Rendering happens client-side.
// GET /v1/rates/chart?start_date=...&end_date=...
func (h *Handler) GetChart(c *fiber.Ctx) error {
	annotated, err := h.rateService.GetChartData(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewChartResponse(annotated))
}
