package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/models"
)

// GetRates handles filtered series requests
// GET /v1/rates?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Handler) GetRates(c *fiber.Ctx) error {
	series, err := h.rateService.GetSeries(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewSeriesResponse(series))
}

// UpdateRates handles observation upserts
// POST /v1/rates
func (h *Handler) UpdateRates(c *fiber.Ctx) error {
	var body models.UpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	series, err := body.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
	}

	if err := h.rateService.UpdateData(series); err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(models.UpdateResponse{Accepted: len(series)})
}

// GetDateRange handles available-range requests
// GET /v1/rates/range
func (h *Handler) GetDateRange(c *fiber.Ctx) error {
	min, max, err := h.rateService.GetDateRange()
	if err != nil {
		return err
	}

	return c.JSON(models.NewDateRangeResponse(min, max))
}
