package handlers

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed dashboard.html
var dashboardHTML []byte

// Dashboard serves the embedded single-page dashboard. The page pulls its
// data from the JSON endpoints and renders the chart in the browser.
// GET /
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(dashboardHTML)
}
