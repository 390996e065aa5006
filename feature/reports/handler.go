package reports

import (
	"commerce-verifier/core/logger"
	"commerce-verifier/core/reportstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for browsing archived run reports.
type Handler struct {
	archive *reportstore.Store
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(archive *reportstore.Store, logger *zap.Logger) *Handler {
	return &Handler{archive: archive, logger: logger}
}

// RegisterRoutes registers the report browsing routes. Object names contain
// slashes (runs/<scenario>/<timestamp>.json), so the item routes take a
// wildcard.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reports")
	group.Get("/", h.HandleList)
	group.Get("/+", h.HandleGet)
	group.Delete("/+", h.HandleDelete)
}

// HandleList lists archived run reports.
// @Summary List Run Reports
// @Description List archived run report object names, optionally filtered by scenario.
// @Tags reports
// @Produce json
// @Param scenario query string false "Scenario filter (e.g. 'product/create')"
// @Success 200 {array} string "Object Names"
// @Router /reports [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	names, err := h.archive.List(c.Context(), c.Query("scenario"))
	if err != nil {
		l.Error("Failed to list run reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// HandleGet returns one archived run report.
// @Summary Get Run Report
// @Description Fetch one archived run report by its object name.
// @Tags reports
// @Produce json
// @Param name path string true "Object Name (e.g. 'runs/product/create/20240301T101542.923.json')"
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /reports/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	name := c.Params("+")
	report, err := h.archive.Fetch(c.Context(), name)
	if err != nil {
		l.Error("Failed to fetch run report", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleDelete removes one archived run report.
// @Summary Delete Run Report
// @Description Remove one archived run report by its object name.
// @Tags reports
// @Produce json
// @Param name path string true "Object Name"
// @Success 200 {object} map[string]string "Deleted"
// @Router /reports/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	name := c.Params("+")
	if err := h.archive.Remove(c.Context(), name); err != nil {
		l.Error("Failed to remove run report", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deleted": name})
}
