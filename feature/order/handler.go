package order

import (
	"context"

	"commerce-verifier/core/logger"
	"commerce-verifier/core/reportstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for order verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order verification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/verify/orders")
	group.Post("/create", h.HandleVerifyCreate)
	group.Post("/read", h.HandleVerifyRead)
	group.Post("/update", h.HandleVerifyUpdate)
}

// HandleVerifyCreate runs the order create scenario.
// @Summary Verify Order Create
// @Description Place an order through the commerce API and reconcile the stored rows against the request, including the stock movement.
// @Tags order
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/orders/create [post]
func (h *Handler) HandleVerifyCreate(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyCreate)
}

// HandleVerifyRead runs the order read scenario.
// @Summary Verify Order Read
// @Description Place an order, read it back and reconcile the presented positions and total against the stored rows.
// @Tags order
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/orders/read [post]
func (h *Handler) HandleVerifyRead(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyRead)
}

// HandleVerifyUpdate runs the order update scenario.
// @Summary Verify Order Update
// @Description Place and patch an order, then reconcile the stored positions against the replacement request.
// @Tags order
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/orders/update [post]
func (h *Handler) HandleVerifyUpdate(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyUpdate)
}

func (h *Handler) run(c *fiber.Ctx, scenario func(context.Context) *reportstore.RunReport) error {
	l := logger.WithRayID(h.service.logger, c)

	report := scenario(c.Context())
	if report.Error != "" {
		l.Error("Scenario could not complete",
			zap.String("scenario", report.Scenario),
			zap.String("error", report.Error))
		return c.Status(fiber.StatusBadGateway).JSON(report)
	}
	return c.JSON(report)
}
