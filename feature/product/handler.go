package product

import (
	"context"

	"commerce-verifier/core/logger"
	"commerce-verifier/core/reportstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product verification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/verify/products")
	group.Post("/create", h.HandleVerifyCreate)
	group.Post("/read", h.HandleVerifyRead)
	group.Post("/update", h.HandleVerifyUpdate)
	group.Post("/delete", h.HandleVerifyDelete)
	group.Post("/list", h.HandleVerifyList)
}

// HandleVerifyCreate runs the product create scenario.
// @Summary Verify Product Create
// @Description Create a product through the commerce API and reconcile the stored row against the presented response.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/products/create [post]
func (h *Handler) HandleVerifyCreate(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyCreate)
}

// HandleVerifyRead runs the product read scenario.
// @Summary Verify Product Read
// @Description Create a product, read it back and reconcile both shapes.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/products/read [post]
func (h *Handler) HandleVerifyRead(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyRead)
}

// HandleVerifyUpdate runs the product update scenario.
// @Summary Verify Product Update
// @Description Create and patch a product, then reconcile the updated shapes and the change marker freshness.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/products/update [post]
func (h *Handler) HandleVerifyUpdate(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyUpdate)
}

// HandleVerifyDelete runs the product delete scenario.
// @Summary Verify Product Delete
// @Description Create and delete a product, then assert the stored row is gone.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/products/delete [post]
func (h *Handler) HandleVerifyDelete(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyDelete)
}

// HandleVerifyList runs the product list scenario.
// @Summary Verify Product List
// @Description Create products and assert they are present in both the API listing and the stored id set.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} reportstore.RunReport "Run Report"
// @Router /verify/products/list [post]
func (h *Handler) HandleVerifyList(c *fiber.Ctx) error {
	return h.run(c, h.service.VerifyList)
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
