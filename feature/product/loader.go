package product

import (
	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/reportstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new product verification feature. The archive may be
// nil when report archiving is disabled.
func NewFeature(client *apiclient.Client, db *gorm.DB, archive *reportstore.Store, logger *zap.Logger) *Feature {
	svc := NewService(NewAPI(client), NewStore(db), archive, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "product"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the verification service for direct CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
