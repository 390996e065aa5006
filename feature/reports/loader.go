package reports

import (
	"commerce-verifier/core/reportstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	archive *reportstore.Store
	handler *Handler
}

// NewFeature creates a new report browsing feature over the archive. A nil
// archive disables the feature.
func NewFeature(archive *reportstore.Store, logger *zap.Logger) *Feature {
	return &Feature{archive: archive, handler: NewHandler(archive, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reports"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.archive != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
