package product

import (
	"context"
	"fmt"
	"time"

	"commerce-verifier/core/fixture"
	"commerce-verifier/core/reconcile"
	"commerce-verifier/core/reportstore"
	"commerce-verifier/feature/product/models"

	"go.uber.org/zap"
)

// Service runs the product verification scenarios. Each scenario drives the
// commerce API with fixture data, fetches both shapes of the entity and
// reconciles them into a run report. Fetch and normalization failures are
// recorded as the report's error, never silently swallowed.
type Service struct {
	api     *API
	store   *Store
	archive *reportstore.Store
	logger  *zap.Logger
}

// NewService creates a new product verification service. The archive may be
// nil, in which case reports are only returned to the caller.
func NewService(api *API, store *Store, archive *reportstore.Store, logger *zap.Logger) *Service {
	return &Service{
		api:     api,
		store:   store,
		archive: archive,
		logger:  logger,
	}
}

// VerifyCreate creates a product and reconciles the request, the stored row
// and the presented response against each other.
func (s *Service) VerifyCreate(ctx context.Context) *reportstore.RunReport {
	started := time.Now()
	req := newCreateRequest()

	presented, err := s.api.Create(ctx, req)
	if err != nil {
		return s.finish(ctx, "product/create", "", started, nil, err)
	}
	defer s.cleanup(ctx, presented.ID)

	stored, err := s.store.Get(ctx, presented.ID)
	if err != nil {
		return s.finish(ctx, "product/create", presented.ID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "product/create", presented.ID, started, nil,
			fmt.Errorf("product %s not persisted after create", presented.ID))
	}

	requestReport, err := ReconcileRequest(stored, req)
	if err != nil {
		return s.finish(ctx, "product/create", presented.ID, started, nil, err)
	}
	shapeReport, err := ReconcileCreated(stored, presented)
	if err != nil {
		return s.finish(ctx, "product/create", presented.ID, started, nil, err)
	}

	lines := append(requestReport.Lines(), shapeReport.Lines()...)
	return s.finish(ctx, "product/create", presented.ID, started, lines, nil)
}

// VerifyRead creates a product, reads it back through the API and reconciles
// the read response against the stored row.
func (s *Service) VerifyRead(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	created, err := s.api.Create(ctx, newCreateRequest())
	if err != nil {
		return s.finish(ctx, "product/read", "", started, nil, err)
	}
	defer s.cleanup(ctx, created.ID)

	presented, err := s.api.GetByID(ctx, created.ID)
	if err != nil {
		return s.finish(ctx, "product/read", created.ID, started, nil, err)
	}
	stored, err := s.store.Get(ctx, created.ID)
	if err != nil {
		return s.finish(ctx, "product/read", created.ID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "product/read", created.ID, started, nil,
			fmt.Errorf("product %s not persisted after create", created.ID))
	}

	report, err := ReconcileRead(stored, presented)
	if err != nil {
		return s.finish(ctx, "product/read", created.ID, started, nil, err)
	}
	return s.finish(ctx, "product/read", created.ID, started, report.Lines(), nil)
}

// VerifyUpdate creates a product, patches every mutable field and reconciles
// the updated shapes. It also asserts that last_qty_changed moved forward
// relative to the create response.
func (s *Service) VerifyUpdate(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	created, err := s.api.Create(ctx, newCreateRequest())
	if err != nil {
		return s.finish(ctx, "product/update", "", started, nil, err)
	}
	defer s.cleanup(ctx, created.ID)

	updated, err := s.api.Update(ctx, newUpdateRequest(created.ID))
	if err != nil {
		return s.finish(ctx, "product/update", created.ID, started, nil, err)
	}
	stored, err := s.store.Get(ctx, created.ID)
	if err != nil {
		return s.finish(ctx, "product/update", created.ID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "product/update", created.ID, started, nil,
			fmt.Errorf("product %s not persisted after update", created.ID))
	}

	report, err := ReconcileUpdated(stored, updated)
	if err != nil {
		return s.finish(ctx, "product/update", created.ID, started, nil, err)
	}
	if err := checkQtyChangeMoved(report, created.LastQtyChanged, updated.LastQtyChanged); err != nil {
		return s.finish(ctx, "product/update", created.ID, started, nil, err)
	}
	return s.finish(ctx, "product/update", created.ID, started, report.Lines(), nil)
}

// VerifyDelete creates a product, deletes it through the API and asserts the
// stored row is gone.
func (s *Service) VerifyDelete(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	created, err := s.api.Create(ctx, newCreateRequest())
	if err != nil {
		return s.finish(ctx, "product/delete", "", started, nil, err)
	}

	if err := s.api.Delete(ctx, created.ID); err != nil {
		s.cleanup(ctx, created.ID)
		return s.finish(ctx, "product/delete", created.ID, started, nil, err)
	}

	stored, err := s.store.Get(ctx, created.ID)
	if err != nil {
		return s.finish(ctx, "product/delete", created.ID, started, nil, err)
	}

	report := reconcile.NewReport()
	if stored != nil {
		report.Add("id", "absent after delete", stored.ID)
	}
	return s.finish(ctx, "product/delete", created.ID, started, report.Lines(), nil)
}

// VerifyList creates a pair of products and asserts both show up in the API
// listing and in the stored id set.
func (s *Service) VerifyList(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	var createdIDs []string
	for i := 0; i < 2; i++ {
		created, err := s.api.Create(ctx, newCreateRequest())
		if err != nil {
			for _, id := range createdIDs {
				s.cleanup(ctx, id)
			}
			return s.finish(ctx, "product/list", "", started, nil, err)
		}
		createdIDs = append(createdIDs, created.ID)
	}
	defer func() {
		for _, id := range createdIDs {
			s.cleanup(ctx, id)
		}
	}()

	listed, err := s.api.List(ctx)
	if err != nil {
		return s.finish(ctx, "product/list", "", started, nil, err)
	}
	storedIDs, err := s.store.ListIDs(ctx)
	if err != nil {
		return s.finish(ctx, "product/list", "", started, nil, err)
	}

	presentedSet := make(map[string]struct{}, len(listed))
	for _, p := range listed {
		presentedSet[p.ID] = struct{}{}
	}
	storedSet := make(map[string]struct{}, len(storedIDs))
	for _, id := range storedIDs {
		storedSet[id] = struct{}{}
	}

	report := reconcile.NewReport()
	for _, id := range createdIDs {
		if _, ok := presentedSet[id]; !ok {
			report.Add(fmt.Sprintf("api.products[%s]", id), id, "absent")
		}
		if _, ok := storedSet[id]; !ok {
			report.Add(fmt.Sprintf("db.products[%s]", id), id, "absent")
		}
	}
	return s.finish(ctx, "product/list", "", started, report.Lines(), nil)
}

// checkQtyChangeMoved asserts the post-update change marker differs from the
// one presented at creation. Both values come from the API, so they share a
// format.
func checkQtyChangeMoved(r *reconcile.Report, before, after string) error {
	beforeAt, err := reconcile.NormalizeTimestamp(before, reconcile.SourceAPI)
	if err != nil {
		return err
	}
	afterAt, err := reconcile.NormalizeTimestamp(after, reconcile.SourceAPI)
	if err != nil {
		return err
	}
	if afterAt.Equal(beforeAt) {
		r.Add("last_qty_changed", fmt.Sprintf("different from %s", before), after)
	}
	return nil
}

// cleanup removes a scenario's product through the API. Failures are logged
// and do not affect the run outcome.
func (s *Service) cleanup(ctx context.Context, id string) {
	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Warn("failed to clean up product", zap.String("id", id), zap.Error(err))
	}
}

func (s *Service) finish(ctx context.Context, scenario, entityID string, started time.Time, mismatches []string, err error) *reportstore.RunReport {
	report := &reportstore.RunReport{
		Scenario:      scenario,
		EntityID:      entityID,
		Passed:        err == nil && len(mismatches) == 0,
		Mismatches:    mismatches,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		ExecutionTime: time.Since(started).String(),
	}
	if err != nil {
		report.Error = err.Error()
		s.logger.Error("scenario failed", zap.String("scenario", scenario), zap.Error(err))
	} else if !report.Passed {
		s.logger.Warn("scenario found mismatches",
			zap.String("scenario", scenario),
			zap.Int("count", len(mismatches)))
	}

	if s.archive != nil {
		if _, archiveErr := s.archive.Archive(ctx, report); archiveErr != nil {
			s.logger.Warn("failed to archive run report",
				zap.String("scenario", scenario), zap.Error(archiveErr))
		}
	}
	return report
}

func newCreateRequest() models.CreateRequest {
	return models.CreateRequest{
		Name:       fixture.ProductName(),
		Article:    fixture.Article(),
		Category:   fixture.Category(),
		Dictionary: fixture.Dictionary(),
		Price:      fixture.Price(),
		Qty:        fixture.Qty(),
	}
}

func newUpdateRequest(id string) models.UpdateRequest {
	return models.UpdateRequest{
		ID:         id,
		Name:       fixture.ProductName(),
		Article:    fixture.Article(),
		Category:   fixture.Category(),
		Dictionary: fixture.Dictionary(),
		Price:      fixture.Price(),
		Qty:        fixture.Qty(),
	}
}
