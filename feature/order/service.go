package order

import (
	"context"
	"fmt"
	"time"

	"commerce-verifier/core/fixture"
	"commerce-verifier/core/reconcile"
	"commerce-verifier/core/reportstore"
	"commerce-verifier/feature/order/models"
	"commerce-verifier/feature/product"
	productmodels "commerce-verifier/feature/product/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service runs the order verification scenarios. Orders need more setup
// than products: each scenario provisions its own customer row (the
// commerce API has no customer endpoint) and its own products through the
// product endpoints, then tears everything down afterwards.
type Service struct {
	api      *API
	store    *Store
	products *product.API
	archive  *reportstore.Store
	logger   *zap.Logger
}

// NewService creates a new order verification service. The archive may be
// nil, in which case reports are only returned to the caller.
func NewService(api *API, store *Store, products *product.API, archive *reportstore.Store, logger *zap.Logger) *Service {
	return &Service{
		api:      api,
		store:    store,
		products: products,
		archive:  archive,
		logger:   logger,
	}
}

// setupProduct is a scenario-owned product: its id plus the stock it was
// created with, kept as an int so line quantities can be derived from it.
type setupProduct struct {
	ID  string
	Qty int
}

type scenarioSetup struct {
	customerID string
	products   []setupProduct
}

// VerifyCreate places an order and reconciles the stored head row and
// positions against the request. It also asserts the ordered quantities
// were subtracted from the product stock.
func (s *Service) VerifyCreate(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	setup, teardown, err := s.setup(ctx, 2)
	if err != nil {
		return s.finish(ctx, "order/create", "", started, nil, err)
	}
	defer teardown()

	stockBefore := make(map[string]string, len(setup.products))
	for _, p := range setup.products {
		qty, err := s.store.ProductQty(ctx, p.ID)
		if err != nil {
			return s.finish(ctx, "order/create", "", started, nil, err)
		}
		stockBefore[p.ID] = qty
	}

	req := newCreateRequest(setup.products)
	orderID, err := s.api.Create(ctx, setup.customerID, req)
	if err != nil {
		return s.finish(ctx, "order/create", "", started, nil, err)
	}
	defer s.cleanupOrder(ctx, orderID)

	stored, err := s.store.Get(ctx, orderID)
	if err != nil {
		return s.finish(ctx, "order/create", orderID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "order/create", orderID, started, nil,
			fmt.Errorf("order %s not persisted after create", orderID))
	}

	report, err := ReconcileCreated(stored, req, orderID, setup.customerID)
	if err != nil {
		return s.finish(ctx, "order/create", orderID, started, nil, err)
	}
	if err := s.checkStockMoved(ctx, report, req.Products, stockBefore); err != nil {
		return s.finish(ctx, "order/create", orderID, started, nil, err)
	}
	return s.finish(ctx, "order/create", orderID, started, report.Lines(), nil)
}

// VerifyRead places an order, reads it back through the API and reconciles
// the presented shape, including the total, against the stored rows.
func (s *Service) VerifyRead(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	setup, teardown, err := s.setup(ctx, 2)
	if err != nil {
		return s.finish(ctx, "order/read", "", started, nil, err)
	}
	defer teardown()

	orderID, err := s.api.Create(ctx, setup.customerID, newCreateRequest(setup.products))
	if err != nil {
		return s.finish(ctx, "order/read", "", started, nil, err)
	}
	defer s.cleanupOrder(ctx, orderID)

	presented, err := s.api.Get(ctx, orderID)
	if err != nil {
		return s.finish(ctx, "order/read", orderID, started, nil, err)
	}
	stored, err := s.store.Get(ctx, orderID)
	if err != nil {
		return s.finish(ctx, "order/read", orderID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "order/read", orderID, started, nil,
			fmt.Errorf("order %s not persisted after create", orderID))
	}

	report, err := ReconcileRead(stored, presented)
	if err != nil {
		return s.finish(ctx, "order/read", orderID, started, nil, err)
	}
	return s.finish(ctx, "order/read", orderID, started, report.Lines(), nil)
}

// VerifyUpdate places an order, replaces its positions through the API and
// reconciles the stored positions against the replacement request.
func (s *Service) VerifyUpdate(ctx context.Context) *reportstore.RunReport {
	started := time.Now()

	setup, teardown, err := s.setup(ctx, 2)
	if err != nil {
		return s.finish(ctx, "order/update", "", started, nil, err)
	}
	defer teardown()

	// The order starts with the first product only; the update replaces the
	// positions with both.
	orderID, err := s.api.Create(ctx, setup.customerID, newCreateRequest(setup.products[:1]))
	if err != nil {
		return s.finish(ctx, "order/update", "", started, nil, err)
	}
	defer s.cleanupOrder(ctx, orderID)

	update := models.UpdateRequest{Products: newLineRequests(setup.products)}
	if err := s.api.Update(ctx, orderID, update); err != nil {
		return s.finish(ctx, "order/update", orderID, started, nil, err)
	}

	stored, err := s.store.Get(ctx, orderID)
	if err != nil {
		return s.finish(ctx, "order/update", orderID, started, nil, err)
	}
	if stored == nil {
		return s.finish(ctx, "order/update", orderID, started, nil,
			fmt.Errorf("order %s not persisted after update", orderID))
	}

	report, err := ReconcileUpdated(stored, update)
	if err != nil {
		return s.finish(ctx, "order/update", orderID, started, nil, err)
	}
	return s.finish(ctx, "order/update", orderID, started, report.Lines(), nil)
}

// checkStockMoved asserts each ordered product's stock dropped by exactly
// the ordered quantity.
func (s *Service) checkStockMoved(ctx context.Context, r *reconcile.Report, lines []models.LineRequest, before map[string]string) error {
	for _, line := range lines {
		beforeQty, err := reconcile.NormalizeDecimal(before[line.ID])
		if err != nil {
			return err
		}
		afterRaw, err := s.store.ProductQty(ctx, line.ID)
		if err != nil {
			return err
		}
		want := beforeQty.Sub(decimal.NewFromInt(int64(line.Qty)))
		if err := reconcile.CompareDecimal(r, fmt.Sprintf("stock[%s]", line.ID), want.String(), afterRaw); err != nil {
			return err
		}
	}
	return nil
}

// setup provisions a customer row and the given number of products, and
// returns a teardown that removes them again. Teardown failures are logged
// and do not affect the run outcome.
func (s *Service) setup(ctx context.Context, productCount int) (*scenarioSetup, func(), error) {
	customerID, err := s.store.CreateCustomer(ctx, fixture.CustomerLogin(), fixture.CustomerEmail())
	if err != nil {
		return nil, nil, err
	}

	setup := &scenarioSetup{customerID: customerID}
	teardown := func() {
		for _, p := range setup.products {
			if err := s.products.Delete(ctx, p.ID); err != nil {
				s.logger.Warn("failed to clean up product", zap.String("id", p.ID), zap.Error(err))
			}
		}
		if err := s.store.DeleteCustomer(ctx, customerID); err != nil {
			s.logger.Warn("failed to clean up customer", zap.String("id", customerID), zap.Error(err))
		}
	}

	for i := 0; i < productCount; i++ {
		created, err := s.products.Create(ctx, productmodels.CreateRequest{
			Name:       fixture.ProductName(),
			Article:    fixture.Article(),
			Category:   fixture.Category(),
			Dictionary: fixture.Dictionary(),
			Price:      fixture.Price(),
			Qty:        fixture.Qty(),
		})
		if err != nil {
			teardown()
			return nil, nil, err
		}
		qty, err := reconcile.NormalizeDecimal(created.Qty)
		if err != nil {
			teardown()
			return nil, nil, err
		}
		setup.products = append(setup.products, setupProduct{ID: created.ID, Qty: int(qty.IntPart())})
	}
	return setup, teardown, nil
}

// cleanupOrder removes a scenario's order rows. The commerce API has no
// order deletion, so this goes straight to storage.
func (s *Service) cleanupOrder(ctx context.Context, id string) {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn("failed to clean up order", zap.String("id", id), zap.Error(err))
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

func newLineRequests(products []setupProduct) []models.LineRequest {
	lines := make([]models.LineRequest, 0, len(products))
	for _, p := range products {
		lines = append(lines, models.LineRequest{ID: p.ID, Qty: fixture.OrderQty(p.Qty)})
	}
	return lines
}

func newCreateRequest(products []setupProduct) models.CreateRequest {
	return models.CreateRequest{
		DeliveryAddress: fixture.DeliveryAddress(),
		Products:        newLineRequests(products),
	}
}
