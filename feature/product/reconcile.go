package product

import (
	"strconv"

	"commerce-verifier/core/reconcile"
	"commerce-verifier/feature/product/models"
)

// ReconcileCreated compares the stored shape of a freshly created product
// against the presented create response.
func ReconcileCreated(stored *models.StoredProduct, presented *models.Product) (*reconcile.Report, error) {
	return reconcileShapes(stored, presented)
}

// ReconcileRead compares the stored shape against the presented read
// response. The field set is identical to the created variant.
func ReconcileRead(stored *models.StoredProduct, presented *models.Product) (*reconcile.Report, error) {
	return reconcileShapes(stored, presented)
}

// reconcileShapes compares a stored product against a presented one, field
// by field, and returns every divergence in one report. The stored side is
// the expected value. The dictionary column is persisted but never
// presented, so it is not part of this comparison.
func reconcileShapes(stored *models.StoredProduct, presented *models.Product) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	if err := reconcileCommon(r, stored, presented); err != nil {
		return nil, err
	}
	if err := reconcile.CompareTimestamp(r, "insertedAt",
		stored.InsertedAt, presented.InsertedAt,
		reconcile.SourceDB, reconcile.SourceAPI); err != nil {
		return nil, err
	}
	if err := reconcile.CompareTimestamp(r, "last_qty_changed",
		stored.LastQtyChanged, presented.LastQtyChanged,
		reconcile.SourceDB, reconcile.SourceAPI); err != nil {
		return nil, err
	}
	return r, nil
}

// ReconcileUpdated compares the stored and presented shapes after an update.
// Timestamps are excluded here: the update moves last_qty_changed, and the
// freshness of that move is asserted separately against the pre-update
// presented shape.
func ReconcileUpdated(stored *models.StoredProduct, presented *models.Product) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	if err := reconcileCommon(r, stored, presented); err != nil {
		return nil, err
	}
	return r, nil
}

func reconcileCommon(r *reconcile.Report, stored *models.StoredProduct, presented *models.Product) error {
	reconcile.CompareString(r, "id", stored.ID, presented.ID)
	reconcile.CompareString(r, "name", stored.Name, presented.Name)
	reconcile.CompareString(r, "article", stored.Article, presented.Article)
	reconcile.CompareString(r, "category", stored.Category, presented.Category)
	if err := reconcile.CompareDecimal(r, "price", stored.Price, presented.Price); err != nil {
		return err
	}
	if err := reconcile.CompareDecimal(r, "qty", stored.Qty, presented.Qty); err != nil {
		return err
	}
	return nil
}

// ReconcileRequest compares what was asked of the API against what the
// database persisted. This is where the dictionary column is checked, since
// the presented shape omits it.
func ReconcileRequest(stored *models.StoredProduct, req models.CreateRequest) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	reconcile.CompareString(r, "name", req.Name, stored.Name)
	reconcile.CompareString(r, "article", req.Article, stored.Article)
	reconcile.CompareString(r, "category", req.Category, stored.Category)
	reconcile.CompareString(r, "dictionary", req.Dictionary, stored.Dictionary)
	if err := reconcile.CompareDecimal(r, "price", req.Price, stored.Price); err != nil {
		return nil, err
	}
	if err := reconcile.CompareDecimal(r, "qty", strconv.Itoa(req.Qty), stored.Qty); err != nil {
		return nil, err
	}
	return r, nil
}
