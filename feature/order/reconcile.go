package order

import (
	"commerce-verifier/core/reconcile"
	"commerce-verifier/feature/order/models"
)

func requestLineKey(l models.LineRequest) string { return l.ID }

func storedLineKey(l models.StoredLine) string { return l.ProductID }

func presentedLineKey(l models.PresentedLine) string { return l.ID }

// ReconcileCreated compares a freshly stored order against what was asked
// of the API: the identity, the delivery address, the CREATED status and
// the requested positions.
func ReconcileCreated(stored *models.StoredOrder, req models.CreateRequest, orderID, customerID string) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	reconcile.CompareString(r, "orderId", orderID, stored.OrderID)
	reconcile.CompareString(r, "customerId", customerID, stored.CustomerID)
	reconcile.CompareString(r, "status", models.StatusCreated, stored.Status)
	reconcile.CompareString(r, "deliveryAddress", req.DeliveryAddress, stored.DeliveryAddress)

	err := reconcile.CompareCollections(r, "products", req.Products, stored.Products,
		requestLineKey, storedLineKey,
		func(r *reconcile.Report, field string, want models.LineRequest, got models.StoredLine) error {
			reconcile.CompareString(r, field+".id", want.ID, got.ProductID)
			reconcile.CompareInt(r, field+".qty", want.Qty, got.Qty)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ReconcileRead compares the stored shape of an order against its presented
// shape: identity, per-position id, name, qty and price, and the presented
// total against the exact sum of the stored line prices.
func ReconcileRead(stored *models.StoredOrder, presented *models.GetResponse) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	reconcile.CompareString(r, "orderId", stored.OrderID, presented.OrderID)

	err := reconcile.CompareCollections(r, "products", stored.Products, presented.Products,
		storedLineKey, presentedLineKey,
		func(r *reconcile.Report, field string, want models.StoredLine, got models.PresentedLine) error {
			reconcile.CompareString(r, field+".id", want.ProductID, got.ID)
			reconcile.CompareString(r, field+".name", want.Name, got.Name)
			reconcile.CompareInt(r, field+".qty", want.Qty, got.Qty)
			return reconcile.CompareDecimal(r, field+".price", want.Price, got.Price)
		})
	if err != nil {
		return nil, err
	}

	// Summed exactly, at full stored scale; rounding happens only inside the
	// final comparison.
	prices := make([]string, 0, len(stored.Products))
	for _, line := range stored.Products {
		prices = append(prices, line.Price)
	}
	total, err := reconcile.SumDecimals(prices)
	if err != nil {
		return nil, err
	}
	if err := reconcile.CompareDecimal(r, "totalPrice", total.String(), presented.TotalPrice); err != nil {
		return nil, err
	}
	return r, nil
}

// ReconcileUpdated compares the stored positions after an update against
// the replacement positions that were requested.
func ReconcileUpdated(stored *models.StoredOrder, req models.UpdateRequest) (*reconcile.Report, error) {
	r := reconcile.NewReport()
	err := reconcile.CompareCollections(r, "products", req.Products, stored.Products,
		requestLineKey, storedLineKey,
		func(r *reconcile.Report, field string, want models.LineRequest, got models.StoredLine) error {
			reconcile.CompareString(r, field+".id", want.ID, got.ProductID)
			reconcile.CompareInt(r, field+".qty", want.Qty, got.Qty)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return r, nil
}
