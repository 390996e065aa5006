package order

import (
	"context"
	"fmt"
	"net/http"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/server"
	"commerce-verifier/feature/order/models"
)

// API is the presentation-layer fetcher for orders. The customer identity
// travels in the customer_id header on creation; a status outside an
// endpoint's contract is a setup error, never a mismatch.
type API struct {
	client *apiclient.Client
}

// NewAPI creates an order API fetcher over the shared client.
func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

// Create places a new order for the given customer and returns the new
// order id. The endpoint answers 200, not 201.
func (a *API) Create(ctx context.Context, customerID string, req models.CreateRequest) (string, error) {
	headers := map[string]string{server.CustomerIDHeader: customerID}

	var out models.CreateResponse
	status, err := a.client.DoJSON(ctx, http.MethodPost, "/orders", headers, req, &out)
	if err != nil {
		return "", err
	}
	if err := apiclient.Expect(http.MethodPost, "/orders", status, http.StatusOK); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("POST /orders: response carried no order id")
	}
	return out.ID, nil
}

// Get fetches the presented shape of one order.
func (a *API) Get(ctx context.Context, id string) (*models.GetResponse, error) {
	path := fmt.Sprintf("/orders/%s", id)
	var out models.GetResponse
	status, err := a.client.GetJSON(ctx, path, &out)
	if err != nil {
		return nil, err
	}
	if err := apiclient.Expect(http.MethodGet, path, status, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an order's positions. The endpoint answers 204 with no
// body.
func (a *API) Update(ctx context.Context, id string, req models.UpdateRequest) error {
	path := fmt.Sprintf("/orders/%s", id)
	status, err := a.client.DoJSON(ctx, http.MethodPatch, path, nil, req, nil)
	if err != nil {
		return err
	}
	return apiclient.Expect(http.MethodPatch, path, status, http.StatusNoContent)
}
