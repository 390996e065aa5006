package product

import (
	"context"
	"fmt"
	"net/http"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/feature/product/models"
)

// API is the presentation-layer fetcher for products. Each method encodes
// one endpoint contract; a status outside the contract is a setup error,
// never a mismatch.
type API struct {
	client *apiclient.Client
}

// NewAPI creates a product API fetcher over the shared client.
func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

// Create posts a new product and returns the presented shape. The endpoint
// answers 201 on success.
func (a *API) Create(ctx context.Context, req models.CreateRequest) (*models.Product, error) {
	var out models.Product
	status, err := a.client.DoJSON(ctx, http.MethodPost, "/products", nil, req, &out)
	if err != nil {
		return nil, err
	}
	if err := apiclient.Expect(http.MethodPost, "/products", status, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID fetches the presented shape of one product.
func (a *API) GetByID(ctx context.Context, id string) (*models.Product, error) {
	path := fmt.Sprintf("/products/%s", id)
	var out models.Product
	status, err := a.client.GetJSON(ctx, path, &out)
	if err != nil {
		return nil, err
	}
	if err := apiclient.Expect(http.MethodGet, path, status, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// List fetches every presented product.
func (a *API) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	status, err := a.client.GetJSON(ctx, "/products", &out)
	if err != nil {
		return nil, err
	}
	if err := apiclient.Expect(http.MethodGet, "/products", status, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Update patches a product. The target id travels in the body, not the
// path, and the endpoint answers 200 with the updated presented shape.
func (a *API) Update(ctx context.Context, req models.UpdateRequest) (*models.Product, error) {
	var out models.Product
	status, err := a.client.DoJSON(ctx, http.MethodPatch, "/products", nil, req, &out)
	if err != nil {
		return nil, err
	}
	if err := apiclient.Expect(http.MethodPatch, "/products", status, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product through the API. The endpoint answers 200.
func (a *API) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/products/%s", id)
	status, err := a.client.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil {
		return err
	}
	return apiclient.Expect(http.MethodDelete, path, status, http.StatusOK)
}
