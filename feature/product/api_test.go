package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/feature/product/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductAPI(t *testing.T, handler http.Handler) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPI(apiclient.New(apiclient.Config{BaseURL: srv.URL, TimeoutSeconds: 5}))
}

func TestAPICreate(t *testing.T) {
	api := newProductAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)

		var req models.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Sunny Honey", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Product{
			ID:    "id-1",
			Name:  req.Name,
			Price: "12.50",
		})
	}))

	presented, err := api.Create(context.Background(), models.CreateRequest{Name: "Sunny Honey", Price: "12.50", Qty: 5})
	require.NoError(t, err)
	assert.Equal(t, "id-1", presented.ID)
	assert.Equal(t, "12.50", presented.Price)
}

func TestAPICreate_UnexpectedStatus(t *testing.T) {
	api := newProductAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Product{ID: "id-1"})
	}))

	// A 200 from the create endpoint breaks the contract even with a valid body.
	_, err := api.Create(context.Background(), models.CreateRequest{})
	var statusErr *apiclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusOK, statusErr.Status)
}

func TestAPIGetByID(t *testing.T) {
	api := newProductAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/id-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Product{ID: "id-1", Qty: "5"})
	}))

	presented, err := api.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "5", presented.Qty)
}

func TestAPIUpdate_IDTravelsInBody(t *testing.T) {
	api := newProductAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/products", r.URL.Path)

		var req models.UpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "id-1", req.ID)

		_ = json.NewEncoder(w).Encode(models.Product{ID: req.ID, Name: req.Name})
	}))

	presented, err := api.Update(context.Background(), models.UpdateRequest{ID: "id-1", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", presented.Name)
}

func TestAPIDelete(t *testing.T) {
	api := newProductAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/products/id-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, api.Delete(context.Background(), "id-1"))
}
