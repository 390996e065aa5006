package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/server"
	"commerce-verifier/feature/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderAPI(t *testing.T, handler http.Handler) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPI(apiclient.New(apiclient.Config{BaseURL: srv.URL, TimeoutSeconds: 5}))
}

func TestAPICreate_CustomerTravelsInHeader(t *testing.T) {
	api := newOrderAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "42", r.Header.Get(server.CustomerIDHeader))

		var req models.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Products, 1)

		_ = json.NewEncoder(w).Encode(models.CreateResponse{ID: "o-1"})
	}))

	id, err := api.Create(context.Background(), "42", models.CreateRequest{
		DeliveryAddress: "118 Cedar Lane Springfield 04523",
		Products:        []models.LineRequest{{ID: "p-1", Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "o-1", id)
}

func TestAPICreate_MissingID(t *testing.T) {
	api := newOrderAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.CreateResponse{})
	}))

	_, err := api.Create(context.Background(), "42", models.CreateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no order id")
}

func TestAPIGet(t *testing.T) {
	api := newOrderAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/o-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.GetResponse{
			OrderID:    "o-1",
			TotalPrice: "15.83",
			Products:   []models.PresentedLine{{ID: "p-1", Name: "Sunny Honey", Price: "12.50", Qty: 1}},
		})
	}))

	presented, err := api.Get(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "15.83", presented.TotalPrice)
	require.Len(t, presented.Products, 1)
}

func TestAPIUpdate_NoContent(t *testing.T) {
	api := newOrderAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/orders/o-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := api.Update(context.Background(), "o-1", models.UpdateRequest{
		Products: []models.LineRequest{{ID: "p-1", Qty: 3}},
	})
	require.NoError(t, err)
}

func TestAPIUpdate_UnexpectedStatus(t *testing.T) {
	api := newOrderAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	err := api.Update(context.Background(), "o-1", models.UpdateRequest{})
	var statusErr *apiclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusOK, statusErr.Status)
}
