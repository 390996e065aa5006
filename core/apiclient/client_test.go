package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, TimeoutSeconds: 5}), srv
}

func TestDoJSON_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "42", r.Header.Get("customer_id"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))

	var out struct {
		ID string `json:"id"`
	}
	status, err := client.DoJSON(context.Background(), http.MethodPost, "/orders",
		map[string]string{"customer_id": "42"},
		map[string]string{"deliveryAddress": "somewhere"},
		&out)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "abc", out.ID)
}

func TestDoJSON_NoBodyNoDecode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	status, err := client.DoJSON(context.Background(), http.MethodPatch, "/orders/abc", nil, map[string]int{"x": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestGetJSON_CollapsesConcurrentFetches(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	}))

	const callers = 8
	var wg sync.WaitGroup
	statuses := make([]int, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out struct {
				ID string `json:"id"`
			}
			statuses[i], errs[i] = client.GetJSON(context.Background(), "/products/p1", &out)
		}(i)
	}

	// Let the goroutines pile up on the in-flight request, then release it.
	time.Sleep(200 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.Equal(t, int32(1), hits.Load(), "identical concurrent GETs must share one round trip")
}

func TestExpect(t *testing.T) {
	assert.NoError(t, Expect(http.MethodGet, "/products/x", http.StatusOK, http.StatusOK))

	err := Expect(http.MethodPost, "/products", http.StatusBadRequest, http.StatusCreated)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
}
