package reports

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commerce-verifier/core/reportstore"
	"commerce-verifier/core/reportstore/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	archive := reportstore.NewStore(client, "verification-reports")
	NewHandler(archive, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleList_FiltersByScenario(t *testing.T) {
	client := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "runs/product/create/20240301T101542.923.json"}
	ch <- minio.ObjectInfo{Key: "runs/product/create/20240301T101544.101.json"}
	close(ch)

	client.On("ListObjects", mock.Anything, "verification-reports",
		mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "runs/product/create/" && opts.Recursive
		})).Return((<-chan minio.ObjectInfo)(ch))

	app := newTestApp(t, client)
	req := httptest.NewRequest(http.MethodGet, "/reports/?scenario=product/create", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Len(t, names, 2)
	assert.Contains(t, names[0], "runs/product/create/")

	client.AssertExpectations(t)
}

func TestHandleGet_ObjectNameWithSlashes(t *testing.T) {
	client := new(mocks.Client)

	payload, err := json.Marshal(reportstore.RunReport{Scenario: "product/create", Passed: true})
	require.NoError(t, err)

	client.On("GetObject", mock.Anything, "verification-reports",
		"runs/product/create/20240301T101542.923.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(string(payload))), nil)

	app := newTestApp(t, client)
	req := httptest.NewRequest(http.MethodGet, "/reports/runs/product/create/20240301T101542.923.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report reportstore.RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Passed)
	assert.Equal(t, "product/create", report.Scenario)

	client.AssertExpectations(t)
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "verification-reports",
		"runs/order/read/20240301T101542.923.json", mock.Anything).Return(nil)

	app := newTestApp(t, client)
	req := httptest.NewRequest(http.MethodDelete, "/reports/runs/order/read/20240301T101542.923.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.AssertExpectations(t)
}
