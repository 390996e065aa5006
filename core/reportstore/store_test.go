package reportstore_test

import (
	"context"
	"io"
	"testing"

	"commerce-verifier/core/reportstore"
	"commerce-verifier/core/reportstore/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := reportstore.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "verification-reports",
		}

		client, err := reportstore.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := reportstore.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := reportstore.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestStore_EnsureBucket(t *testing.T) {
	t.Run("already exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		store := reportstore.NewStore(client, "reports")
		require.NoError(t, store.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("created on demand", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)

		store := reportstore.NewStore(client, "reports")
		require.NoError(t, store.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})
}

func TestStore_Archive(t *testing.T) {
	client := new(mocks.Client)

	var uploaded []byte
	client.On("PutObject", mock.Anything, "reports", mock.AnythingOfType("string"),
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reader := args.Get(3).(io.Reader)
			uploaded, _ = io.ReadAll(reader)
		}).
		Return(minio.UploadInfo{}, nil)

	store := reportstore.NewStore(client, "reports")
	report := &reportstore.RunReport{
		Scenario:      "product/create",
		EntityID:      "p1",
		Passed:        false,
		Mismatches:    []string{"price: expected=12.50, actual=13.00"},
		GeneratedAt:   "2025-09-14T16:01:17Z",
		ExecutionTime: "1.2s",
	}

	objectName, err := store.Archive(context.Background(), report)
	require.NoError(t, err)
	assert.Contains(t, objectName, "runs/product/create/")
	assert.Contains(t, string(uploaded), `"price: expected=12.50, actual=13.00"`)

	client.AssertExpectations(t)
}
