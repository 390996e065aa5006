package reportstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// RunReport is the outcome of one verification scenario run: the scenario
// identity, whether both views of the entity agreed, and the rendered
// mismatch lines when they did not.
type RunReport struct {
	// Scenario names the verification scenario, e.g. "product/create".
	Scenario string `json:"scenario"`

	// EntityID is the id of the entity the scenario exercised.
	EntityID string `json:"entity_id,omitempty"`

	// Passed is true when the reconciliation report came back empty.
	Passed bool `json:"passed"`

	// Mismatches contains one rendered line per field disagreement.
	Mismatches []string `json:"mismatches,omitempty"`

	// Error carries a fatal setup failure (fetch error, malformed input),
	// as opposed to a reconciliation mismatch.
	Error string `json:"error,omitempty"`

	// GeneratedAt is the RFC3339 timestamp of report creation.
	GeneratedAt string `json:"generated_at"`

	// ExecutionTime is the human-readable scenario duration.
	ExecutionTime string `json:"execution_time"`
}

// Store archives run reports as JSON objects in an S3-compatible bucket,
// replacing manual collection of verification output from CI logs.
type Store struct {
	client Client
	bucket string
}

// NewStore creates a report archive over the given storage client.
func NewStore(client Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Archive serializes the report and uploads it under
// runs/<scenario>/<timestamp>.json. It returns the object name.
func (s *Store) Archive(ctx context.Context, report *RunReport) (string, error) {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run report: %w", err)
	}

	objectName := fmt.Sprintf("runs/%s/%s.json", report.Scenario, time.Now().UTC().Format("20060102T150405.000"))
	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to archive run report: %w", err)
	}
	return objectName, nil
}

// List returns the object names of archived reports, newest last. An empty
// scenario lists every run; otherwise only that scenario's runs.
func (s *Store) List(ctx context.Context, scenario string) ([]string, error) {
	prefix := "runs/"
	if scenario != "" {
		prefix = fmt.Sprintf("runs/%s/", scenario)
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list run reports: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Fetch downloads and decodes one archived report by object name.
func (s *Store) Fetch(ctx context.Context, objectName string) (*RunReport, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch run report %s: %w", objectName, err)
	}
	defer obj.Close()

	var report RunReport
	if err := json.NewDecoder(obj).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode run report %s: %w", objectName, err)
	}
	return &report, nil
}

// Remove deletes one archived report by object name.
func (s *Store) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove run report %s: %w", objectName, err)
	}
	return nil
}
