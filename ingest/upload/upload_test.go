package upload_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/jhenke/ingestbench/ingest/payload"
	"github.com/jhenke/ingestbench/ingest/serialize"
	"github.com/jhenke/ingestbench/ingest/upload"
	"github.com/jhenke/ingestbench/ingest/upload/httpclient"
	"github.com/jhenke/ingestbench/ingest/upload/mock"
	"github.com/jhenke/ingestbench/ingest/upload/socket"
	"go.uber.org/zap/zapcore"
)

// testClients is a map of client name to factory function
var testClients = map[string]func() upload.IUploadClient{
	"HTTP":   httpclient.NewHTTPUploadClient,
	"Socket": socket.NewSocketUploadClient,
}

// startMock starts a mock endpoint and registers its teardown with the test
func startMock(t *testing.T, config common.MockConfig) *mock.Server {
	t.Helper()

	srv := mock.NewServer(config)
	if err := srv.Start(); err != nil {
		t.Fatalf("Failed to start mock endpoint: %v", err)
	}
	t.Cleanup(func() {
		if err := srv.Stop(); err != nil {
			t.Errorf("Failed to stop mock endpoint: %v", err)
		}
	})
	return srv
}

// testParts serializes an array-shape batch into named upload parts.
// The count matches the upload benchmark (300 parts); the scale is kept small
// so the test payload stays light
func testParts(t *testing.T, count int) []upload.Part {
	t.Helper()

	records, err := payload.Generate(payload.ShapeArray, 8, count)
	if err != nil {
		t.Fatalf("Failed to generate records: %v", err)
	}
	buffers, err := serialize.NewParallelStrategy().SerializeAll(records)
	if err != nil {
		t.Fatalf("Failed to serialize records: %v", err)
	}
	return upload.NewParts(buffers)
}

// TestUploadSuccess tests that both clients complete a multipart POST with
// status 202 and that the endpoint observes every named part in order
func TestUploadSuccess(t *testing.T) {
	parts := testParts(t, 300)

	for name, factory := range testClients {
		t.Run(name, func(t *testing.T) {
			srv := startMock(t, common.MockConfig{})

			client := factory()
			if err := client.Connect(common.ClientConfig{Endpoint: srv.URL(), TimeoutSecond: 10}); err != nil {
				t.Fatalf("Failed to connect: %v", err)
			}
			defer client.Close()

			status, err := client.Upload(parts)
			if err != nil {
				t.Fatalf("Failed to upload: %v", err)
			}
			if status != upload.AcceptedStatus {
				t.Fatalf("Expected status %d, got %d", upload.AcceptedStatus, status)
			}

			if srv.Requests() != 1 {
				t.Fatalf("Expected 1 observed request, got %d", srv.Requests())
			}
			names := srv.LastPartNames()
			if len(names) != 300 {
				t.Fatalf("Expected 300 observed parts, got %d", len(names))
			}
			for i, observed := range names {
				if expected := fmt.Sprintf("part%d", i); observed != expected {
					t.Errorf("Part %d: expected name %q, got %q", i, expected, observed)
				}
			}
		})
	}
}

// TestUploadFullScale runs the full-size scenario (300 array-shape records at
// scale 3000, roughly 90 MB of JSON). Skipped in short mode
func TestUploadFullScale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size upload in short mode")
	}

	records, err := payload.Generate(payload.ShapeArray, 3000, 300)
	if err != nil {
		t.Fatalf("Failed to generate records: %v", err)
	}
	buffers, err := serialize.NewParallelStrategy().SerializeAll(records)
	if err != nil {
		t.Fatalf("Failed to serialize records: %v", err)
	}
	parts := upload.NewParts(buffers)

	for name, factory := range testClients {
		t.Run(name, func(t *testing.T) {
			srv := startMock(t, common.MockConfig{})

			client := factory()
			if err := client.Connect(common.ClientConfig{Endpoint: srv.URL(), TimeoutSecond: 60}); err != nil {
				t.Fatalf("Failed to connect: %v", err)
			}
			defer client.Close()

			status, err := client.Upload(parts)
			if err != nil {
				t.Fatalf("Failed to upload: %v", err)
			}
			if status != upload.AcceptedStatus {
				t.Fatalf("Expected status %d, got %d", upload.AcceptedStatus, status)
			}
			if names := srv.LastPartNames(); len(names) != 300 {
				t.Fatalf("Expected 300 observed parts, got %d", len(names))
			}
		})
	}
}

// TestUploadUnexpectedStatus tests that a non-202 response surfaces as an
// *UnexpectedStatusError instead of silently succeeding
func TestUploadUnexpectedStatus(t *testing.T) {
	parts := testParts(t, 2)

	for name, factory := range testClients {
		t.Run(name, func(t *testing.T) {
			srv := startMock(t, common.MockConfig{Status: http.StatusInternalServerError})

			client := factory()
			if err := client.Connect(common.ClientConfig{Endpoint: srv.URL(), TimeoutSecond: 10}); err != nil {
				t.Fatalf("Failed to connect: %v", err)
			}
			defer client.Close()

			status, err := client.Upload(parts)
			if err == nil {
				t.Fatal("Expected error for status 500 but got none")
			}

			var statusErr *upload.UnexpectedStatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("Expected *UnexpectedStatusError, got %T: %v", err, err)
			}
			if statusErr.Status != http.StatusInternalServerError {
				t.Errorf("Expected error status 500, got %d", statusErr.Status)
			}
			if status != http.StatusInternalServerError {
				t.Errorf("Expected returned status 500, got %d", status)
			}
		})
	}
}

// TestUploadNotConnected tests that uploading without Connect fails
func TestUploadNotConnected(t *testing.T) {
	for name, factory := range testClients {
		if _, err := factory().Upload(nil); err == nil {
			t.Errorf("(%s) Expected error for unconnected client but got none", name)
		}
	}
}

// TestMockLogLevel tests that the configured log level is applied to the
// shared logger factory
func TestMockLogLevel(t *testing.T) {
	defer common.SetLogLevel("info")

	mock.NewServer(common.MockConfig{LogLevel: "debug"})

	if !common.CreateLogger("test").Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug logging to be enabled after configuring the mock")
	}
}

// TestMockMetrics tests that the mock endpoint exposes its request counters
func TestMockMetrics(t *testing.T) {
	srv := startMock(t, common.MockConfig{})

	client := httpclient.NewHTTPUploadClient()
	if err := client.Connect(common.ClientConfig{Endpoint: srv.URL(), TimeoutSecond: 10}); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	if _, err := client.Upload(testParts(t, 3)); err != nil {
		t.Fatalf("Failed to upload: %v", err)
	}

	resp, err := http.Get(srv.URL() + "/metrics")
	if err != nil {
		t.Fatalf("Failed to fetch metrics: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics: %v", err)
	}

	for _, metric := range []string{"mock_requests_total 1", "mock_parts_total 3"} {
		if !strings.Contains(string(body), metric) {
			t.Errorf("Expected metrics output to contain %q, got:\n%s", metric, string(body))
		}
	}
}
