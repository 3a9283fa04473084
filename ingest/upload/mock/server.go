// Package mock provides a deterministic stand-in for the ingestion endpoint.
// It accepts the upload route, replies with a fixed status and an empty body,
// and records what it observed, so client-side timing is isolated from real
// network variance and the benchmark can assert on the request it produced.
//
// The server is a scoped resource: the harness starts it before measurement
// and stops it when the benchmark group completes.
package mock

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/jhenke/ingestbench/ingest/upload"
	"github.com/puzpuzpuz/xsync/v3"
)

var logger = common.CreateLogger("upload/mock")

// Server is the mock ingestion endpoint
type Server struct {
	config   common.MockConfig
	listener net.Listener
	srv      *http.Server

	requests atomic.Uint64
	partLog  *xsync.MapOf[uint64, []string]

	set           *metrics.Set
	requestsTotal *metrics.Counter
	partsTotal    *metrics.Counter
}

// NewServer creates a new mock endpoint. A zero Status in the config defaults
// to 202 Accepted; an empty LogLevel leaves the process log level untouched
func NewServer(config common.MockConfig) *Server {
	if config.Status == 0 {
		config.Status = upload.AcceptedStatus
	}
	if config.LogLevel != "" {
		common.SetLogLevel(config.LogLevel)
	}

	set := metrics.NewSet()
	return &Server{
		config:        config,
		partLog:       xsync.NewMapOf[uint64, []string](),
		set:           set,
		requestsTotal: set.NewCounter("mock_requests_total"),
		partsTotal:    set.NewCounter("mock_parts_total"),
	}
}

// Start binds the listener and serves in the background. If no endpoint is
// configured, an ephemeral port on 127.0.0.1 is used
func (s *Server) Start() error {
	endpoint := s.config.Endpoint
	if endpoint == "" {
		endpoint = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", endpoint)
	if err != nil {
		return err
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+upload.UploadRoute, s.handleUpload)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	s.srv = &http.Server{Handler: mux}
	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("mock endpoint stopped: %v", err)
		}
	}()

	logger.Infof("mock endpoint listening on %s", s.URL())
	return nil
}

// URL returns the base URL clients should be configured with
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Stop shuts the server down, waiting briefly for in-flight requests
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Requests returns how many upload requests the server has observed
func (s *Server) Requests() uint64 {
	return s.requests.Load()
}

// LastPartNames returns the part names observed in the most recent upload
// request, in wire order
func (s *Server) LastPartNames() []string {
	names, _ := s.partLog.Load(s.requests.Load())
	return names
}

// --------------------------------------------------------------------------
// Handlers
// --------------------------------------------------------------------------

// handleUpload walks the multipart body, records the part names it observed
// and replies with the configured status and an empty body
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := s.requests.Add(1)
	s.requestsTotal.Inc()

	reader, err := r.MultipartReader()
	if err != nil {
		http.Error(w, "expected multipart/form-data body", http.StatusBadRequest)
		return
	}

	names := make([]string, 0)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			http.Error(w, "malformed multipart body", http.StatusBadRequest)
			return
		}

		names = append(names, part.FormName())
		if _, err := io.Copy(io.Discard, part); err != nil {
			http.Error(w, "failed to read part body", http.StatusBadRequest)
			return
		}
		s.partsTotal.Inc()
	}
	s.partLog.Store(id, names)

	w.WriteHeader(s.config.Status)
}

// handleMetrics exposes the request counters in Prometheus text format
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	s.set.WritePrometheus(w)
}
