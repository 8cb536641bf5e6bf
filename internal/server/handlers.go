package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/agbru/enrichd/internal/errors"
	"github.com/agbru/enrichd/internal/logging"
)

// ProcessRequest is the wire format of the POST /process request body.
type ProcessRequest struct {
	InputData string            `json:"input_data"`
	Options   map[string]string `json:"options"`
}

// ProcessResponse is the wire format of a successful POST /process call. The
// per-source payloads are JSON documents serialized as strings; a source that
// failed or returned nothing contributes "{}".
type ProcessResponse struct {
	ProcessedData    string  `json:"processed_data"`
	SourceAData      string  `json:"source_a_data"`
	SourceBData      string  `json:"source_b_data"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

// HealthResponse is the wire format of GET /health.
type HealthResponse struct {
	Status    string       `json:"status"`
	Service   string       `json:"service"`
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	System    SystemHealth `json:"system"`
}

// SystemHealth carries a point-in-time host and process snapshot.
type SystemHealth struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	Goroutines    int     `json:"goroutines"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// handleProcess validates the request, runs the orchestrated enrichment and
// writes the combined result. Upstream failures are absorbed upstream of this
// handler; only a combination failure yields a 500.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req ProcessRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.InputData) == "" {
		verr := apperrors.ValidationError{Field: "input_data", Message: "must not be empty"}
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	result, err := s.processor.Process(r.Context(), req.InputData, req.Options)
	if err != nil {
		s.logger.Error("failed to process data", err)
		message := "Processing failed"
		if s.cfg.Debug {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, message)
		return
	}

	resp := ProcessResponse{
		ProcessedData:    result.ProcessedData,
		SourceAData:      "{}",
		SourceBData:      "{}",
		ProcessingTimeMS: result.ElapsedMilliseconds(),
	}
	if len(result.Sources) > 0 {
		resp.SourceAData = stringifyPayload(result.Sources[0].Payload)
	}
	if len(result.Sources) > 1 {
		resp.SourceBData = stringifyPayload(result.Sources[1].Payload)
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.logger.Error("failed to write response", err)
	}
}

// stringifyPayload renders a source payload as a compact JSON string. Empty
// or unserializable payloads render as "{}".
func stringifyPayload(payload map[string]any) string {
	if len(payload) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// handleHealth reports service identity and a host resource snapshot. It has
// no dependency on the upstream sources, so it stays green while they fail.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	stats := s.monitor.Snapshot()
	resp := HealthResponse{
		Status:    "healthy",
		Service:   "enrichd",
		Version:   s.cfg.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		System: SystemHealth{
			CPUPercent:    stats.CPUPercent,
			MemPercent:    stats.MemPercent,
			Goroutines:    stats.Goroutines,
			UptimeSeconds: stats.UptimeSeconds,
		},
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.logger.Error("failed to write response", err)
	}
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}
