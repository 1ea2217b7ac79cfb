package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paikeys/paikeys/internal/apidoc"
	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/errors"
	"github.com/paikeys/paikeys/internal/health"
	"github.com/paikeys/paikeys/internal/router"
)

const (
	msgFieldsRequired = "prompt, modality, and priority are required"
	msgRouteFailed    = "Failed to route model"
)

type routeModelRequest struct {
	Prompt   string `json:"prompt"`
	Modality string `json:"modality"`
	Priority string `json:"priority"`
}

type routeModelResponse struct {
	Recommendation router.ModelDefinition   `json:"recommendation"`
	Alternatives   []router.ModelDefinition `json:"alternatives"`
	Insights       router.Insights          `json:"insights"`
}

type listModelsResponse struct {
	Models []router.ModelDefinition `json:"models"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleListModels serves GET /api/route-model.
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	catalog := s.router.Catalog()
	etag := fmt.Sprintf("%q", catalog.Digest())

	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSON(w, http.StatusOK, listModelsResponse{Models: catalog.Models()})
}

// handleRouteModel serves POST /api/route-model.
func (s *Server) handleRouteModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.WithContext(ctx)

	var body routeModelRequest
	if err := decodeBody(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.NewMalformedRequestError(err))
		return
	}
	if body.Prompt == "" || body.Modality == "" || body.Priority == "" {
		s.metrics.RecordError(string(errors.ErrCodeRequestPrompt), "http")
		logger.Debug("request missing fields")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgFieldsRequired})
		return
	}

	start := time.Now()
	result, err := s.router.Route(router.RoutingRequest{
		Prompt:   body.Prompt,
		Modality: domain.Modality(body.Modality),
		Priority: domain.Priority(body.Priority),
	})
	if err != nil {
		if errors.IsInvalidRequest(err) {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	s.metrics.RecordDecision(body.Modality, body.Priority, result.Primary.ID, result.ModalityFallback,
		result.Insights.EstimatedTokens, time.Since(start))

	if result.ModalityFallback {
		logger.Warn("no model supports modality, ranked full catalog", "modality", body.Modality)
	}
	logger.Info("route decided",
		"modality", body.Modality,
		"priority", body.Priority,
		"primary", result.Primary.ID,
		"contenders", len(result.Contenders),
		"estimated_tokens", result.Insights.EstimatedTokens,
	)

	writeJSON(w, http.StatusOK, routeModelResponse{
		Recommendation: result.Primary,
		Alternatives:   result.Contenders,
		Insights:       result.Insights,
	})
}

// decodeBody decodes exactly one JSON value from body into v.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON object")
	}
	return nil
}

// handleNoRoute answers requests no pattern matches with a JSON 404, or a
// JSON 405 listing the allowed methods when the path exists.
func handleNoRoute(w http.ResponseWriter, allowed []string) {
	if len(allowed) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
		return
	}
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}

// handleOpenAPI serves the embedded API description.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(apidoc.YAML())
}

// writeError logs err and writes it as a JSON error body. 5xx bodies never
// carry error details.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.CodeOf(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.metrics.RecordError(string(code), "http")

	if status >= http.StatusInternalServerError {
		s.logger.LogErrorContext(r.Context(), err)
		writeJSON(w, status, errorResponse{Error: msgRouteFailed})
		return
	}

	s.logger.WithContext(r.Context()).WithError(err).Info("request rejected")

	message := err.Error()
	var re *errors.RouterError
	if stderrors.As(err, &re) {
		message = re.Message
	}
	writeJSON(w, status, errorResponse{Error: message, Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProbeResponse answers 200 unless the probe is unhealthy.
func (s *Server) writeProbeResponse(w http.ResponseWriter, result *health.ProbeResult, unhealthyStatus int) {
	status := http.StatusOK
	if result.Status == health.StatusUnhealthy {
		status = unhealthyStatus
	}
	writeJSON(w, status, result)
}

// handleLiveness always answers 200, even while shutting down.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	s.writeProbeResponse(w, s.probeManager.CheckLiveness(r.Context()), http.StatusOK)
}

// handleReadiness answers 503 while shutting down or when a checker is unhealthy.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	s.writeProbeResponse(w, s.probeManager.CheckReadiness(r.Context()), http.StatusServiceUnavailable)
}

// handleStartup answers 503 until the server has started.
func (s *Server) handleStartup(w http.ResponseWriter, r *http.Request) {
	s.writeProbeResponse(w, s.probeManager.CheckStartup(r.Context()), http.StatusServiceUnavailable)
}
