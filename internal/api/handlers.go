// Package api exposes HTTP handlers for the workout service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"example.com/workout/internal/auth"
	"example.com/workout/internal/domain"
	"example.com/workout/internal/events"
	httptransport "example.com/workout/internal/transport/http"
)

const defaultBatchLimit = 100

// Option configures optional behaviour for the Handler.
type Option func(*Handler)

// WithLogger overrides the logger used to report server errors.
func WithLogger(logger *log.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithBatchLimit caps the number of packages accepted by the batch endpoint.
func WithBatchLimit(limit int) Option {
	return func(h *Handler) {
		if limit > 0 {
			h.batchLimit = limit
		}
	}
}

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service    *domain.Service
	logger     *log.Logger
	batchLimit int
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, opts ...Option) *Handler {
	h := &Handler{
		service:    service,
		logger:     log.New(log.Writer(), "[api] ", log.LstdFlags),
		batchLimit: defaultBatchLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/workouts/summaries", h.createSummary)
	mux.HandleFunc("POST /v1/workouts/summaries/batch", h.createSummaryBatch)
	mux.HandleFunc("GET /v1/workouts/types", h.listTypes)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) createSummary(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r) {
		return
	}

	var req events.WorkoutPackage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptransport.WriteError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	summary, err := h.service.Summarize(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	httptransport.WriteJSON(w, http.StatusOK, toSummaryView(*summary))
}

func (h *Handler) createSummaryBatch(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r) {
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptransport.WriteError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if len(req.Packages) == 0 {
		httptransport.WriteError(w, http.StatusBadRequest, "validation_failed", "packages must not be empty")
		return
	}
	if len(req.Packages) > h.batchLimit {
		httptransport.WriteError(w, http.StatusBadRequest, "validation_failed", fmt.Sprintf("at most %d packages per batch", h.batchLimit))
		return
	}

	summaries, err := h.service.SummarizeBatch(r.Context(), req.Packages)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := BatchResponse{Items: make([]SummaryView, 0, len(summaries))}
	for _, s := range summaries {
		resp.Items = append(resp.Items, toSummaryView(s))
	}
	httptransport.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r) {
		return
	}
	httptransport.WriteJSON(w, http.StatusOK, TypesResponse{Items: domain.Codes()})
}

func authorize(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		httptransport.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasAnyScope(auth.ScopeWorkoutsRead, auth.ScopeWorkoutsWrite) {
		httptransport.WriteError(w, http.StatusForbidden, "forbidden", "scope workouts:read required")
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInputData) {
		httptransport.WriteError(w, http.StatusUnprocessableEntity, "invalid_input_data", err.Error())
		return
	}
	h.logger.Printf("summarize failed: %v", err)
	httptransport.WriteError(w, http.StatusInternalServerError, "server_error", "unable to summarize workout")
}

// BatchRequest is the payload for POST /v1/workouts/summaries/batch.
type BatchRequest struct {
	Packages []events.WorkoutPackage `json:"packages"`
}

// SummaryView exposes a computed summary.
type SummaryView struct {
	SummaryID    string    `json:"summary_id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	SpeedKmh     float64   `json:"mean_speed_kmh"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	ComputedAt   time.Time `json:"computed_at"`
}

// BatchResponse packages batch results in input order.
type BatchResponse struct {
	Items []SummaryView `json:"items"`
}

// TypesResponse lists the accepted workout codes.
type TypesResponse struct {
	Items []string `json:"items"`
}

func toSummaryView(s domain.Summary) SummaryView {
	return SummaryView{
		SummaryID:    s.ID,
		WorkoutType:  s.WorkoutType,
		TrainingType: s.Info.TrainingType,
		DurationH:    s.Info.Duration,
		DistanceKm:   s.Info.Distance,
		SpeedKmh:     s.Info.Speed,
		Calories:     s.Info.Calories,
		Message:      s.Message,
		ComputedAt:   s.ComputedAt,
	}
}
