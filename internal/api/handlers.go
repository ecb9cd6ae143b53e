// Package api exposes HTTP handlers for workout summaries.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"example.com/workouts/internal/auth"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/report"
)

const defaultMaxBatchSize = 500

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service      *domain.Service
	maxBatchSize int
}

// NewHandler builds a Handler. A non-positive maxBatchSize selects the default.
func NewHandler(service *domain.Service, maxBatchSize int) *Handler {
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}
	return &Handler{service: service, maxBatchSize: maxBatchSize}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts/summary", h.summary)
	mux.HandleFunc("/v1/workouts/summaries", h.summaries)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !authorize(w, r) {
		return
	}

	var req PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	summary, err := h.service.Compute(r.Context(), req.toPackage())
	if err != nil {
		writeError(w, statusFor(err), domain.ErrorKind(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		RequestID:   uuid.NewString(),
		SummaryView: toSummaryView(summary),
	})
}

func (h *Handler) summaries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !authorize(w, r) {
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if len(req.Packages) == 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "packages must not be empty")
		return
	}
	if len(req.Packages) > h.maxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge, "validation_failed",
			fmt.Sprintf("at most %d packages per request", h.maxBatchSize))
		return
	}

	packages := make([]domain.Package, 0, len(req.Packages))
	for i, pkg := range req.Packages {
		if err := pkg.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", fmt.Sprintf("packages[%d]: %v", i, err))
			return
		}
		packages = append(packages, pkg.toPackage())
	}

	// Per-package failures are reported inline; the combined error is not needed here.
	results, _ := h.service.ComputeBatch(r.Context(), packages)

	resp := BatchResponse{
		RequestID: uuid.NewString(),
		Items:     make([]BatchItem, 0, len(results)),
	}
	for _, res := range results {
		item := BatchItem{Index: res.Index, Code: res.Package.Code}
		if res.Err != nil {
			item.Error = &ErrorView{Type: domain.ErrorKind(res.Err), Detail: res.Err.Error()}
			resp.Failed++
		} else {
			view := toSummaryView(res.Summary)
			item.Summary = &view
		}
		resp.Items = append(resp.Items, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

func authorize(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(auth.ScopeWorkoutsCompute) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+auth.ScopeWorkoutsCompute+" required")
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownWorkoutType),
		errors.Is(err, domain.ErrArgumentCount),
		errors.Is(err, domain.ErrArgumentType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PackageRequest is the payload for POST /v1/workouts/summary.
type PackageRequest struct {
	Code string    `json:"code"`
	Args []float64 `json:"args"`
}

// Validate ensures request correctness.
func (r PackageRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("code is required")
	}
	if len(r.Args) == 0 {
		return errors.New("args are required")
	}
	return nil
}

func (r PackageRequest) toPackage() domain.Package {
	return domain.Package{Code: r.Code, Args: r.Args}
}

// BatchRequest is the payload for POST /v1/workouts/summaries.
type BatchRequest struct {
	Packages []PackageRequest `json:"packages"`
}

// SummaryView exposes computed metrics and the rendered message.
type SummaryView struct {
	TrainingType  string  `json:"training_type"`
	DurationHours float64 `json:"duration_h"`
	DistanceKm    float64 `json:"distance_km"`
	SpeedKmh      float64 `json:"speed_kmh"`
	Calories      float64 `json:"calories"`
	Message       string  `json:"message"`
}

// SummaryResponse describes the response body for a single package.
type SummaryResponse struct {
	RequestID string `json:"request_id"`
	SummaryView
}

// ErrorView describes why a package could not be summarized.
type ErrorView struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// BatchItem is the outcome of one package; exactly one of Summary and Error is set.
type BatchItem struct {
	Index   int          `json:"index"`
	Code    string       `json:"code"`
	Summary *SummaryView `json:"summary,omitempty"`
	Error   *ErrorView   `json:"error,omitempty"`
}

// BatchResponse packages batch results in request order.
type BatchResponse struct {
	RequestID string      `json:"request_id"`
	Items     []BatchItem `json:"items"`
	Failed    int         `json:"failed"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, ErrorView{Type: code, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toSummaryView(s domain.Summary) SummaryView {
	return SummaryView{
		TrainingType:  s.TrainingType,
		DurationHours: s.DurationHours,
		DistanceKm:    s.DistanceKm,
		SpeedKmh:      s.SpeedKmh,
		Calories:      s.Calories,
		Message:       report.Render(s),
	}
}
