/*
handlers.go - HTTP API handlers for the compensation engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the pure
  calculation functions. The preview endpoint runs the same calculation
  a client would run locally and returns a complete breakdown - a single
  request/response with no server-held session state.

ENDPOINTS:
  Compensation:
    POST /api/compensation/preview   Full breakdown for base pay + differentials
    POST /api/compensation/validate  Rate bounds check

  Catalog:
    GET  /api/differentials          Catalog grouped by category
    GET  /api/differentials/{type}   Single type config

  Patterns:
    GET  /api/patterns               The canonical shift patterns

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Catalog persistence
  - catalog: The loaded catalog, read-only after LoadCatalog
  - formatter: Display formatting for response strings

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, range violations, invalid input
  - 404: Unknown catalog type on direct lookup
  - 500: Internal errors

DATA QUALITY:
  Whenever the magnitude heuristic infers a pay unit, the handler logs it
  and echoes unit_inferred in the response, so free-form input problems
  surface instead of silently converting.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/compensation-engine/catalog"
	"github.com/warp/compensation-engine/compensation"
	"github.com/warp/compensation-engine/display"
	"github.com/warp/compensation-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Loaded once at startup, read-only afterwards. Every calculation
	// receives it by reference.
	catalog   compensation.Catalog
	formatter *display.Formatter
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:     store,
		catalog:   make(compensation.Catalog),
		formatter: display.Default(),
	}
}

// LoadCatalog loads the catalog from the store into memory.
func (h *Handler) LoadCatalog(ctx context.Context) error {
	cat, err := h.Store.ListTypes(ctx)
	if err != nil {
		return err
	}
	h.catalog = cat
	return nil
}

// SetCatalog injects a catalog directly, bypassing the store. Used by
// tests and by deployments that ship the catalog as a static asset.
func (h *Handler) SetCatalog(cat compensation.Catalog) {
	h.catalog = cat
}

// =============================================================================
// COMPENSATION HANDLERS
// =============================================================================

// PreviewCompensation computes a full breakdown for base pay plus a
// differential list.
func (h *Handler) PreviewCompensation(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.BasePay <= 0 {
		writeErrorCode(w, http.StatusBadRequest, "Base pay must be positive", "non_positive_base_pay", nil)
		return
	}

	basePay := compensation.Dollars(req.BasePay)
	unit, inferred := compensation.ResolveUnit(basePay, compensation.PayUnit(req.BasePayUnit))
	if inferred {
		log.Printf("unit inference applied: amount=%v declared=%q resolved=%q",
			req.BasePay, req.BasePayUnit, unit)
	}

	instances := toInstances(req.Differentials)
	if err := catalog.ValidateInstances(instances, h.catalog); err != nil {
		status := http.StatusBadRequest
		code := "out_of_range"
		if compensation.IsNotFound(err) {
			code = "unknown_differential_type"
		}
		writeErrorCode(w, status, "Invalid differential", code, err)
		return
	}

	breakdown, err := compensation.CalculateFromInstances(basePay, unit, instances, h.catalog, req.ShiftHours)
	if err != nil {
		// Ranges were just validated, so only catalog inconsistency lands here.
		writeErrorCode(w, http.StatusBadRequest, "Invalid differential", "unknown_differential_type", err)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		RequestID:    uuid.NewString(),
		Breakdown:    toBreakdownDTO(breakdown),
		Display:      toDisplayDTO(breakdown, h.formatter),
		Valid:        compensation.ValidateCompensation(basePay, unit, req.ShiftHours),
		Confidence:   string(compensation.ConfidenceFor(len(instances))),
		ResolvedUnit: string(unit),
		UnitInferred: inferred,
	})
}

// ValidateCompensation checks an amount against the hourly rate bounds.
func (h *Handler) ValidateCompensation(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	amount := compensation.Dollars(req.Amount)
	unit, inferred := compensation.ResolveUnit(amount, compensation.PayUnit(req.Unit))
	if inferred {
		log.Printf("unit inference applied: amount=%v declared=%q resolved=%q",
			req.Amount, req.Unit, unit)
	}

	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:        compensation.ValidateCompensation(amount, unit, req.ShiftHours),
		HourlyRate:   f(compensation.ToHourlyRate(amount, unit, req.ShiftHours)),
		MinHourly:    f(compensation.MinHourlyRate),
		MaxHourly:    f(compensation.MaxHourlyRate),
		ResolvedUnit: string(unit),
		UnitInferred: inferred,
	})
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListDifferentials returns the catalog grouped by category.
func (h *Handler) ListDifferentials(w http.ResponseWriter, r *http.Request) {
	grouped := h.catalog.ByCategory()

	resp := CatalogResponse{Categories: make(map[string][]TypeConfigDTO, len(compensation.Categories))}
	for _, cat := range compensation.Categories {
		cfgs := grouped[cat]
		dtos := make([]TypeConfigDTO, len(cfgs))
		for i, cfg := range cfgs {
			dtos[i] = TypeConfigDTO{Key: cfg.Key, Config: catalog.ToJSON(cfg)}
		}
		resp.Categories[string(cat)] = dtos
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDifferential returns a single catalog entry.
func (h *Handler) GetDifferential(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "type")

	cfg, ok := h.catalog.Lookup(key)
	if !ok {
		writeErrorCode(w, http.StatusNotFound, "Differential type not found", "unknown_differential_type",
			&compensation.UnknownTypeError{Type: key})
		return
	}

	writeJSON(w, http.StatusOK, TypeConfigDTO{Key: cfg.Key, Config: catalog.ToJSON(cfg)})
}

// ListPatterns returns the three canonical shift patterns.
func (h *Handler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	dtos := make([]PatternDTO, len(compensation.CanonicalShiftLengths))
	for i, l := range compensation.CanonicalShiftLengths {
		dtos[i] = toPatternDTO(l.Pattern())
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
