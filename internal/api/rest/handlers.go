package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fortuna/apollo/internal/store"
	"github.com/fortuna/apollo/internal/store/repository"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db      *store.Database
	runRepo *repository.RunRepository
}

// NewHandler creates a new handler
func NewHandler(db *store.Database) *Handler {
	return &Handler{
		db:      db,
		runRepo: repository.NewRunRepository(db),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "apollo",
	})
}

// ListRuns returns the most recent archived runs
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	runs, err := h.runRepo.ListRuns(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch runs", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(runs),
		"runs":  runs,
	})
}

// GetRun returns one archived run's metadata
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(mux.Vars(r)["runID"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid run ID", err)
		return
	}

	run, err := h.runRepo.GetRun(r.Context(), runID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Run not found", err)
		return
	}

	respondJSON(w, http.StatusOK, run)
}

// GetRunTable returns one archived ranked table
func (h *Handler) GetRunTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	runID, err := strconv.ParseInt(vars["runID"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid run ID", err)
		return
	}

	rows, err := h.runRepo.GetTable(r.Context(), runID, vars["name"])
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch table", err)
		return
	}
	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "Table not found for run", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": runID,
		"table":  vars["name"],
		"rows":   rows,
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
