package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/physio"
)

// estimateResponse wraps a report with an envelope so callers can reference
// individual estimates.
type estimateResponse struct {
	ReportID    string         `json:"report_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Report      *budget.Report `json:"report"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	// Start from the configured defaults; fields present in the body
	// overwrite them, absent fields keep their default.
	params := s.defaults
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	report, err := budget.Estimate(params, s.policy)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, estimateResponse{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Report:      report,
	})
}

func (s *Server) handlePhysiology(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("altitude_m")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "altitude_m parameter required"})
		return
	}
	altitude, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "altitude_m must be a number"})
		return
	}
	if altitude < 0 || altitude > physio.MaxAltitudeMeters {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "altitude_m must be within [0, 8000]"})
		return
	}

	writeJSON(w, http.StatusOK, physio.ProfileAt(altitude))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
