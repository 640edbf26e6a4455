package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yourusername/cornerflag/internal/analysis"
	"github.com/yourusername/cornerflag/internal/models"
)

// valueBetsResponse is the envelope for the value-bets listing
type valueBetsResponse struct {
	Count  int                      `json:"count"`
	Sort   string                   `json:"sort"`
	Cached bool                     `json:"cached"`
	Bets   []models.ValueAssessment `json:"bets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleValueBets serves GET /api/v1/value-bets?sort=ev|edge|date&limit=N
func (s *Server) handleValueBets(w http.ResponseWriter, r *http.Request) {
	policy, err := parseSortPolicy(r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("limit must be a positive integer"))
			return
		}
	}

	cacheKey := fmt.Sprintf("value-bets:%s:%d", policy, limit)
	if cached, found := s.cache.Get(cacheKey); found {
		response := cached.(valueBetsResponse)
		response.Cached = true
		s.writeJSON(w, http.StatusOK, response)
		return
	}

	bets, err := s.analysis.FindValueBets(r.Context(), policy, limit)
	if err != nil {
		s.logger.WithError(err).Error("Value bet analysis failed")
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("analysis failed"))
		return
	}
	if bets == nil {
		bets = []models.ValueAssessment{}
	}

	response := valueBetsResponse{
		Count: len(bets),
		Sort:  string(policy),
		Bets:  bets,
	}
	s.cache.SetDefault(cacheKey, response)
	s.writeJSON(w, http.StatusOK, response)
}

// handleMatchAssessment serves GET /api/v1/matches/{matchID}/assessment
func (s *Server) handleMatchAssessment(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid match id"))
		return
	}

	assessment, err := s.analysis.AssessMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, fmt.Errorf("match not found"))
			return
		}
		s.logger.WithError(err).WithField("match_id", matchID).Error("Match assessment failed")
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("assessment failed"))
		return
	}

	s.writeJSON(w, http.StatusOK, assessment)
}

// parseSortPolicy validates the sort query parameter, defaulting to EV
func parseSortPolicy(raw string) (analysis.SortPolicy, error) {
	switch raw {
	case "", string(analysis.SortByExpectedValue):
		return analysis.SortByExpectedValue, nil
	case string(analysis.SortByEdge):
		return analysis.SortByEdge, nil
	case string(analysis.SortByDate):
		return analysis.SortByDate, nil
	default:
		return "", fmt.Errorf("unknown sort policy %q", raw)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
