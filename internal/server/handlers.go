package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

// maxRequestBody bounds the analyze request payload at 1 MiB.
const maxRequestBody = 1 << 20

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body")
		return
	}

	in, err := painpoint.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.engine.Analyze(in, s.maxResults)
	if err != nil {
		var verr *painpoint.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusUnprocessableEntity, verr.Error())
		case errors.Is(err, engine.ErrNotLoaded):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var recordID string
	if s.store != nil {
		// Recording failures must not fail the analysis response.
		if id, err := s.store.Save(r.Context(), in, out); err != nil {
			log.Printf("recording analysis: %v", err)
		} else {
			recordID = id
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Output: out, RecordID: recordID})
}

// analyzeResponse is the engine output plus the history record ID, when one
// was stored.
type analyzeResponse struct {
	*engine.Output
	RecordID string `json:"record_id,omitempty"`
}

// featureSummary is the list representation of a catalog entry.
type featureSummary struct {
	ID          string `json:"feature_id"`
	Name        string `json:"feature_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Complexity  string `json:"complexity"`
}

func (s *Server) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	if cat == nil {
		writeError(w, http.StatusServiceUnavailable, engine.ErrNotLoaded.Error())
		return
	}

	category := r.URL.Query().Get("category")

	summaries := []featureSummary{}
	for i := range cat.Features {
		entry := &cat.Features[i]
		if category != "" && string(entry.Category) != category {
			continue
		}
		summaries = append(summaries, featureSummary{
			ID:          entry.ID,
			Name:        entry.Name,
			Category:    string(entry.Category),
			Description: entry.Description.Short,
			Complexity:  string(entry.Implementation.Complexity),
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	if cat == nil {
		writeError(w, http.StatusServiceUnavailable, engine.ErrNotLoaded.Error())
		return
	}

	entry := cat.FindByID(chi.URLParam(r, "id"))
	if entry == nil {
		writeError(w, http.StatusNotFound, "feature not found")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
