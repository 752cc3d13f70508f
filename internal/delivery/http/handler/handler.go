package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ishaan-vashist/YC-News-validator/internal/delivery/http/response"
	"github.com/ishaan-vashist/YC-News-validator/internal/usecase"
)

type Handler struct {
	runs   usecase.RunService
	target int
}

func NewHandler(runs usecase.RunService, targetArticles int) *Handler {
	return &Handler{
		runs:   runs,
		target: targetArticles,
	}
}

// HandleScrape triggers a full scrape-and-validate run and responds with its
// result once it completes. A run already in flight yields 409; a run
// failure yields 500 with the failure message.
func (h *Handler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := h.runs.Run(r.Context(), h.target)
	if err != nil {
		if errors.Is(err, usecase.ErrRunInProgress) {
			h.writeJSONError(w, "Scraping already in progress", http.StatusConflict)
			return
		}
		slog.Error("Scrape run failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, response.Envelope{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    result,
	})
}

// HandleResults returns the most recent completed run.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	result, err := h.runs.Latest()
	if err != nil {
		if errors.Is(err, usecase.ErrNoResults) {
			h.writeJSONError(w, "No results available. Run scraping first.", http.StatusNotFound)
			return
		}
		slog.Error("Failed to load latest results", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    result,
	})
}

// HandleStatus reports whether a run is in flight and whether results exist.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.runs.Status())
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
