package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/internal/store"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

type savedResponse struct {
	ID       string   `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

type scheduleResponse struct {
	Kind     domain.ScenarioKind `json:"kind"`
	Name     string              `json:"name"`
	Schedule domain.Schedule     `json:"schedule"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInputs(w, r)
	if !ok {
		return
	}
	a, err := s.svc.Analyze(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInputs(w, r)
	if !ok {
		return
	}
	id, err := s.svc.SaveInputs(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, savedResponse{ID: id, Warnings: config.Warnings(in)})
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	in, err := s.svc.LoadInputs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, in)
}

func (s *Server) handleAnalyzeScenario(w http.ResponseWriter, r *http.Request) {
	a, err := s.svc.AnalyzeSaved(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseScenarioKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	sched, err := s.svc.Schedule(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if sched == nil {
		sched = domain.Schedule{}
	}
	writeJSON(w, http.StatusOK, scheduleResponse{Kind: kind, Name: kind.Label(), Schedule: sched})
}

func (s *Server) decodeInputs(w http.ResponseWriter, r *http.Request) (domain.LoanInputs, bool) {
	var in domain.LoanInputs
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return in, false
	}
	for _, warning := range config.Warnings(in) {
		s.log.Debug("input warning", zap.String("warning", warning))
	}
	return in, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, calculation.ErrUnknownScenario):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: fmt.Sprintf("failed to encode response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
