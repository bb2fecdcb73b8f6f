package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
)

type extensionResponse struct {
	Name string `json:"name"`
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.dashboard.SnapshotQuery(r.Context())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, snapshot)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dashboard.SummaryQuery(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleDeploymentOff(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.TurnOffCommand(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, d)
}

func (s *Server) handleDeploymentOn(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.TurnOnCommand(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, d)
}

func (s *Server) handleDeploymentRestart(w http.ResponseWriter, r *http.Request) {
	err := s.dashboard.RestartCommand(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, struct{}{})
}

func (s *Server) handlePodLog(w http.ResponseWriter, r *http.Request) {
	timestamps, _ := strconv.ParseBool(r.URL.Query().Get("timestamps"))

	out, err := s.dashboard.PodLogQuery(
		r.Context(),
		chi.URLParam(r, "name"),
		chi.URLParam(r, "container"),
		timestamps,
	)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(out); err != nil {
		s.logger.DebugContext(r.Context(), "write pod log", "reason", err)
	}
}

func (s *Server) handlePodDelete(w http.ResponseWriter, r *http.Request) {
	err := s.dashboard.DeletePodCommand(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, struct{}{})
}

func (s *Server) handlePodDeleteAll(w http.ResponseWriter, r *http.Request) {
	results, err := s.dashboard.DeleteAllPodsCommand(r.Context())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, results)
}

func (s *Server) handleExtensions(w http.ResponseWriter, r *http.Request) {
	out := make([]extensionResponse, 0, len(s.opts.Extensions))
	for _, ext := range s.opts.Extensions {
		out = append(out, extensionResponse{Name: ext.Name})
	}

	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"reason", err,
		)
	}
}

// writeError answers with the error text, like the cluster API errors the
// frontend already shows verbatim.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	s.logger.WarnContext(r.Context(), "request failed",
		"user", userFrom(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"traceID", middleware.GetReqID(r.Context()),
		"reason", err,
	)

	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrNotStoppedByOnOff):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrProtectedWorkload):
		return http.StatusForbidden
	case dashboard.IsNotFound(err):
		return http.StatusNotFound
	case dashboard.IsConflict(err):
		return http.StatusConflict
	}

	return http.StatusBadGateway
}
