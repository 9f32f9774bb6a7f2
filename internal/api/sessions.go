package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/pai-planner/internal/session"
)

type sessionRequest struct {
	Role       string   `json:"role" validate:"required,oneof=student admin"`
	Username   string   `json:"username" validate:"required"`
	Grade      int      `json:"grade" validate:"omitempty,min=1,max=12"`
	TargetExam string   `json:"target_exam"`
	Category   string   `json:"category"`
	WeakTopics []string `json:"weak_topics"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		slog.Error("failed to load session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handlePutSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	sess := session.Session{
		Role:       session.Role(req.Role),
		Username:   req.Username,
		Grade:      req.Grade,
		TargetExam: req.TargetExam,
		Category:   req.Category,
		WeakTopics: req.WeakTopics,
	}
	if err := s.sessions.Set(r.Context(), id, sess); err != nil {
		slog.Error("failed to save session", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	saved, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload session", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Clear(r.Context(), r.PathValue("id")); err != nil {
		slog.Error("failed to clear session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
