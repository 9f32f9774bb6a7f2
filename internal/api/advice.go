package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/pai-planner/internal/activity"
	"github.com/p-n-ai/pai-planner/internal/catalog"
	"github.com/p-n-ai/pai-planner/internal/learning"
	"github.com/p-n-ai/pai-planner/internal/session"
)

type recommendationsRequest struct {
	Grade      int              `json:"grade" validate:"omitempty,min=1,max=12"`
	TargetExam string           `json:"target_exam"`
	WeakAreas  []string         `json:"weak_areas"`
	Subjects   []subjectRequest `json:"subjects" validate:"dive"`
}

type recommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

type scheduleRequest struct {
	Subjects   []subjectRequest    `json:"subjects" validate:"dive"`
	WeakTopics []string            `json:"weak_topics"`
	Resources  []learning.Resource `json:"resources"`
}

type scheduleResponse struct {
	Weeks []learning.WeekPlan `json:"weeks"`
}

type quizRequest struct {
	WeakAreas  []string `json:"weak_areas"`
	Difficulty string   `json:"difficulty" validate:"omitempty,level"`
}

type quizResponse struct {
	Quiz []learning.QuizItem `json:"quiz"`
}

// currentSession returns the session named by the X-Session-ID header.
// Missing headers and unknown sessions yield false.
func (s *Server) currentSession(r *http.Request) (session.Session, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		return session.Session{}, false
	}
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Warn("failed to load session", "session_id", id, "error", err)
		}
		return session.Session{}, false
	}
	return sess, true
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if sess, ok := s.currentSession(r); ok {
		if req.Grade == 0 {
			req.Grade = sess.Grade
		}
		if req.TargetExam == "" {
			req.TargetExam = sess.TargetExam
		}
		if len(req.WeakAreas) == 0 {
			req.WeakAreas = sess.WeakTopics
		}
	}
	if req.Grade == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []FieldError{{Field: "grade", Error: "grade is required when the session has none"}},
		})
		return
	}

	recs := learning.Recommendations(req.Grade, req.TargetExam, req.WeakAreas, toSubjects(req.Subjects))

	s.logEvent(r, activity.EventRecommendationsGenerated, map[string]any{
		"grade":       req.Grade,
		"target_exam": req.TargetExam,
		"count":       len(recs),
	})
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if len(req.WeakTopics) == 0 {
		if sess, ok := s.currentSession(r); ok {
			req.WeakTopics = sess.WeakTopics
		}
	}

	var resources []learning.Resource
	if req.Resources != nil {
		resources = make([]learning.Resource, len(req.Resources))
		for i, res := range req.Resources {
			resources[i] = catalog.Normalize(res)
		}
	} else {
		all, err := s.catalog.List(r.Context())
		if err != nil {
			slog.Error("failed to list resources", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list resources")
			return
		}
		resources = all
	}

	weeks := learning.BuildSchedule(toSubjects(req.Subjects), req.WeakTopics, resources)
	total := 0
	for _, wp := range weeks {
		total += wp.TotalHours
	}

	s.logEvent(r, activity.EventScheduleGenerated, map[string]any{
		"subjects":    len(req.Subjects),
		"total_hours": total,
	})
	writeJSON(w, http.StatusOK, scheduleResponse{Weeks: weeks})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if len(req.WeakAreas) == 0 {
		if sess, ok := s.currentSession(r); ok {
			req.WeakAreas = sess.WeakTopics
		}
	}

	difficulty := levelOrDefault(req.Difficulty)
	quiz := learning.GenerateQuiz(req.WeakAreas, difficulty, s.quizSource)

	s.logEvent(r, activity.EventQuizGenerated, map[string]any{
		"difficulty": string(difficulty),
		"items":      len(quiz),
	})
	writeJSON(w, http.StatusOK, quizResponse{Quiz: quiz})
}
