package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/pai-planner/internal/activity"
	"github.com/p-n-ai/pai-planner/internal/export"
	"github.com/p-n-ai/pai-planner/internal/learning"
)

type subjectRequest struct {
	Name         string   `json:"name" validate:"required"`
	Weightage    float64  `json:"weightage"`
	WeakTopics   []string `json:"weak_topics"`
	CurrentLevel string   `json:"current_level" validate:"omitempty,level"`
}

func (sr subjectRequest) subject() learning.Subject {
	return learning.Subject{
		Name:         sr.Name,
		Weightage:    sr.Weightage,
		WeakTopics:   sr.WeakTopics,
		CurrentLevel: learning.ParseLevel(sr.CurrentLevel),
	}
}

func toSubjects(reqs []subjectRequest) []learning.Subject {
	subjects := make([]learning.Subject, len(reqs))
	for i, sr := range reqs {
		subjects[i] = sr.subject()
	}
	return subjects
}

type studyPlanRequest struct {
	Subjects []subjectRequest `json:"subjects" validate:"dive"`
}

type studyPlanResponse struct {
	Items      []learning.StudyPlanItem `json:"items"`
	TotalHours int                      `json:"total_hours"`
}

func (s *Server) handleGenerateStudyPlan(w http.ResponseWriter, r *http.Request) {
	var req studyPlanRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	subjects := toSubjects(req.Subjects)
	items := learning.GenerateStudyPlan(subjects, nil)
	if items == nil {
		items = []learning.StudyPlanItem{}
	}
	total := 0
	for _, item := range items {
		total += item.EstimatedHours
	}

	s.logEvent(r, activity.EventStudyPlanGenerated, map[string]any{
		"subjects":    len(subjects),
		"items":       len(items),
		"total_hours": total,
	})

	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		if err := export.WriteStudyPlanXLSX(&buf, items); err != nil {
			slog.Error("failed to export study plan", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to export study plan")
			return
		}
		w.Header().Set("Content-Type", export.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="study-plan.xlsx"`)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	writeJSON(w, http.StatusOK, studyPlanResponse{Items: items, TotalHours: total})
}
