package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/pai-planner/internal/activity"
	"github.com/p-n-ai/pai-planner/internal/catalog"
	"github.com/p-n-ai/pai-planner/internal/learning"
)

const defaultLevel = learning.Intermediate

type resourceRequest struct {
	ID         string   `json:"id"`
	Title      string   `json:"title" validate:"required"`
	Type       string   `json:"type" validate:"required,resource_type"`
	Difficulty string   `json:"difficulty" validate:"required,level"`
	Topics     []string `json:"topics" validate:"required,min=1,dive,required"`
	Quality    int      `json:"quality" validate:"min=1,max=5"`
	Duration   *int     `json:"duration" validate:"omitempty,min=0"`
	URL        string   `json:"url" validate:"required"`
	EmbedURL   string   `json:"embed_url"`
}

func (req resourceRequest) resource() learning.Resource {
	return learning.Resource{
		ID:         req.ID,
		Title:      req.Title,
		Type:       learning.ResourceType(req.Type),
		Difficulty: learning.Level(req.Difficulty),
		Topics:     req.Topics,
		Quality:    req.Quality,
		Duration:   req.Duration,
		URL:        req.URL,
		EmbedURL:   req.EmbedURL,
	}
}

type rankRequest struct {
	Topic            string              `json:"topic" validate:"required"`
	UserLevel        string              `json:"user_level" validate:"omitempty,level"`
	TargetDifficulty string              `json:"target_difficulty" validate:"omitempty,level"`
	Resources        []learning.Resource `json:"resources"`
}

type rankResponse struct {
	Resources []learning.RankedResource `json:"resources"`
}

type resourcesResponse struct {
	Resources []learning.Resource `json:"resources"`
}

func levelOrDefault(s string) learning.Level {
	if s == "" {
		return defaultLevel
	}
	return learning.ParseLevel(s)
}

func (s *Server) handleRankResources(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
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

	userLevel := levelOrDefault(req.UserLevel)
	target := levelOrDefault(req.TargetDifficulty)
	ranked := learning.RankResources(resources, req.Topic, userLevel, target)
	if ranked == nil {
		ranked = []learning.RankedResource{}
	}

	data := map[string]any{
		"topic":             req.Topic,
		"user_level":        string(userLevel),
		"target_difficulty": string(target),
		"count":             len(ranked),
	}
	if len(ranked) > 0 {
		data["top_resource"] = ranked[0].ID
	}
	s.logEvent(r, activity.EventResourcesRanked, data)

	writeJSON(w, http.StatusOK, rankResponse{Resources: ranked})
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to list resources", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list resources")
		return
	}
	if topic := r.URL.Query().Get("topic"); topic != "" {
		resources = learning.FilterByRelevance(resources, topic)
	}
	if resources == nil {
		resources = []learning.Resource{}
	}
	writeJSON(w, http.StatusOK, resourcesResponse{Resources: resources})
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAddResource(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.catalog.Add(r.Context(), req.resource())
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}

	s.logEvent(r, activity.EventResourceAdded, map[string]any{
		"resource_id": res.ID,
		"type":        string(res.Type),
		"difficulty":  string(res.Difficulty),
	})
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, catalog.ErrExists):
		writeError(w, http.StatusConflict, "resource already exists")
	default:
		slog.Error("catalog operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
