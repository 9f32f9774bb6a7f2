// Package catalog stores the learning resources offered to students.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/p-n-ai/pai-planner/internal/learning"
	"github.com/p-n-ai/pai-planner/internal/platform/idgen"
)

var (
	// ErrNotFound is returned when no resource has the requested ID.
	ErrNotFound = errors.New("resource not found")
	// ErrExists is returned when adding a resource whose ID is taken.
	ErrExists = errors.New("resource already exists")
)

// Catalog persists resources in insertion order.
type Catalog interface {
	List(ctx context.Context) ([]learning.Resource, error)
	Get(ctx context.Context, id string) (learning.Resource, error)
	Add(ctx context.Context, r learning.Resource) (learning.Resource, error)
	Delete(ctx context.Context, id string) error
}

// Normalize maps the resource's type and difficulty onto the canonical
// vocabulary and fills EmbedURL for YouTube videos.
func Normalize(r learning.Resource) learning.Resource {
	r.Type = learning.ParseResourceType(string(r.Type))
	r.Difficulty = learning.ParseLevel(string(r.Difficulty))
	r.Topics = slices.Clone(r.Topics)
	if r.Type == learning.TypeVideo && r.EmbedURL == "" && IsYouTubeURL(r.URL) {
		r.EmbedURL = YouTubeEmbedURL(r.URL)
	}
	return r
}

// MemoryCatalog is an in-memory implementation of Catalog.
type MemoryCatalog struct {
	ids       idgen.Generator
	resources []learning.Resource
	index     map[string]int
	mu        sync.RWMutex
}

// NewMemoryCatalog creates an empty in-memory catalog. Resources added
// without an ID get one from ids.
func NewMemoryCatalog(ids idgen.Generator) *MemoryCatalog {
	if ids == nil {
		ids = idgen.UUID{}
	}
	return &MemoryCatalog{
		ids:   ids,
		index: make(map[string]int),
	}
}

func (c *MemoryCatalog) List(_ context.Context) ([]learning.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]learning.Resource, len(c.resources))
	for i, r := range c.resources {
		r.Topics = slices.Clone(r.Topics)
		out[i] = r
	}
	return out, nil
}

func (c *MemoryCatalog) Get(_ context.Context, id string) (learning.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return learning.Resource{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r := c.resources[i]
	r.Topics = slices.Clone(r.Topics)
	return r, nil
}

func (c *MemoryCatalog) Add(_ context.Context, r learning.Resource) (learning.Resource, error) {
	r = Normalize(r)

	c.mu.Lock()
	defer c.mu.Unlock()

	if r.ID == "" {
		r.ID = c.ids.NewID()
	}
	if _, ok := c.index[r.ID]; ok {
		return learning.Resource{}, fmt.Errorf("%w: %s", ErrExists, r.ID)
	}
	c.index[r.ID] = len(c.resources)
	c.resources = append(c.resources, r)
	return r, nil
}

func (c *MemoryCatalog) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.resources = slices.Delete(c.resources, i, i+1)
	delete(c.index, id)
	for j := i; j < len(c.resources); j++ {
		c.index[c.resources[j].ID] = j
	}
	return nil
}

// Seed adds resources to c when it is empty. It returns how many were added.
func Seed(ctx context.Context, c Catalog, resources []learning.Resource) (int, error) {
	existing, err := c.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing catalog: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("catalog already populated, skipping seed", "resources", len(existing))
		return 0, nil
	}

	for i, r := range resources {
		if _, err := c.Add(ctx, r); err != nil {
			return i, fmt.Errorf("seeding resource %q: %w", r.ID, err)
		}
	}
	slog.Info("catalog seeded", "resources", len(resources))
	return len(resources), nil
}
