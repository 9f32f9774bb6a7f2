package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

// resourceSchema is the JSON schema every catalog entry must satisfy. It
// accepts every vocabulary the UI variants use; Normalize maps them later.
const resourceSchema = `{
	"type": "object",
	"required": ["id", "title", "type", "difficulty", "topics", "quality"],
	"properties": {
		"id":         {"type": "string", "minLength": 1},
		"title":      {"type": "string", "minLength": 1},
		"type":       {"type": "string", "enum": ["video", "youtube", "pdf", "note", "notes", "practice", "past-paper", "question", "paper"]},
		"difficulty": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "easy", "medium", "hard"]},
		"topics":     {"type": "array", "items": {"type": "string", "minLength": 1}, "minItems": 1},
		"quality":    {"type": "integer", "minimum": 1, "maximum": 5},
		"duration":   {"type": "integer", "minimum": 0},
		"url":        {"type": "string"}
	}
}`

// catalogFile is the layout of a resource fixture file.
type catalogFile struct {
	Resources []yaml.Node `yaml:"resources"`
}

type resourceEntry struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Type       string   `yaml:"type"`
	Difficulty string   `yaml:"difficulty"`
	Topics     []string `yaml:"topics"`
	Quality    int      `yaml:"quality"`
	Duration   *int     `yaml:"duration"`
	URL        string   `yaml:"url"`
}

// Loader reads resource fixtures from YAML files under a directory.
type Loader struct {
	rootDir   string
	schema    *gojsonschema.Schema
	resources []learning.Resource
	seen      map[string]bool
}

// NewLoader creates a loader and reads every *.yaml/*.yml file under rootDir.
// Entries failing schema validation are skipped with a warning.
func NewLoader(rootDir string) (*Loader, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resourceSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling resource schema: %w", err)
	}

	l := &Loader{
		rootDir: rootDir,
		schema:  schema,
		seen:    make(map[string]bool),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	slog.Info("catalog fixtures loaded", "dir", rootDir, "resources", len(l.resources))
	return l, nil
}

// Resources returns the loaded resources in file and declaration order.
func (l *Loader) Resources() []learning.Resource {
	out := make([]learning.Resource, len(l.resources))
	copy(out, l.resources)
	return out
}

func (l *Loader) loadAll() error {
	if _, err := os.Stat(l.rootDir); os.IsNotExist(err) {
		slog.Warn("catalog directory does not exist", "dir", l.rootDir)
		return nil
	}

	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			return l.loadFile(path)
		}
		return nil
	})
}

func (l *Loader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Warn("skipping invalid catalog YAML", "path", path, "error", err)
		return nil
	}

	for i := range file.Resources {
		node := &file.Resources[i]
		if err := l.validate(node); err != nil {
			slog.Warn("skipping invalid resource", "path", path, "line", node.Line, "error", err)
			continue
		}

		var entry resourceEntry
		if err := node.Decode(&entry); err != nil {
			slog.Warn("skipping undecodable resource", "path", path, "line", node.Line, "error", err)
			continue
		}
		if l.seen[entry.ID] {
			slog.Warn("skipping duplicate resource id", "path", path, "id", entry.ID)
			continue
		}
		l.seen[entry.ID] = true

		l.resources = append(l.resources, Normalize(learning.Resource{
			ID:         entry.ID,
			Title:      entry.Title,
			Type:       learning.ResourceType(entry.Type),
			Difficulty: learning.Level(entry.Difficulty),
			Topics:     entry.Topics,
			Quality:    entry.Quality,
			Duration:   entry.Duration,
			URL:        entry.URL,
		}))
	}
	return nil
}

func (l *Loader) validate(node *yaml.Node) error {
	var doc map[string]any
	if err := node.Decode(&doc); err != nil {
		return err
	}

	result, err := l.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}
