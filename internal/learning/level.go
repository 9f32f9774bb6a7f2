// Package learning implements the rule-based study planning and resource
// ranking engine. Everything here is pure: callers pass plain values in and
// get fresh values out.
package learning

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is a learner level or a resource difficulty on a three-step scale.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Ordinal returns 1, 2 or 3 for known levels and false otherwise.
func (l Level) Ordinal() (int, bool) {
	switch l {
	case Beginner:
		return 1, true
	case Intermediate:
		return 2, true
	case Advanced:
		return 3, true
	default:
		return 0, false
	}
}

// Valid reports whether l is one of the canonical levels.
func (l Level) Valid() bool {
	_, ok := l.Ordinal()
	return ok
}

// ResourceType is the canonical kind of a learning resource.
type ResourceType string

const (
	TypeVideo    ResourceType = "video"
	TypePDF      ResourceType = "pdf"
	TypePractice ResourceType = "practice"
)

var levelAliases = map[string]Level{
	"beginner":     Beginner,
	"easy":         Beginner,
	"intermediate": Intermediate,
	"medium":       Intermediate,
	"advanced":     Advanced,
	"hard":         Advanced,
}

var typeAliases = map[string]ResourceType{
	"video":      TypeVideo,
	"youtube":    TypeVideo,
	"pdf":        TypePDF,
	"note":       TypePDF,
	"notes":      TypePDF,
	"practice":   TypePractice,
	"past-paper": TypePractice,
	"question":   TypePractice,
	"paper":      TypePractice,
}

// ParseLevel maps any of the known level vocabularies (beginner/intermediate/
// advanced, easy/medium/hard) onto the canonical Level. Unknown values are
// returned unchanged.
func ParseLevel(s string) Level {
	if l, ok := levelAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return Level(s)
}

// ParseResourceType maps youtube/past-paper/note style vocabularies onto the
// canonical ResourceType. Unknown values are returned unchanged.
func ParseResourceType(s string) ResourceType {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return ResourceType(s)
}

// containsLower reports whether topics contains topic after lowercasing
// both. Lowercasing is rune-wise, so "straße" and "STRASSE" stay distinct.
func containsLower(topics []string, topic string) bool {
	lower := cases.Lower(language.Und)
	want := lower.String(topic)
	for _, t := range topics {
		if lower.String(t) == want {
			return true
		}
	}
	return false
}
