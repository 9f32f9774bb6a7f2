// Package idgen provides injectable ID generators.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// Sequence generates prefix+counter IDs starting at 0. Safe for concurrent use.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	n := s.next.Add(1) - 1
	return s.prefix + strconv.FormatInt(n, 10)
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}
