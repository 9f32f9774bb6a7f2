package idgen

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSequence_NewID(t *testing.T) {
	seq := NewSequence("plan-")

	for i, want := range []string{"plan-0", "plan-1", "plan-2"} {
		if got := seq.NewID(); got != want {
			t.Errorf("NewID() #%d = %q, want %q", i, got, want)
		}
	}
}

func TestSequence_Concurrent(t *testing.T) {
	seq := NewSequence("")

	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := seq.NewID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != 50 {
		t.Errorf("unique ids = %d, want 50", len(seen))
	}
}

func TestUUID_NewID(t *testing.T) {
	var g Generator = UUID{}

	a, b := g.NewID(), g.NewID()
	if a == b {
		t.Errorf("NewID() returned duplicate %q", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewID() = %q, not a UUID: %v", a, err)
	}
}
