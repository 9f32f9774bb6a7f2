package learning_test

import (
	"reflect"
	"testing"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

// fixedSource always returns the same draw, capped to the requested range.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestGenerateQuiz(t *testing.T) {
	tests := []struct {
		name       string
		src        learning.Source
		wantPrompt int
	}{
		{"smallest draw", fixedSource(0), 3},
		{"middle draw", fixedSource(1), 4},
		{"largest draw", fixedSource(2), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := learning.GenerateQuiz([]string{"Vectors", "Matrices"}, learning.Intermediate, tt.src)
			if len(quiz) != 2 {
				t.Fatalf("len = %d, want 2", len(quiz))
			}

			first := quiz[0]
			if first.ID != "quiz-0" || quiz[1].ID != "quiz-1" {
				t.Errorf("ids = %q, %q", first.ID, quiz[1].ID)
			}
			if first.Title != "Vectors - intermediate Challenge" {
				t.Errorf("title = %q", first.Title)
			}
			if first.Topic != "Vectors" || first.Difficulty != learning.Intermediate {
				t.Errorf("quiz[0] = %+v", first)
			}
			if len(first.FocusAreas) != tt.wantPrompt {
				t.Errorf("focus areas = %d, want %d", len(first.FocusAreas), tt.wantPrompt)
			}
			if first.FocusAreas[0] != "What are the key concepts in this topic?" {
				t.Errorf("first focus area = %q", first.FocusAreas[0])
			}
		})
	}
}

func TestGenerateQuiz_NilSourceIsDeterministic(t *testing.T) {
	areas := []string{"Limits", "Series", "Optics", "Waves"}
	a := learning.GenerateQuiz(areas, learning.Beginner, nil)
	b := learning.GenerateQuiz(areas, learning.Beginner, nil)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("nil source gave different quizzes:\n%+v\n%+v", a, b)
	}
	for _, q := range a {
		if n := len(q.FocusAreas); n < 3 || n > 5 {
			t.Errorf("%s has %d focus areas, want 3-5", q.ID, n)
		}
	}
}

func TestGenerateQuiz_FocusAreasAreIndependent(t *testing.T) {
	quiz := learning.GenerateQuiz([]string{"A", "B"}, learning.Advanced, fixedSource(0))
	quiz[0].FocusAreas[0] = "changed"
	if quiz[1].FocusAreas[0] == "changed" {
		t.Error("quiz items share focus area storage")
	}
}

func TestGenerateQuiz_Empty(t *testing.T) {
	if got := learning.GenerateQuiz(nil, learning.Beginner, nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
