package learning_test

import (
	"testing"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want learning.Level
	}{
		{"beginner", learning.Beginner},
		{"easy", learning.Beginner},
		{" Medium ", learning.Intermediate},
		{"intermediate", learning.Intermediate},
		{"HARD", learning.Advanced},
		{"advanced", learning.Advanced},
		{"expert", learning.Level("expert")},
		{"", learning.Level("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := learning.ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseResourceType(t *testing.T) {
	tests := []struct {
		in   string
		want learning.ResourceType
	}{
		{"youtube", learning.TypeVideo},
		{"video", learning.TypeVideo},
		{"pdf", learning.TypePDF},
		{"note", learning.TypePDF},
		{"past-paper", learning.TypePractice},
		{"Practice", learning.TypePractice},
		{"question", learning.TypePractice},
		{"paper", learning.TypePractice},
		{"podcast", learning.ResourceType("podcast")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := learning.ParseResourceType(tt.in); got != tt.want {
				t.Errorf("ParseResourceType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_Ordinal(t *testing.T) {
	tests := []struct {
		level  learning.Level
		want   int
		wantOK bool
	}{
		{learning.Beginner, 1, true},
		{learning.Intermediate, 2, true},
		{learning.Advanced, 3, true},
		{learning.Level("easy"), 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.level.Ordinal()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Ordinal() = (%d, %v), want (%d, %v)", tt.level, got, ok, tt.want, tt.wantOK)
		}
	}
}
