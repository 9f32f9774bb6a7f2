package learning_test

import (
	"reflect"
	"testing"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

func scheduleResources() []learning.Resource {
	return []learning.Resource{
		{ID: "c1", Difficulty: learning.Beginner, Topics: []string{"calculus", "limits"}},
		{ID: "c2", Difficulty: learning.Advanced, Topics: []string{"calculus", "derivatives"}},
		{ID: "c3", Difficulty: learning.Intermediate, Topics: []string{"calculus", "integrals"}},
		{ID: "c4", Difficulty: learning.Beginner, Topics: []string{"calculus", "series"}},
		{ID: "p1", Difficulty: learning.Intermediate, Topics: []string{"physics", "optics"}},
	}
}

func scheduleSubjects() []learning.Subject {
	return []learning.Subject{
		{Name: "Physics", Weightage: 35},
		{Name: "Calculus", Weightage: 40},
		{Name: "Chemistry", Weightage: 50},
	}
}

func resourceIDs(rs []learning.Resource) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func TestBuildSchedule(t *testing.T) {
	plan := learning.BuildSchedule(scheduleSubjects(), []string{"Derivatives"}, scheduleResources())
	if len(plan) != 8 {
		t.Fatalf("weeks = %d, want 8", len(plan))
	}

	tests := []struct {
		week         int
		wantCalculus []string
	}{
		{1, []string{"c2", "c1", "c4"}},
		{5, []string{"c2", "c1", "c4"}},
		{6, []string{"c2", "c3", "c1"}},
		{8, []string{"c2", "c3", "c1"}},
	}

	for _, tt := range tests {
		wp := plan[tt.week-1]
		if wp.Week != tt.week {
			t.Errorf("plan[%d].Week = %d", tt.week-1, wp.Week)
		}
		// Chemistry has no tagged resources and is left out.
		if len(wp.Subjects) != 2 || wp.Subjects[0].Subject != "Calculus" || wp.Subjects[1].Subject != "Physics" {
			t.Fatalf("week %d subjects = %+v", tt.week, wp.Subjects)
		}
		if got := resourceIDs(wp.Subjects[0].Resources); !reflect.DeepEqual(got, tt.wantCalculus) {
			t.Errorf("week %d calculus = %v, want %v", tt.week, got, tt.wantCalculus)
		}
		if wp.TotalHours != 8 {
			t.Errorf("week %d hours = %d, want 8", tt.week, wp.TotalHours)
		}
	}

	week1 := plan[0]
	if week1.Subjects[0].Priority != learning.PriorityHigh {
		t.Errorf("calculus priority = %q, want high", week1.Subjects[0].Priority)
	}
	if week1.Subjects[1].Priority != learning.PriorityMedium {
		t.Errorf("physics priority = %q, want medium", week1.Subjects[1].Priority)
	}
	wantTopics := []string{"calculus", "derivatives", "calculus", "limits", "calculus", "series"}
	if !reflect.DeepEqual(week1.Subjects[0].Topics, wantTopics) {
		t.Errorf("calculus topics = %v, want %v", week1.Subjects[0].Topics, wantTopics)
	}
}

func TestBuildSchedule_Priority(t *testing.T) {
	res := []learning.Resource{{ID: "b1", Difficulty: learning.Beginner, Topics: []string{"Biology"}}}

	tests := []struct {
		name      string
		weightage float64
		weak      []string
		want      learning.SchedulePriority
	}{
		{"weak topic covered", 10, []string{"biology"}, learning.PriorityHigh},
		{"above thirty percent", 31, nil, learning.PriorityMedium},
		{"exactly thirty percent", 30, nil, learning.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := learning.BuildSchedule([]learning.Subject{{Name: "Biology", Weightage: tt.weightage}}, tt.weak, res)
			if got := plan[0].Subjects[0].Priority; got != tt.want {
				t.Errorf("priority = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSchedule_UnknownDifficultyLast(t *testing.T) {
	res := []learning.Resource{
		{ID: "odd", Difficulty: "expert", Topics: []string{"art"}},
		{ID: "hard", Difficulty: learning.Advanced, Topics: []string{"art"}},
		{ID: "easy", Difficulty: learning.Beginner, Topics: []string{"art"}},
	}
	plan := learning.BuildSchedule([]learning.Subject{{Name: "Art"}}, nil, res)

	if got := resourceIDs(plan[0].Subjects[0].Resources); !reflect.DeepEqual(got, []string{"easy", "hard", "odd"}) {
		t.Errorf("week 1 = %v", got)
	}
	if got := resourceIDs(plan[7].Subjects[0].Resources); !reflect.DeepEqual(got, []string{"hard", "easy", "odd"}) {
		t.Errorf("week 8 = %v", got)
	}
}

func TestBuildSchedule_DoesNotMutateInput(t *testing.T) {
	res := scheduleResources()
	subjects := scheduleSubjects()
	plan := learning.BuildSchedule(subjects, []string{"derivatives"}, res)

	plan[0].Subjects[0].Resources[0].Topics[0] = "changed"
	if !reflect.DeepEqual(res, scheduleResources()) {
		t.Errorf("resources mutated: %+v", res)
	}
	if !reflect.DeepEqual(subjects, scheduleSubjects()) {
		t.Errorf("subjects mutated: %+v", subjects)
	}
}

func TestBuildSchedule_NoResources(t *testing.T) {
	plan := learning.BuildSchedule(scheduleSubjects(), nil, nil)
	if len(plan) != 8 {
		t.Fatalf("weeks = %d, want 8", len(plan))
	}
	for _, wp := range plan {
		if len(wp.Subjects) != 0 || wp.TotalHours != 0 {
			t.Errorf("week %d = %+v, want empty", wp.Week, wp)
		}
	}
}
