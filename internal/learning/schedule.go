package learning

import (
	"cmp"
	"slices"
)

const (
	scheduleWeeks        = 8
	resourcesPerSubject  = 3
	hoursPerResource     = 2
	hardFirstAfterWeek   = 5
	mediumPriorityCutoff = 30.0
)

// SchedulePriority ranks a subject within one week of a schedule.
type SchedulePriority string

const (
	PriorityHigh   SchedulePriority = "high"
	PriorityMedium SchedulePriority = "medium"
	PriorityLow    SchedulePriority = "low"
)

// WeekSubject is the work planned for one subject in one week.
type WeekSubject struct {
	Subject   string           `json:"subject"`
	Resources []Resource       `json:"resources"`
	Topics    []string         `json:"topics"`
	Priority  SchedulePriority `json:"priority"`
}

// WeekPlan is one week of a schedule.
type WeekPlan struct {
	Week       int           `json:"week"`
	Subjects   []WeekSubject `json:"subjects"`
	TotalHours int           `json:"total_hours"`
}

// BuildSchedule lays out an eight-week plan. Each week lists subjects by
// weightage, highest first, each with up to three resources tagged with the
// subject name. Resources covering a weak topic come first, then easier
// resources through week five and harder ones after; unknown difficulties go
// last. Every resource is two hours of work.
func BuildSchedule(subjects []Subject, weakTopics []string, resources []Resource) []WeekPlan {
	sorted := slices.Clone(subjects)
	slices.SortStableFunc(sorted, func(a, b Subject) int {
		return cmp.Compare(b.Weightage, a.Weightage)
	})

	covers := func(r Resource) bool {
		for _, t := range r.Topics {
			if containsLower(weakTopics, t) {
				return true
			}
		}
		return false
	}

	plan := make([]WeekPlan, 0, scheduleWeeks)
	for week := 1; week <= scheduleWeeks; week++ {
		wp := WeekPlan{Week: week, Subjects: []WeekSubject{}}
		direction := 1
		if week > hardFirstAfterWeek {
			direction = -1
		}

		for _, s := range sorted {
			var picked []Resource
			for _, r := range resources {
				if containsLower(r.Topics, s.Name) {
					picked = append(picked, r)
				}
			}
			slices.SortStableFunc(picked, func(a, b Resource) int {
				aWeak, bWeak := covers(a), covers(b)
				if aWeak != bWeak {
					if aWeak {
						return -1
					}
					return 1
				}
				ao, aok := a.Difficulty.Ordinal()
				bo, bok := b.Difficulty.Ordinal()
				switch {
				case !aok && !bok:
					return 0
				case !aok:
					return 1
				case !bok:
					return -1
				}
				return (ao - bo) * direction
			})
			if len(picked) > resourcesPerSubject {
				picked = picked[:resourcesPerSubject]
			}
			if len(picked) == 0 {
				continue
			}

			ws := WeekSubject{
				Subject:   s.Name,
				Resources: make([]Resource, len(picked)),
				Priority:  PriorityLow,
			}
			weak := false
			for i, r := range picked {
				r.Topics = slices.Clone(r.Topics)
				ws.Resources[i] = r
				ws.Topics = append(ws.Topics, r.Topics...)
				weak = weak || covers(r)
			}
			switch {
			case weak:
				ws.Priority = PriorityHigh
			case s.Weightage > mediumPriorityCutoff:
				ws.Priority = PriorityMedium
			}

			wp.Subjects = append(wp.Subjects, ws)
			wp.TotalHours += len(picked) * hoursPerResource
		}
		plan = append(plan, wp)
	}
	return plan
}
