package learning

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/p-n-ai/pai-planner/internal/platform/idgen"
)

const (
	maxPriority         = 10.0
	minOverviewPriority = 5.0
	overviewHours       = 3
	beginnerExtraHours  = 2
)

// Subject is a subject the student is preparing for.
type Subject struct {
	Name         string   `json:"name"`
	Weightage    float64  `json:"weightage"` // exam weightage in percent
	WeakTopics   []string `json:"weak_topics"`
	CurrentLevel Level    `json:"current_level"`
}

// StudyPlanItem is one prioritized entry of a study plan.
type StudyPlanItem struct {
	ID             string  `json:"id"`
	Topic          string  `json:"topic"`
	Subject        string  `json:"subject"`
	Priority       float64 `json:"priority"`
	EstimatedHours int     `json:"estimated_hours"`
	Reason         string  `json:"reason"`
}

// GenerateStudyPlan turns subjects into study items sorted by priority,
// highest first. Every weak topic yields one item, and each subject whose
// name is not itself a weak topic gets an extra overview item.
//
// IDs are drawn from ids in generation order. If ids is nil a fresh
// "plan-N" sequence is used, so repeated calls return identical plans.
func GenerateStudyPlan(subjects []Subject, ids idgen.Generator) []StudyPlanItem {
	if ids == nil {
		ids = idgen.NewSequence("plan-")
	}

	sorted := slices.Clone(subjects)
	slices.SortStableFunc(sorted, func(a, b Subject) int {
		return cmp.Compare(b.Weightage, a.Weightage)
	})

	var plan []StudyPlanItem
	for _, s := range sorted {
		base := math.Min(maxPriority, s.Weightage/100*10*levelMultiplier(s.CurrentLevel))

		for _, topic := range s.WeakTopics {
			priority := math.Min(maxPriority, base+1)
			hours := int(math.Ceil(priority / 10 * 5))
			if s.CurrentLevel == Beginner {
				hours += beginnerExtraHours
			}
			plan = append(plan, StudyPlanItem{
				ID:             ids.NewID(),
				Topic:          topic,
				Subject:        s.Name,
				Priority:       priority,
				EstimatedHours: hours,
				Reason:         fmt.Sprintf("High weightage (%s%%) + identified weak area", formatWeightage(s.Weightage)),
			})
		}

		if !containsLower(s.WeakTopics, s.Name) {
			plan = append(plan, StudyPlanItem{
				ID:             ids.NewID(),
				Topic:          s.Name + " - Overview & Core Concepts",
				Subject:        s.Name,
				Priority:       math.Max(minOverviewPriority, base-1),
				EstimatedHours: overviewHours,
				Reason:         fmt.Sprintf("Strong subject weightage (%s%%) - maintain strength", formatWeightage(s.Weightage)),
			})
		}
	}

	slices.SortStableFunc(plan, func(a, b StudyPlanItem) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return plan
}

func levelMultiplier(l Level) float64 {
	switch l {
	case Beginner:
		return 1.5
	case Intermediate:
		return 1.2
	default:
		return 1.0
	}
}

// formatWeightage prints 40 as "40" and 12.5 as "12.5".
func formatWeightage(w float64) string {
	return fmt.Sprintf("%g", w)
}
