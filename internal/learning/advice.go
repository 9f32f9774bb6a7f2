package learning

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Recommendations returns study advice for a student in the given grade
// preparing for targetExam. The first weak area is treated as the weakest;
// the subject with the highest weightage gets a weekly hour target.
func Recommendations(grade int, targetExam string, weakAreas []string, subjects []Subject) []string {
	totalHours := 20.0
	if grade < 10 {
		totalHours = 15
	}
	weeklyHours := totalHours / 7

	var recs []string

	switch {
	case grade < 8:
		recs = append(recs, fmt.Sprintf("Focus on fundamentals first - strong basics form the foundation for %s success", targetExam))
	case grade < 10:
		recs = append(recs, fmt.Sprintf("Build upon intermediate concepts - %s requires deeper understanding", targetExam))
	default:
		recs = append(recs, fmt.Sprintf("Master advanced topics - crucial for competitive exams like %s", targetExam))
	}

	if len(weakAreas) > 0 {
		recs = append(recs, fmt.Sprintf("PRIORITY: Allocate 30-40%% of your study time to %s - your weakest area", weakAreas[0]))
	}

	if len(subjects) > 0 {
		sorted := slices.Clone(subjects)
		slices.SortStableFunc(sorted, func(a, b Subject) int {
			return cmp.Compare(b.Weightage, a.Weightage)
		})
		top := sorted[0]
		recs = append(recs, fmt.Sprintf("%s has highest weightage (%s%%) - dedicate %d hours/week here",
			top.Name, formatWeightage(top.Weightage), int(math.Round(weeklyHours*2))))
	}

	recs = append(recs,
		fmt.Sprintf("Recommended daily study: %.1f hours with 15-min breaks every 45 mins", weeklyHours),
		"Study strategy: Video lessons (concept building) -> Study notes (reinforcement) -> Question papers (practice)",
	)

	switch {
	case strings.Contains(targetExam, "JEE") || strings.Contains(targetExam, "NEET"):
		recs = append(recs, "Competitive exam focus: Practice previous 10 years papers, solve timed mock tests")
	case strings.Contains(targetExam, "SAT"):
		recs = append(recs, "SAT preparation: Focus on time management and test-taking strategies")
	default:
		recs = append(recs, "School board exam: Cover all topics in syllabus thoroughly, practice board-style questions")
	}

	return recs
}
