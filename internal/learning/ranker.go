package learning

import (
	"cmp"
	"slices"
)

const (
	relevancePoints = 40.0
	maxQualityScore = 20.0
)

// Resource is a catalog entry. Rankers never modify it.
type Resource struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       ResourceType `json:"type"`
	Difficulty Level        `json:"difficulty"`
	Topics     []string     `json:"topics"`
	Quality    int          `json:"quality"`            // 1-5 rating
	Duration   *int         `json:"duration,omitempty"` // minutes
	URL        string       `json:"url"`
	EmbedURL   string       `json:"embed_url,omitempty"`
}

// RankedResource is a Resource with its score breakdown and 1-based rank.
type RankedResource struct {
	Resource
	RelevanceScore  float64 `json:"relevance_score"`
	DifficultyMatch float64 `json:"difficulty_match"`
	QualityScore    float64 `json:"quality_score"`
	TypeBonus       float64 `json:"type_bonus"`
	FinalScore      float64 `json:"final_score"`
	Ranking         int     `json:"ranking"`
}

// RankResources scores every resource for a topic, learner level and target
// difficulty, then orders them by final score, highest first. Equal scores
// keep their input order.
func RankResources(resources []Resource, topic string, userLevel, targetDifficulty Level) []RankedResource {
	ranked := make([]RankedResource, len(resources))
	for i, r := range resources {
		ranked[i] = scoreResource(r, topic, userLevel, targetDifficulty)
	}

	slices.SortStableFunc(ranked, func(a, b RankedResource) int {
		return cmp.Compare(b.FinalScore, a.FinalScore)
	})
	for i := range ranked {
		ranked[i].Ranking = i + 1
	}
	return ranked
}

// FilterByRelevance returns the resources tagged with topic (case-insensitive
// exact match), preserving order.
func FilterByRelevance(resources []Resource, topic string) []Resource {
	out := []Resource{}
	for _, r := range resources {
		if containsLower(r.Topics, topic) {
			out = append(out, r)
		}
	}
	return out
}

func scoreResource(r Resource, topic string, userLevel, target Level) RankedResource {
	r.Topics = slices.Clone(r.Topics)
	rr := RankedResource{Resource: r}

	if containsLower(r.Topics, topic) {
		rr.RelevanceScore = relevancePoints
	}
	rr.DifficultyMatch = difficultyMatch(r.Difficulty, userLevel, target)
	rr.QualityScore = float64(r.Quality) / 5 * maxQualityScore
	rr.TypeBonus = typeBonus(r.Type, userLevel, target)
	rr.FinalScore = rr.RelevanceScore + rr.DifficultyMatch + rr.QualityScore + rr.TypeBonus
	return rr
}

// difficultyMatch rewards an exact target match or a one-step stretch above
// the learner, then proximity to target, then staying at the learner's level.
// A resource two steps away from target scores 0 even though one step below
// scores 20. Comparisons against an unknown level are always false.
func difficultyMatch(difficulty, user, target Level) float64 {
	r, rok := difficulty.Ordinal()
	u, uok := user.Ordinal()
	t, tok := target.Ordinal()

	switch {
	case difficulty == target,
		rok && uok && tok && r == u+1 && r <= t+1:
		return 30
	case rok && tok && abs(r-t) == 1:
		return 20
	case rok && uok && r == u:
		return 15
	default:
		return 0
	}
}

func typeBonus(typ ResourceType, user, target Level) float64 {
	switch {
	case typ == TypePractice && (target == Intermediate || target == Advanced):
		return 10
	case typ == TypeVideo && user == Beginner:
		return 8
	case typ == TypePDF:
		return 5
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
