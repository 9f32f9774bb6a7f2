package learning

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// quizPrompts are the focus areas a quiz draws from, in order.
var quizPrompts = []string{
	"What are the key concepts in this topic?",
	"Can you solve a typical problem from this area?",
	"Explain the common mistakes students make here",
	"How does this topic relate to the exam?",
	"What are the formulas you need to memorize?",
}

const minQuizPrompts = 3

// Source picks how many focus areas each quiz gets. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// RandomSource draws from the shared math/rand/v2 generator and is safe for
// concurrent use.
type RandomSource struct{}

func (RandomSource) IntN(n int) int { return rand.IntN(n) }

// QuizItem is a self-check quiz for one weak area.
type QuizItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Topic      string   `json:"topic"`
	FocusAreas []string `json:"focus_areas"`
	Difficulty Level    `json:"difficulty"`
}

// GenerateQuiz builds one quiz per weak area with between three and five
// focus areas, the count drawn from src. A nil src uses a fixed seed, so
// repeated calls return identical quizzes.
func GenerateQuiz(weakAreas []string, difficulty Level, src Source) []QuizItem {
	if src == nil {
		src = rand.New(rand.NewPCG(1, 2))
	}

	quiz := make([]QuizItem, 0, len(weakAreas))
	for i, area := range weakAreas {
		n := minQuizPrompts + src.IntN(len(quizPrompts)-minQuizPrompts+1)
		quiz = append(quiz, QuizItem{
			ID:         fmt.Sprintf("quiz-%d", i),
			Title:      fmt.Sprintf("%s - %s Challenge", area, difficulty),
			Topic:      area,
			FocusAreas: slices.Clone(quizPrompts[:n]),
			Difficulty: difficulty,
		})
	}
	return quiz
}
