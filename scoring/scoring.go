// Package scoring evaluates quiz submissions for the assessment test a
// student must pass before paying for a certificate.
package scoring

import (
	"math/rand"
	"strings"

	"certify/models"
)

const (
	// MaxQuestions is how many questions one test serves
	MaxQuestions = 10

	// PassScore is the fixed pass mark. It stays 5 even when a track's
	// bank holds fewer than 10 questions; that matches the platform's
	// published "5/10 to pass" rule, so don't turn it into a percentage.
	PassScore = 5
)

// Draw picks up to MaxQuestions questions from the bank by uninformed
// shuffle. The bank slice is not modified.
func Draw(bank []models.MCQQuestion) []models.MCQQuestion {
	shuffled := make([]models.MCQQuestion, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > MaxQuestions {
		shuffled = shuffled[:MaxQuestions]
	}
	return shuffled
}

// TestSize is the number of questions a test over the given bank size
// consists of; unanswered questions count as incorrect against it.
func TestSize(bankSize int) int {
	if bankSize > MaxQuestions {
		return MaxQuestions
	}
	return bankSize
}

// Evaluate counts answers whose chosen option matches the question's
// correct option. answers maps question id to an option letter; missing
// or unknown ids simply don't score. Pass is score >= PassScore.
func Evaluate(questions []models.MCQQuestion, answers map[uint]string) (score int, passed bool) {
	for _, q := range questions {
		chosen, ok := answers[q.ID]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(chosen), q.CorrectOption) {
			score++
		}
	}
	return score, score >= PassScore
}
