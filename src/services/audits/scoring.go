package audits

import (
	"math"

	"Backend-TechAudit/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalculateAuditScore turns a set of answers into the 0-100 overall score.
// Each answer contributes its compliance score (0..2) times the weight of
// its question; the result is the weighted fraction of the maximum,
// rounded. No answers, or answers whose questions carry zero total weight,
// score 0 rather than dividing by zero.
func CalculateAuditScore(answers []models.Answer, questionWeights map[primitive.ObjectID]int) int {
	if len(answers) == 0 {
		return 0
	}

	totalWeight := 0
	weightedScore := 0
	for i := range answers {
		weight := questionWeights[answers[i].QuestionID]
		if weight <= 0 {
			continue
		}
		totalWeight += weight
		weightedScore += answers[i].Score() * weight
	}
	if totalWeight == 0 {
		return 0
	}

	return int(math.Round(float64(weightedScore) / float64(totalWeight*2) * 100))
}
