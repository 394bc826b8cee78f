package audits

import (
	"testing"

	"Backend-TechAudit/src/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func answer(questionID primitive.ObjectID, status string) models.Answer {
	return models.Answer{
		AuditID:          primitive.NewObjectID(),
		QuestionID:       questionID,
		ComplianceStatus: status,
	}
}

func TestCalculateAuditScore(t *testing.T) {
	q1 := primitive.NewObjectID()
	q2 := primitive.NewObjectID()
	q3 := primitive.NewObjectID()

	t.Run("no answers scores zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAuditScore(nil, map[primitive.ObjectID]int{q1: 5}))
		assert.Equal(t, 0, CalculateAuditScore([]models.Answer{}, map[primitive.ObjectID]int{q1: 5}))
	})

	t.Run("zero total weight scores zero", func(t *testing.T) {
		answers := []models.Answer{answer(q1, models.Compliant)}
		assert.Equal(t, 0, CalculateAuditScore(answers, map[primitive.ObjectID]int{q1: 0}))
		assert.Equal(t, 0, CalculateAuditScore(answers, map[primitive.ObjectID]int{}))
	})

	t.Run("all compliant is 100", func(t *testing.T) {
		answers := []models.Answer{
			answer(q1, models.Compliant),
			answer(q2, models.Compliant),
		}
		weights := map[primitive.ObjectID]int{q1: 3, q2: 7}
		assert.Equal(t, 100, CalculateAuditScore(answers, weights))
	})

	t.Run("all non-compliant is 0", func(t *testing.T) {
		answers := []models.Answer{
			answer(q1, models.NonCompliant),
			answer(q2, models.NonCompliant),
		}
		weights := map[primitive.ObjectID]int{q1: 3, q2: 7}
		assert.Equal(t, 0, CalculateAuditScore(answers, weights))
	})

	t.Run("all partially compliant is 50", func(t *testing.T) {
		answers := []models.Answer{
			answer(q1, models.PartiallyCompliant),
			answer(q2, models.PartiallyCompliant),
		}
		weights := map[primitive.ObjectID]int{q1: 2, q2: 8}
		assert.Equal(t, 50, CalculateAuditScore(answers, weights))
	})

	t.Run("weights shift the result", func(t *testing.T) {
		// (2*9 + 0*1) / ((9+1)*2) * 100 = 90
		answers := []models.Answer{
			answer(q1, models.Compliant),
			answer(q2, models.NonCompliant),
		}
		weights := map[primitive.ObjectID]int{q1: 9, q2: 1}
		assert.Equal(t, 90, CalculateAuditScore(answers, weights))
	})

	t.Run("result is rounded, not truncated", func(t *testing.T) {
		// (2*1 + 1*1 + 0*1) / (3*2) * 100 = 50
		// (2*2 + 1*1) / (3*2) * 100 = 83.33 -> 83
		answers := []models.Answer{
			answer(q1, models.Compliant),
			answer(q2, models.PartiallyCompliant),
			answer(q3, models.NonCompliant),
		}
		weights := map[primitive.ObjectID]int{q1: 1, q2: 1, q3: 1}
		assert.Equal(t, 50, CalculateAuditScore(answers, weights))

		weights = map[primitive.ObjectID]int{q1: 2, q2: 1}
		answers = answers[:2]
		assert.Equal(t, 83, CalculateAuditScore(answers, weights))
	})

	t.Run("answers to deleted questions are skipped", func(t *testing.T) {
		answers := []models.Answer{
			answer(q1, models.Compliant),
			answer(q2, models.NonCompliant), // question no longer exists
		}
		weights := map[primitive.ObjectID]int{q1: 4}
		assert.Equal(t, 100, CalculateAuditScore(answers, weights))
	})
}
