package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validAnswer() *Answer {
	return &Answer{
		AuditID:          primitive.NewObjectID(),
		QuestionID:       primitive.NewObjectID(),
		ComplianceStatus: Compliant,
		AnsweredBy:       primitive.NewObjectID(),
	}
}

func TestAnswerScore(t *testing.T) {
	cases := map[string]int{
		Compliant:          2,
		PartiallyCompliant: 1,
		NonCompliant:       0,
	}
	ans := validAnswer()
	for status, score := range cases {
		ans.ComplianceStatus = status
		assert.Equal(t, score, ans.Score(), status)
	}
}

func TestAnswerScorePercentage(t *testing.T) {
	ans := validAnswer()
	assert.Equal(t, 100, ans.ScorePercentage())

	ans.ComplianceStatus = PartiallyCompliant
	assert.Equal(t, 50, ans.ScorePercentage())

	ans.ComplianceStatus = NonCompliant
	assert.Equal(t, 0, ans.ScorePercentage())
}

func TestAnswerValidate(t *testing.T) {
	t.Run("valid answer passes", func(t *testing.T) {
		assert.Empty(t, validAnswer().Validate())
	})

	t.Run("unknown compliance status is rejected", func(t *testing.T) {
		ans := validAnswer()
		ans.ComplianceStatus = "mostly-fine"
		errs := ans.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "complianceStatus", errs[0].Field)
	})

	t.Run("oversized evidence is rejected", func(t *testing.T) {
		ans := validAnswer()
		ans.Evidence = strings.Repeat("x", 2001)
		errs := ans.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "evidence", errs[0].Field)
	})
}

func TestAnswerNormalizeStampsAnsweredAt(t *testing.T) {
	ans := validAnswer()
	ans.Evidence = "  screenshot attached  "
	ans.Normalize()
	assert.Equal(t, "screenshot attached", ans.Evidence)
	assert.False(t, ans.AnsweredAt.IsZero())
}

func TestAnswerUpdateValidate(t *testing.T) {
	t.Run("empty update passes", func(t *testing.T) {
		assert.Empty(t, (&AnswerUpdate{}).Validate())
	})

	t.Run("bad status in update is rejected", func(t *testing.T) {
		bad := "unknown"
		u := &AnswerUpdate{ComplianceStatus: &bad}
		errs := u.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "complianceStatus", errs[0].Field)
	})
}
