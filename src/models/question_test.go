package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionNormalizeDefaults(t *testing.T) {
	q := &Question{Text: "  Is encryption at rest enabled?  ", EvidenceRequired: EvidenceNo}
	q.Normalize()
	assert.Equal(t, "Is encryption at rest enabled?", q.Text)
	assert.Equal(t, 1, q.Weight)
	assert.Equal(t, 1, q.Order)
}

func TestQuestionValidate(t *testing.T) {
	t.Run("missing text is rejected", func(t *testing.T) {
		q := &Question{EvidenceRequired: EvidenceNo, Weight: 1, Order: 1}
		errs := q.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "text", errs[0].Field)
	})

	t.Run("text over 1000 characters is rejected", func(t *testing.T) {
		q := &Question{Text: strings.Repeat("a", 1001), EvidenceRequired: EvidenceNo, Weight: 1, Order: 1}
		errs := q.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "text", errs[0].Field)
		assert.Contains(t, errs[0].Message, "1000 characters")
	})

	t.Run("weight above 10 is rejected", func(t *testing.T) {
		q := &Question{Text: "ok", EvidenceRequired: EvidenceNo, Weight: 11, Order: 1}
		errs := q.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "weight", errs[0].Field)
	})

	t.Run("evidenceRequired must be one of the three values", func(t *testing.T) {
		q := &Question{Text: "ok", EvidenceRequired: "Maybe", Weight: 1, Order: 1}
		errs := q.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "evidenceRequired", errs[0].Field)
	})
}

func TestQuestionMaxScore(t *testing.T) {
	q := &Question{Weight: 4}
	assert.Equal(t, 8, q.MaxScore())
}

func TestQuestionStandaloneAndEvidence(t *testing.T) {
	q := &Question{Text: "ok", EvidenceRequired: EvidenceYes}
	assert.True(t, q.IsStandalone())
	assert.True(t, q.IsEvidenceRequired())

	q.EvidenceRequired = EvidenceOptional
	assert.False(t, q.IsEvidenceRequired())
}
