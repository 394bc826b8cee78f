package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSectionPriority(t *testing.T) {
	cases := []struct {
		weight   int
		priority string
	}{
		{10, "high"},
		{8, "high"},
		{7, "medium"},
		{5, "medium"},
		{4, "low"},
		{1, "low"},
	}
	for _, tc := range cases {
		s := &Section{Weight: tc.weight}
		assert.Equal(t, tc.priority, s.Priority(), "weight %d", tc.weight)
	}
}

func TestSectionValidateWeightBounds(t *testing.T) {
	s := &Section{Title: "Access Control", Weight: 0, Order: 1}
	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "weight", errs[0].Field)

	s.Weight = 11
	errs = s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "weight", errs[0].Field)

	s.Weight = 10
	assert.Empty(t, s.Validate())
}

func TestSectionCopy(t *testing.T) {
	owner := primitive.NewObjectID()
	original := &Section{
		ID:              primitive.NewObjectID(),
		QuestionnaireID: &owner,
		Title:           "Patching",
		Description:     "Patch cadence checks",
		Weight:          6,
		Order:           2,
	}

	target := primitive.NewObjectID()
	dup := original.Copy(target)

	assert.True(t, dup.ID.IsZero(), "copy gets its own id on insert")
	assert.Equal(t, target, *dup.QuestionnaireID)
	assert.Equal(t, original.Title, dup.Title)
	assert.Equal(t, original.Description, dup.Description)
	assert.Equal(t, original.Weight, dup.Weight)
	assert.Equal(t, original.Order, dup.Order)
}
