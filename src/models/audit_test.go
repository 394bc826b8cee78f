package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validAudit() *Audit {
	return &Audit{
		ProjectID:     primitive.NewObjectID(),
		LeadAuditorID: primitive.NewObjectID(),
		Status:        AuditPlanning,
		StartDate:     time.Now(),
	}
}

func TestAuditNormalize(t *testing.T) {
	a := &Audit{}
	a.Normalize()
	assert.Equal(t, AuditPlanning, a.Status)
	assert.False(t, a.StartDate.IsZero())
}

func TestAuditValidate(t *testing.T) {
	t.Run("valid audit passes", func(t *testing.T) {
		assert.Empty(t, validAudit().Validate())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		a := validAudit()
		a.Status = "archived"
		errs := a.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "status", errs[0].Field)
	})

	t.Run("completion date must follow start date", func(t *testing.T) {
		a := validAudit()
		before := a.StartDate.Add(-time.Hour)
		a.CompletionDate = &before
		errs := a.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "completionDate", errs[0].Field)
	})

	t.Run("score outside 0-100 is rejected", func(t *testing.T) {
		a := validAudit()
		a.OverallScore = 101
		errs := a.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "overallScore", errs[0].Field)
	})
}

func TestAuditDurationInDays(t *testing.T) {
	a := validAudit()
	a.StartDate = time.Now().Add(-239 * time.Hour)

	t.Run("open audit measures against now", func(t *testing.T) {
		assert.Equal(t, 10, a.DurationInDays())
	})

	t.Run("closed audit measures against completion", func(t *testing.T) {
		done := a.StartDate.AddDate(0, 0, 4)
		a.CompletionDate = &done
		assert.Equal(t, 4, a.DurationInDays())
	})

	t.Run("partial days round up", func(t *testing.T) {
		done := a.StartDate.Add(25 * time.Hour)
		a.CompletionDate = &done
		assert.Equal(t, 2, a.DurationInDays())
	})
}

func TestAuditIsOverdue(t *testing.T) {
	a := validAudit()
	a.Status = AuditInProgress

	a.StartDate = time.Now().AddDate(0, 0, -10)
	assert.False(t, a.IsOverdue())

	a.StartDate = time.Now().AddDate(0, 0, -15)
	assert.True(t, a.IsOverdue())

	a.Status = AuditCompleted
	assert.False(t, a.IsOverdue())
}

func TestAuditProgressPercentage(t *testing.T) {
	expected := map[string]int{
		AuditPlanning:   10,
		AuditInProgress: 50,
		AuditReview:     80,
		AuditCompleted:  100,
		AuditCancelled:  0,
	}
	a := validAudit()
	for status, pct := range expected {
		a.Status = status
		assert.Equal(t, pct, a.ProgressPercentage(), status)
	}
}

func TestAuditHasTeamMember(t *testing.T) {
	member := primitive.NewObjectID()
	a := validAudit()
	assert.False(t, a.HasTeamMember(member))

	a.TeamMembers = []primitive.ObjectID{primitive.NewObjectID(), member}
	assert.True(t, a.HasTeamMember(member))
	assert.False(t, a.HasTeamMember(primitive.NewObjectID()))
}
