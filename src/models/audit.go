package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit statuses.
const (
	AuditPlanning   = "planning"
	AuditInProgress = "in-progress"
	AuditReview     = "review"
	AuditCompleted  = "completed"
	AuditCancelled  = "cancelled"
)

// OverdueAfterDays is the default audit duration before an open audit
// counts as overdue.
const OverdueAfterDays = 14

// Audit is one assessment run against a project. Answers reference it by
// id; the overall score is the weighted percentage over those answers.
type Audit struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID        primitive.ObjectID   `bson:"projectId" json:"projectId" validate:"required"`
	LeadAuditorID    primitive.ObjectID   `bson:"leadAuditorId" json:"leadAuditorId" validate:"required"`
	TeamMembers      []primitive.ObjectID `bson:"teamMembers" json:"teamMembers"`
	Status           string               `bson:"status" json:"status" validate:"required,oneof=planning in-progress review completed cancelled"`
	StartDate        time.Time            `bson:"startDate" json:"startDate"`
	CompletionDate   *time.Time           `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	OverallScore     int                  `bson:"overallScore" json:"overallScore" validate:"gte=0,lte=100"`
	OverdueFlaggedAt *time.Time           `bson:"overdueFlaggedAt,omitempty" json:"overdueFlaggedAt,omitempty"`
	CreatedAt        time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (a *Audit) Normalize() {
	if a.Status == "" {
		a.Status = AuditPlanning
	}
	if a.StartDate.IsZero() {
		a.StartDate = time.Now()
	}
}

func (a *Audit) Validate() ValidationErrors {
	errs := validateStruct(a)
	if a.CompletionDate != nil && !a.StartDate.IsZero() && !a.CompletionDate.After(a.StartDate) {
		errs = append(errs, FieldError{
			Field:   "completionDate",
			Message: "completionDate must be after startDate",
		})
	}
	return errs
}

// DurationInDays is the elapsed whole days between start and completion,
// or between start and now while the audit is still open.
func (a *Audit) DurationInDays() int {
	if a.StartDate.IsZero() {
		return 0
	}
	end := time.Now()
	if a.CompletionDate != nil {
		end = *a.CompletionDate
	}
	if end.Before(a.StartDate) {
		return 0
	}
	return int(math.Ceil(end.Sub(a.StartDate).Hours() / 24))
}

// IsOverdue reports whether the audit has run past the default two-week
// duration without completing.
func (a *Audit) IsOverdue() bool {
	return a.DurationInDays() > OverdueAfterDays && a.Status != AuditCompleted
}

// ProgressPercentage is a fixed per-status lookup, not a computed value.
func (a *Audit) ProgressPercentage() int {
	progress := map[string]int{
		AuditPlanning:   10,
		AuditInProgress: 50,
		AuditReview:     80,
		AuditCompleted:  100,
		AuditCancelled:  0,
	}
	return progress[a.Status]
}

// HasTeamMember reports whether the user already belongs to the audit team.
func (a *Audit) HasTeamMember(userID primitive.ObjectID) bool {
	for _, id := range a.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}
