package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compliance statuses an auditor can record for a question.
const (
	Compliant          = "compliant"
	PartiallyCompliant = "partially-compliant"
	NonCompliant       = "non-compliant"
)

// Answer is the per-audit response to one question. Identity is the
// (auditId, questionId) pair, enforced unique by the storage layer; status,
// evidence and notes stay mutable.
type Answer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AuditID          primitive.ObjectID `bson:"auditId" json:"auditId" validate:"required"`
	QuestionID       primitive.ObjectID `bson:"questionId" json:"questionId" validate:"required"`
	ComplianceStatus string             `bson:"complianceStatus" json:"complianceStatus" validate:"required,oneof=compliant partially-compliant non-compliant"`
	Evidence         string             `bson:"evidence,omitempty" json:"evidence,omitempty" validate:"max=2000"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty" validate:"max=1000"`
	AnsweredBy       primitive.ObjectID `bson:"answeredBy" json:"answeredBy" validate:"required"`
	AnsweredAt       time.Time          `bson:"answeredAt" json:"answeredAt"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (ans *Answer) Normalize() {
	ans.Evidence = strings.TrimSpace(ans.Evidence)
	ans.Notes = strings.TrimSpace(ans.Notes)
	if ans.AnsweredAt.IsZero() {
		ans.AnsweredAt = time.Now()
	}
}

func (ans *Answer) Validate() ValidationErrors {
	return validateStruct(ans)
}

// Score maps the compliance status onto the fixed 3-point scale.
func (ans *Answer) Score() int {
	scores := map[string]int{
		Compliant:          2,
		PartiallyCompliant: 1,
		NonCompliant:       0,
	}
	return scores[ans.ComplianceStatus]
}

// ScorePercentage expresses the answer score against the 2-point maximum.
func (ans *Answer) ScorePercentage() int {
	return ans.Score() * 100 / 2
}

func (ans *Answer) IsCompliant() bool {
	return ans.ComplianceStatus == Compliant
}

// AnswerUpdate carries the mutable answer fields; nil means "leave as is".
type AnswerUpdate struct {
	ComplianceStatus *string `json:"complianceStatus" validate:"omitempty,oneof=compliant partially-compliant non-compliant"`
	Evidence         *string `json:"evidence" validate:"omitempty,max=2000"`
	Notes            *string `json:"notes" validate:"omitempty,max=1000"`
}

func (u *AnswerUpdate) Validate() ValidationErrors {
	return validateStruct(u)
}
