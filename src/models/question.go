package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evidence requirement values for a question.
const (
	EvidenceYes      = "Yes"
	EvidenceNo       = "No"
	EvidenceOptional = "Optional"
)

// Question is an atomic audit item. Questions may live standalone
// (SectionID nil) or belong to a section; membership is a pointer on the
// question, not an embedding.
type Question struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	SectionID        *primitive.ObjectID `bson:"sectionId,omitempty" json:"sectionId,omitempty"`
	Text             string              `bson:"text" json:"text" validate:"required,max=1000"`
	Guidance         string              `bson:"guidance,omitempty" json:"guidance,omitempty" validate:"max=2000"`
	EvidenceRequired string              `bson:"evidenceRequired" json:"evidenceRequired" validate:"required,oneof=Yes No Optional"`
	Weight           int                 `bson:"weight" json:"weight" validate:"gte=0,lte=10"`
	Order            int                 `bson:"order" json:"order" validate:"gte=1"`
	CreatedAt        time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Normalize trims free-text fields and applies defaults for unset numeric
// fields (weight and order default to 1).
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.Guidance = strings.TrimSpace(q.Guidance)
	if q.Weight == 0 {
		q.Weight = 1
	}
	if q.Order == 0 {
		q.Order = 1
	}
}

func (q *Question) Validate() ValidationErrors {
	return validateStruct(q)
}

// MaxScore is the highest score this question can contribute (fully
// compliant answers score 2 points each).
func (q *Question) MaxScore() int {
	return q.Weight * 2
}

func (q *Question) IsEvidenceRequired() bool {
	return q.EvidenceRequired == EvidenceYes
}

func (q *Question) IsStandalone() bool {
	return q.SectionID == nil
}
