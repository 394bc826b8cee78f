package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is a named, weighted group of questions. Sections may live
// standalone (QuestionnaireID nil) and be reused across questionnaires by
// copying, never by aliasing.
type Section struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionnaireID *primitive.ObjectID `bson:"questionnaireId,omitempty" json:"questionnaireId,omitempty"`
	Title           string              `bson:"title" json:"title" validate:"required,max=200"`
	Description     string              `bson:"description,omitempty" json:"description,omitempty" validate:"max=1000"`
	Weight          int                 `bson:"weight" json:"weight" validate:"gte=1,lte=10"`
	Order           int                 `bson:"order" json:"order" validate:"gte=1"`
	CreatedAt       time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (s *Section) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	if s.Weight == 0 {
		s.Weight = 1
	}
	if s.Order == 0 {
		s.Order = 1
	}
}

func (s *Section) Validate() ValidationErrors {
	return validateStruct(s)
}

// Priority is a derived classification of the section weight. It is purely
// advisory and never feeds the scoring formula.
func (s *Section) Priority() string {
	switch {
	case s.Weight >= 8:
		return "high"
	case s.Weight >= 5:
		return "medium"
	default:
		return "low"
	}
}

// Copy returns a question-free duplicate of the section owned by the given
// questionnaire. Reused sections are templates: questions are intentionally
// not carried over.
func (s *Section) Copy(questionnaireID primitive.ObjectID) *Section {
	return &Section{
		QuestionnaireID: &questionnaireID,
		Title:           s.Title,
		Description:     s.Description,
		Weight:          s.Weight,
		Order:           s.Order,
	}
}
