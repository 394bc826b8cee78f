package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Questionnaire is a named, versioned group of sections. (title, version)
// conventionally identifies a revision.
type Questionnaire struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	TechnologyID *primitive.ObjectID `bson:"technologyId,omitempty" json:"technologyId,omitempty"`
	Title        string              `bson:"title" json:"title" validate:"required,max=200"`
	Version      string              `bson:"version" json:"version" validate:"required,max=50"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty" validate:"max=1000"`
	CreatedAt    time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (qn *Questionnaire) Normalize() {
	qn.Title = strings.TrimSpace(qn.Title)
	qn.Version = strings.TrimSpace(qn.Version)
	qn.Description = strings.TrimSpace(qn.Description)
}

func (qn *Questionnaire) Validate() ValidationErrors {
	return validateStruct(qn)
}

func (qn *Questionnaire) FullTitle() string {
	return fmt.Sprintf("%s v%s", qn.Title, qn.Version)
}

// QuestionnaireStructure is the fully assembled read model for a
// questionnaire: its sections, each with its questions.
type QuestionnaireStructure struct {
	Questionnaire *Questionnaire     `json:"questionnaire"`
	Structure     []SectionStructure `json:"structure"`
}

type SectionStructure struct {
	Section   Section    `json:"section"`
	Questions []Question `json:"questions"`
}

// TotalQuestions counts the questions across all sections.
func (qs *QuestionnaireStructure) TotalQuestions() int {
	total := 0
	for _, ss := range qs.Structure {
		total += len(ss.Questions)
	}
	return total
}

// MaxPossibleScore is the theoretical maximum raw score: every question
// fully compliant at 2 points.
func (qs *QuestionnaireStructure) MaxPossibleScore() int {
	return qs.TotalQuestions() * 2
}
