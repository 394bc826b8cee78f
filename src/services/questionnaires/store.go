package questionnaires

import (
	"context"

	"Backend-TechAudit/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the builder works against. The Mongo
// implementation is the real one; tests swap in an in-memory fake.
type Store interface {
	InsertQuestion(ctx context.Context, question *models.Question) error
	InsertSection(ctx context.Context, section *models.Section) error
	InsertQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error
	InsertTechnology(ctx context.Context, technology *models.Technology) error

	DeleteQuestion(ctx context.Context, id primitive.ObjectID) error
	DeleteSection(ctx context.Context, id primitive.ObjectID) error
	DeleteQuestionnaire(ctx context.Context, id primitive.ObjectID) error
	DeleteTechnology(ctx context.Context, id primitive.ObjectID) error

	FindSection(ctx context.Context, id primitive.ObjectID) (*models.Section, error)
	FindQuestionnaire(ctx context.Context, id primitive.ObjectID) (*models.Questionnaire, error)
	FindTechnology(ctx context.Context, id primitive.ObjectID) (*models.Technology, error)
	FindSectionsByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) ([]models.Section, error)
	FindQuestionsBySection(ctx context.Context, sectionID primitive.ObjectID) ([]models.Question, error)

	LinkQuestionsToSection(ctx context.Context, questionIDs []primitive.ObjectID, sectionID primitive.ObjectID) (int64, error)
	UnlinkQuestions(ctx context.Context, questionIDs []primitive.ObjectID) (int64, error)
	LinkSectionsToQuestionnaire(ctx context.Context, sectionIDs []primitive.ObjectID, questionnaireID primitive.ObjectID) (int64, error)
	SetQuestionnaireTechnology(ctx context.Context, questionnaireID, technologyID primitive.ObjectID) error
}
