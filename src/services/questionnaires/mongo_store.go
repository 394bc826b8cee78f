package questionnaires

import (
	"context"
	"fmt"
	"time"

	"Backend-TechAudit/src/database"
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore backs the builder with the shared database collections.
type mongoStore struct{}

// NewMongoStore returns the collection-backed Store.
func NewMongoStore() Store {
	return &mongoStore{}
}

func (s *mongoStore) InsertQuestion(ctx context.Context, question *models.Question) error {
	question.ID = primitive.NewObjectID()
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	_, err := database.QuestionCollection.InsertOne(ctx, question)
	return err
}

func (s *mongoStore) InsertSection(ctx context.Context, section *models.Section) error {
	section.ID = primitive.NewObjectID()
	section.CreatedAt = time.Now()
	section.UpdatedAt = time.Now()
	_, err := database.SectionCollection.InsertOne(ctx, section)
	return err
}

func (s *mongoStore) InsertQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	questionnaire.ID = primitive.NewObjectID()
	questionnaire.CreatedAt = time.Now()
	questionnaire.UpdatedAt = time.Now()
	_, err := database.QuestionnaireCollection.InsertOne(ctx, questionnaire)
	return err
}

func (s *mongoStore) InsertTechnology(ctx context.Context, technology *models.Technology) error {
	technology.ID = primitive.NewObjectID()
	technology.CreatedAt = time.Now()
	technology.UpdatedAt = time.Now()
	_, err := database.TechnologyCollection.InsertOne(ctx, technology)
	return err
}

func (s *mongoStore) DeleteQuestion(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.QuestionCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *mongoStore) DeleteSection(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.SectionCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *mongoStore) DeleteQuestionnaire(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.QuestionnaireCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *mongoStore) DeleteTechnology(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.TechnologyCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *mongoStore) FindSection(ctx context.Context, id primitive.ObjectID) (*models.Section, error) {
	var section models.Section
	err := database.SectionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&section)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("section: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &section, nil
}

func (s *mongoStore) FindQuestionnaire(ctx context.Context, id primitive.ObjectID) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &questionnaire, nil
}

func (s *mongoStore) FindTechnology(ctx context.Context, id primitive.ObjectID) (*models.Technology, error) {
	var technology models.Technology
	err := database.TechnologyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&technology)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("technology: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &technology, nil
}

func (s *mongoStore) FindSectionsByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) ([]models.Section, error) {
	cursor, err := database.SectionCollection.Find(ctx,
		bson.M{"questionnaireId": questionnaireID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sections := []models.Section{}
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *mongoStore) FindQuestionsBySection(ctx context.Context, sectionID primitive.ObjectID) ([]models.Question, error) {
	cursor, err := database.QuestionCollection.Find(ctx,
		bson.M{"sectionId": sectionID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *mongoStore) LinkQuestionsToSection(ctx context.Context, questionIDs []primitive.ObjectID, sectionID primitive.ObjectID) (int64, error) {
	res, err := database.QuestionCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": questionIDs}},
		bson.M{"$set": bson.M{"sectionId": sectionID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoStore) UnlinkQuestions(ctx context.Context, questionIDs []primitive.ObjectID) (int64, error) {
	res, err := database.QuestionCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": questionIDs}, "sectionId": bson.M{"$ne": nil}},
		bson.M{"$set": bson.M{"sectionId": nil, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoStore) LinkSectionsToQuestionnaire(ctx context.Context, sectionIDs []primitive.ObjectID, questionnaireID primitive.ObjectID) (int64, error) {
	res, err := database.SectionCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": sectionIDs}},
		bson.M{"$set": bson.M{"questionnaireId": questionnaireID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoStore) SetQuestionnaireTechnology(ctx context.Context, questionnaireID, technologyID primitive.ObjectID) error {
	res, err := database.QuestionnaireCollection.UpdateOne(ctx,
		bson.M{"_id": questionnaireID},
		bson.M{"$set": bson.M{"technologyId": technologyID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
	}
	return nil
}
