package services

import (
	"context"
	"errors"
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

// CreateQuestionnaire validates and persists a questionnaire.
func CreateQuestionnaire(qn *models.Questionnaire) error {
	qn.Normalize()
	if ve := qn.Validate(); ve != nil {
		return ve
	}

	qn.ID = primitive.NewObjectID()
	qn.CreatedAt = time.Now()
	qn.UpdatedAt = time.Now()

	_, err := database.QuestionnaireCollection.InsertOne(context.Background(), qn)
	return err
}

// GetQuestionnaires returns a page of questionnaires, searching the title.
func GetQuestionnaires(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = primitive.Regex{Pattern: params.Search, Options: "i"}
	}

	total, err := database.QuestionnaireCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.QuestionnaireCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questionnaires := []models.Questionnaire{}
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(questionnaires, total, params), nil
}

// GetQuestionnaireByID returns a questionnaire by hex id.
func GetQuestionnaireByID(id string) (*models.Questionnaire, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid questionnaire ID")
	}

	var qn models.Questionnaire
	err = database.QuestionnaireCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&qn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &qn, nil
}

// GetLatestQuestionnaireVersion resolves "latest" by sorting the version
// string descending, matching how revisions were always resolved. It is
// not a semantic-version comparison.
func GetLatestQuestionnaireVersion(title string) (*models.Questionnaire, error) {
	var qn models.Questionnaire
	err := database.QuestionnaireCollection.FindOne(
		context.Background(),
		bson.M{"title": title},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&qn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &qn, nil
}

// UpdateQuestionnaire validates and applies the update.
func UpdateQuestionnaire(id string, qn *models.Questionnaire) (*models.Questionnaire, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid questionnaire ID")
	}

	qn.Normalize()
	if ve := qn.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"title":       qn.Title,
		"version":     qn.Version,
		"description": qn.Description,
		"updatedAt":   time.Now(),
	}

	var updated models.Questionnaire
	err = database.QuestionnaireCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteQuestionnaire removes a questionnaire and detaches its sections.
func DeleteQuestionnaire(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid questionnaire ID")
	}

	ctx := context.Background()
	res, err := database.QuestionnaireCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("questionnaire: %w", utils.ErrNotFound)
	}

	_, err = database.SectionCollection.UpdateMany(ctx,
		bson.M{"questionnaireId": objID},
		bson.M{"$set": bson.M{"questionnaireId": nil, "updatedAt": time.Now()}},
	)
	return err
}

// GetQuestionnairesByTechnology returns the questionnaires linked to a
// technology.
func GetQuestionnairesByTechnology(technologyID string) ([]models.Questionnaire, error) {
	objID, err := primitive.ObjectIDFromHex(technologyID)
	if err != nil {
		return nil, errors.New("invalid technology ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.QuestionnaireCollection.Find(ctx, bson.M{"technologyId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questionnaires := []models.Questionnaire{}
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, err
	}
	return questionnaires, nil
}
