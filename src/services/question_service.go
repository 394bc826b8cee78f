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

// CreateQuestion validates and persists a question, standalone or under a
// section.
func CreateQuestion(question *models.Question) error {
	question.Normalize()
	if ve := question.Validate(); ve != nil {
		return ve
	}

	question.ID = primitive.NewObjectID()
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()

	_, err := database.QuestionCollection.InsertOne(context.Background(), question)
	return err
}

// GetQuestions returns a page of questions, searching the question text.
func GetQuestions(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["text"] = primitive.Regex{Pattern: params.Search, Options: "i"}
	}

	total, err := database.QuestionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.QuestionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(questions, total, params), nil
}

// GetQuestionByID returns a question by hex id.
func GetQuestionByID(id string) (*models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid question ID")
	}

	var question models.Question
	err = database.QuestionCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("question: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion validates and applies the update. Section membership is
// managed through the linking endpoints, not here.
func UpdateQuestion(id string, question *models.Question) (*models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid question ID")
	}

	question.Normalize()
	if ve := question.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"text":             question.Text,
		"guidance":         question.Guidance,
		"evidenceRequired": question.EvidenceRequired,
		"weight":           question.Weight,
		"order":            question.Order,
		"updatedAt":        time.Now(),
	}

	var updated models.Question
	err = database.QuestionCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("question: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteQuestion removes a question independently of its section.
func DeleteQuestion(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid question ID")
	}

	res, err := database.QuestionCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("question: %w", utils.ErrNotFound)
	}
	return nil
}

// GetStandaloneQuestions returns questions not linked to any section.
func GetStandaloneQuestions() ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// matches both a missing field and an explicit null from unlinking
	cursor, err := database.QuestionCollection.Find(ctx, bson.M{"sectionId": nil})
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

// GetQuestionsBySection returns a section's questions sorted by order.
func GetQuestionsBySection(sectionID string) ([]models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, errors.New("invalid section ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.QuestionCollection.Find(ctx,
		bson.M{"sectionId": objID},
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
