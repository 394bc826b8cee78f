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

// CreateSection validates and persists a section, standalone or under a
// questionnaire.
func CreateSection(section *models.Section) error {
	section.Normalize()
	if ve := section.Validate(); ve != nil {
		return ve
	}

	section.ID = primitive.NewObjectID()
	section.CreatedAt = time.Now()
	section.UpdatedAt = time.Now()

	_, err := database.SectionCollection.InsertOne(context.Background(), section)
	return err
}

// GetSections returns a page of sections, searching the title.
func GetSections(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = primitive.Regex{Pattern: params.Search, Options: "i"}
	}

	total, err := database.SectionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.SectionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sections := []models.Section{}
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(sections, total, params), nil
}

// GetSectionByID returns a section by hex id.
func GetSectionByID(id string) (*models.Section, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid section ID")
	}

	var section models.Section
	err = database.SectionCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&section)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("section: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &section, nil
}

// UpdateSection validates and applies the update.
func UpdateSection(id string, section *models.Section) (*models.Section, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid section ID")
	}

	section.Normalize()
	if ve := section.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"title":       section.Title,
		"description": section.Description,
		"weight":      section.Weight,
		"order":       section.Order,
		"updatedAt":   time.Now(),
	}

	var updated models.Section
	err = database.SectionCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("section: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteSection removes a section and unlinks its questions so they become
// standalone rather than orphaned.
func DeleteSection(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid section ID")
	}

	ctx := context.Background()
	res, err := database.SectionCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("section: %w", utils.ErrNotFound)
	}

	_, err = database.QuestionCollection.UpdateMany(ctx,
		bson.M{"sectionId": objID},
		bson.M{"$set": bson.M{"sectionId": nil, "updatedAt": time.Now()}},
	)
	return err
}

// GetSectionsByQuestionnaire returns a questionnaire's sections sorted by
// order.
func GetSectionsByQuestionnaire(questionnaireID string) ([]models.Section, error) {
	objID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, errors.New("invalid questionnaire ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.SectionCollection.Find(ctx,
		bson.M{"questionnaireId": objID},
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
