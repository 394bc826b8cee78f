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

// CreateTechnology validates and persists a technology.
func CreateTechnology(tech *models.Technology) error {
	tech.Normalize()
	if ve := tech.Validate(); ve != nil {
		return ve
	}

	tech.ID = primitive.NewObjectID()
	tech.CreatedAt = time.Now()
	tech.UpdatedAt = time.Now()

	_, err := database.TechnologyCollection.InsertOne(context.Background(), tech)
	return err
}

// GetTechnologies returns a page of technologies, searching name, vendor
// and category.
func GetTechnologies(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := primitive.Regex{Pattern: params.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"vendor": regex},
			bson.M{"category": regex},
		}
	}

	total, err := database.TechnologyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.TechnologyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	technologies := []models.Technology{}
	if err := cursor.All(ctx, &technologies); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(technologies, total, params), nil
}

// GetTechnologyByID returns a technology by hex id.
func GetTechnologyByID(id string) (*models.Technology, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid technology ID")
	}

	var tech models.Technology
	err = database.TechnologyCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&tech)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("technology: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &tech, nil
}

// UpdateTechnology validates and applies the update.
func UpdateTechnology(id string, tech *models.Technology) (*models.Technology, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid technology ID")
	}

	tech.Normalize()
	if ve := tech.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"name":        tech.Name,
		"version":     tech.Version,
		"vendor":      tech.Vendor,
		"category":    tech.Category,
		"riskLevel":   tech.RiskLevel,
		"description": tech.Description,
		"updatedAt":   time.Now(),
	}

	var updated models.Technology
	err = database.TechnologyCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("technology: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteTechnology removes a technology and detaches any questionnaires
// linked to it.
func DeleteTechnology(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid technology ID")
	}

	ctx := context.Background()
	res, err := database.TechnologyCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("technology: %w", utils.ErrNotFound)
	}

	_, err = database.QuestionnaireCollection.UpdateMany(ctx,
		bson.M{"technologyId": objID},
		bson.M{"$set": bson.M{"technologyId": nil, "updatedAt": time.Now()}},
	)
	return err
}
