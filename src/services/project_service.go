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

// CreateProject validates and persists a project.
func CreateProject(project *models.Project) error {
	project.Normalize()
	if ve := project.Validate(); ve != nil {
		return ve
	}

	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	_, err := database.ProjectCollection.InsertOne(context.Background(), project)
	return err
}

// GetProjects returns a page of projects, searching name and client.
func GetProjects(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := primitive.Regex{Pattern: params.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"client": regex},
		}
	}

	total, err := database.ProjectCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.ProjectCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(projects, total, params), nil
}

// GetProjectByID returns a project by hex id.
func GetProjectByID(id string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID")
	}

	var project models.Project
	err = database.ProjectCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &project, nil
}

// UpdateProject validates and applies the update.
func UpdateProject(id string, project *models.Project) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID")
	}

	project.Normalize()
	if ve := project.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"name":        project.Name,
		"description": project.Description,
		"client":      project.Client,
		"status":      project.Status,
		"updatedAt":   time.Now(),
	}

	var updated models.Project
	err = database.ProjectCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a project.
func DeleteProject(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid project ID")
	}

	res, err := database.ProjectCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("project: %w", utils.ErrNotFound)
	}
	return nil
}
