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

// GetUserByID returns a user by hex id.
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers returns a page of users, optionally filtered by a name/email
// search term.
func GetUsers(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := primitive.Regex{Pattern: params.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"email": regex},
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
		}
	}

	total, err := database.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(users, total, params), nil
}

// UpdateUser updates profile fields and role/active flag. The password is
// never updated through this path.
func UpdateUser(id string, update *models.User) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	current, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}

	update.Normalize()
	if update.Email == "" {
		update.Email = current.Email
	}
	if ve := update.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{
		"email":     update.Email,
		"firstName": update.FirstName,
		"lastName":  update.LastName,
		"role":      update.Role,
		"isActive":  update.IsActive,
		"updatedAt": time.Now(),
	}

	var updated models.User
	err = database.UserCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user: %w", utils.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already in use: %w", utils.ErrConflict)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user account.
func DeleteUser(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	res, err := database.UserCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user: %w", utils.ErrNotFound)
	}
	return nil
}
