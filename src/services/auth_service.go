package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Backend-TechAudit/src/database"
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the request, hashes the password and creates the
// account. Duplicate emails surface as a conflict.
func RegisterUser(req *models.RegisterRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if ve := req.Validate(); ve != nil {
		return nil, ve
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	user.Normalize()
	if ve := user.Validate(); ve != nil {
		return nil, ve
	}

	_, err = database.UserCollection.InsertOne(context.Background(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("user with this email already exists: %w", utils.ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks the credentials and that the account is active.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(
		context.Background(),
		bson.M{"email": strings.ToLower(strings.TrimSpace(email))},
	).Decode(&user)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !user.IsActive {
		return nil, errors.New("user account is deactivated")
	}

	return &user, nil
}
