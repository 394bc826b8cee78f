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

// CreateAnswer records an answer after checking that both the audit and the
// question exist. The unique (auditId, questionId) index turns a repeated
// answer into a conflict.
func CreateAnswer(answer *models.Answer) error {
	answer.Normalize()
	if ve := answer.Validate(); ve != nil {
		return ve
	}

	ctx := context.Background()

	count, err := database.AuditCollection.CountDocuments(ctx, bson.M{"_id": answer.AuditID})
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("audit: %w", utils.ErrNotFound)
	}

	count, err = database.QuestionCollection.CountDocuments(ctx, bson.M{"_id": answer.QuestionID})
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("question: %w", utils.ErrNotFound)
	}

	answer.ID = primitive.NewObjectID()
	answer.CreatedAt = time.Now()

	_, err = database.AnswerCollection.InsertOne(ctx, answer)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("question already answered for this audit: %w", utils.ErrConflict)
	}
	return err
}

// GetAnswerByID returns an answer by hex id.
func GetAnswerByID(id string) (*models.Answer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid answer ID")
	}

	var answer models.Answer
	err = database.AnswerCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&answer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("answer: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &answer, nil
}

// GetAnswersByAudit returns every answer recorded for an audit.
func GetAnswersByAudit(auditID string) ([]models.Answer, error) {
	objID, err := primitive.ObjectIDFromHex(auditID)
	if err != nil {
		return nil, errors.New("invalid audit ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.AnswerCollection.Find(ctx, bson.M{"auditId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	answers := []models.Answer{}
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// UpdateAnswer applies the provided fields and re-stamps answeredAt, since
// any change is a fresh assessment of the question.
func UpdateAnswer(id string, update *models.AnswerUpdate) (*models.Answer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid answer ID")
	}

	if ve := update.Validate(); ve != nil {
		return nil, ve
	}

	set := bson.M{"answeredAt": time.Now()}
	if update.ComplianceStatus != nil {
		set["complianceStatus"] = *update.ComplianceStatus
	}
	if update.Evidence != nil {
		set["evidence"] = *update.Evidence
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	var updated models.Answer
	err = database.AnswerCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("answer: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteAnswer removes an answer.
func DeleteAnswer(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid answer ID")
	}

	res, err := database.AnswerCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("answer: %w", utils.ErrNotFound)
	}
	return nil
}
