package services

import (
	"context"
	"time"

	"Backend-TechAudit/src/database"
	"Backend-TechAudit/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Catalog bundles the four building-block collections for the composition
// UI, which needs all of them at once to assemble a questionnaire.
type Catalog struct {
	Technologies   []models.Technology    `json:"technologies"`
	Questionnaires []models.Questionnaire `json:"questionnaires"`
	Sections       []models.Section       `json:"sections"`
	Questions      []models.Question      `json:"questions"`
}

// GetCatalog loads every technology, questionnaire, section and question,
// each list sorted by creation time descending.
func GetCatalog() (*Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	catalog := &Catalog{
		Technologies:   []models.Technology{},
		Questionnaires: []models.Questionnaire{},
		Sections:       []models.Section{},
		Questions:      []models.Question{},
	}

	if err := loadAll(ctx, database.TechnologyCollection, opts, &catalog.Technologies); err != nil {
		return nil, err
	}
	if err := loadAll(ctx, database.QuestionnaireCollection, opts, &catalog.Questionnaires); err != nil {
		return nil, err
	}
	if err := loadAll(ctx, database.SectionCollection, opts, &catalog.Sections); err != nil {
		return nil, err
	}
	if err := loadAll(ctx, database.QuestionCollection, opts, &catalog.Questions); err != nil {
		return nil, err
	}

	return catalog, nil
}

func loadAll(ctx context.Context, collection *mongo.Collection, opts *options.FindOptions, out interface{}) error {
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
