package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	dbName = "TechAuditDB"

	UserCollection          *mongo.Collection
	ProjectCollection       *mongo.Collection
	TechnologyCollection    *mongo.Collection
	QuestionnaireCollection *mongo.Collection
	SectionCollection       *mongo.Collection
	QuestionCollection      *mongo.Collection
	AuditCollection         *mongo.Collection
	AnswerCollection        *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and wires up the
// per-entity collection handles.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		dbName = name
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		UserCollection = GetCollection(dbName, "users")
		ProjectCollection = GetCollection(dbName, "projects")
		TechnologyCollection = GetCollection(dbName, "technologies")
		QuestionnaireCollection = GetCollection(dbName, "questionnaires")
		SectionCollection = GetCollection(dbName, "sections")
		QuestionCollection = GetCollection(dbName, "questions")
		AuditCollection = GetCollection(dbName, "audits")
		AnswerCollection = GetCollection(dbName, "answers")

		if err := EnsureIndexes(context.TODO()); err != nil {
			log.Println("⚠️ Failed to create indexes:", err)
		}
	})

	return connectErr
}

// EnsureIndexes creates the indexes the application relies on. The unique
// compound index on answers is what prevents a second answer for the same
// (audit, question) pair under concurrent requests.
func EnsureIndexes(ctx context.Context) error {
	_, err := AnswerCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "auditId", Value: 1}, {Key: "questionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = QuestionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sectionId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = SectionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "questionnaireId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = QuestionnaireCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}, {Key: "version", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = AuditCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "status", Value: 1}},
	})
	return err
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
