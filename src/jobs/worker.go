package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-TechAudit/src/database"
	"Backend-TechAudit/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleAuditOverdueTask fires two weeks after an audit starts. If the audit
// still exists and is still open it stamps overdueFlaggedAt; completed,
// cancelled or deleted audits make the task a no-op.
func HandleAuditOverdueTask(ctx context.Context, t *asynq.Task) error {
	var payload AuditPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.AuditID)
	if err != nil {
		log.Println("❌ Invalid audit id in task payload:", payload.AuditID)
		return err
	}

	var audit models.Audit
	err = database.AuditCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&audit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Audit not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		log.Println("❌ Failed to find audit:", err)
		return err
	}

	if audit.Status == models.AuditCompleted || audit.Status == models.AuditCancelled {
		log.Println("✅ Audit already closed, nothing to flag:", id.Hex())
		return nil
	}

	_, err = database.AuditCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"overdueFlaggedAt": time.Now(), "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("❌ Failed to flag overdue audit:", err)
		return err
	}

	log.Println("✅ Audit flagged overdue:", id.Hex())
	return nil
}

// RunWorker starts the in-process Asynq worker. It returns immediately when
// Redis is not configured so the HTTP server can run standalone.
func RunWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAuditOverdue, HandleAuditOverdueTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
