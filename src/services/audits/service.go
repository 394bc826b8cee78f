package audits

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-TechAudit/src/database"
	"Backend-TechAudit/src/jobs"
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAudit validates the audit and checks that its project and lead
// auditor actually exist before persisting.
func CreateAudit(audit *models.Audit) error {
	audit.Normalize()
	if ve := audit.Validate(); ve != nil {
		return ve
	}

	ctx := context.Background()

	count, err := database.ProjectCollection.CountDocuments(ctx, bson.M{"_id": audit.ProjectID})
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("project: %w", utils.ErrNotFound)
	}

	count, err = database.UserCollection.CountDocuments(ctx, bson.M{"_id": audit.LeadAuditorID})
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("lead auditor: %w", utils.ErrNotFound)
	}

	if audit.TeamMembers == nil {
		audit.TeamMembers = []primitive.ObjectID{}
	}
	audit.ID = primitive.NewObjectID()
	audit.CreatedAt = time.Now()
	audit.UpdatedAt = time.Now()

	_, err = database.AuditCollection.InsertOne(ctx, audit)
	return err
}

// GetAudits returns a page of audits, optionally filtered by status and
// project.
func GetAudits(params models.PaginationParams, status, projectID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if projectID != "" {
		objID, err := primitive.ObjectIDFromHex(projectID)
		if err != nil {
			return nil, errors.New("invalid project ID")
		}
		filter["projectId"] = objID
	}

	total, err := database.AuditCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.AuditCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	audits := []models.Audit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(audits, total, params), nil
}

// GetAuditByID returns an audit by hex id.
func GetAuditByID(id string) (*models.Audit, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid audit ID")
	}

	var audit models.Audit
	err = database.AuditCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&audit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("audit: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &audit, nil
}

// UpdateAudit updates the mutable audit fields. The status may move between
// the open states here; entering or leaving completed and cancelled goes
// through the lifecycle endpoints only.
func UpdateAudit(id string, audit *models.Audit) (*models.Audit, error) {
	current, err := GetAuditByID(id)
	if err != nil {
		return nil, err
	}

	audit.Normalize()
	if ve := audit.Validate(); ve != nil {
		return nil, ve
	}

	if audit.Status != current.Status {
		if current.Status == models.AuditCompleted || current.Status == models.AuditCancelled {
			return nil, fmt.Errorf("audit is %s: %w", current.Status, utils.ErrInvalidState)
		}
		if audit.Status == models.AuditCompleted || audit.Status == models.AuditCancelled {
			return nil, fmt.Errorf("use the lifecycle endpoints to close an audit: %w", utils.ErrInvalidState)
		}
	}

	set := bson.M{
		"projectId":     audit.ProjectID,
		"leadAuditorId": audit.LeadAuditorID,
		"status":        audit.Status,
		"startDate":     audit.StartDate,
		"updatedAt":     time.Now(),
	}
	if audit.TeamMembers != nil {
		set["teamMembers"] = audit.TeamMembers
	}

	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": current.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAudit removes an audit and its answers.
func DeleteAudit(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid audit ID")
	}

	ctx := context.Background()
	res, err := database.AuditCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("audit: %w", utils.ErrNotFound)
	}

	_, err = database.AnswerCollection.DeleteMany(ctx, bson.M{"auditId": objID})
	return err
}

// StartAudit moves a planning audit to in-progress, resets the start date
// and schedules the overdue check two weeks out.
func StartAudit(id string) (*models.Audit, error) {
	audit, err := GetAuditByID(id)
	if err != nil {
		return nil, err
	}
	if audit.Status != models.AuditPlanning {
		return nil, fmt.Errorf("cannot start an audit in %s status: %w", audit.Status, utils.ErrInvalidState)
	}

	now := time.Now()
	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": audit.ID},
		bson.M{"$set": bson.M{
			"status":    models.AuditInProgress,
			"startDate": now,
			"updatedAt": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	scheduleOverdueCheck(&updated)
	return &updated, nil
}

// CompleteAudit moves a review audit to completed, stamps the completion
// date and persists the final score.
func CompleteAudit(id string) (*models.Audit, error) {
	audit, err := GetAuditByID(id)
	if err != nil {
		return nil, err
	}
	if audit.Status != models.AuditReview {
		return nil, fmt.Errorf("cannot complete an audit in %s status: %w", audit.Status, utils.ErrInvalidState)
	}

	score, err := scoreForAudit(audit.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": audit.ID},
		bson.M{"$set": bson.M{
			"status":         models.AuditCompleted,
			"completionDate": now,
			"overallScore":   score,
			"updatedAt":      now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelAudit closes an audit from any open state.
func CancelAudit(id string) (*models.Audit, error) {
	audit, err := GetAuditByID(id)
	if err != nil {
		return nil, err
	}
	if audit.Status == models.AuditCompleted || audit.Status == models.AuditCancelled {
		return nil, fmt.Errorf("audit is already %s: %w", audit.Status, utils.ErrInvalidState)
	}

	now := time.Now()
	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": audit.ID},
		bson.M{"$set": bson.M{
			"status":         models.AuditCancelled,
			"completionDate": now,
			"updatedAt":      now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddTeamMember adds a user to the audit team. $addToSet keeps membership a
// set, so repeating the call is harmless.
func AddTeamMember(auditID, userID string) (*models.Audit, error) {
	objID, err := primitive.ObjectIDFromHex(auditID)
	if err != nil {
		return nil, errors.New("invalid audit ID")
	}
	memberID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx := context.Background()
	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"_id": memberID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("user: %w", utils.ErrNotFound)
	}

	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{
			"$addToSet": bson.M{"teamMembers": memberID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("audit: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// RemoveTeamMember removes a user from the audit team.
func RemoveTeamMember(auditID, userID string) (*models.Audit, error) {
	objID, err := primitive.ObjectIDFromHex(auditID)
	if err != nil {
		return nil, errors.New("invalid audit ID")
	}
	memberID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(context.Background(),
		bson.M{"_id": objID},
		bson.M{
			"$pull": bson.M{"teamMembers": memberID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("audit: %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// GetOverdueAudits lists open audits that started more than two weeks ago.
func GetOverdueAudits() ([]models.Audit, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -models.OverdueAfterDays)
	cursor, err := database.AuditCollection.Find(ctx, bson.M{
		"startDate": bson.M{"$lt": cutoff},
		"status":    bson.M{"$nin": bson.A{models.AuditCompleted, models.AuditCancelled}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	audits := []models.Audit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, err
	}
	return audits, nil
}

// CalculateAndStoreScore recomputes the overall score from the current
// answers and persists it.
func CalculateAndStoreScore(id string) (*models.Audit, error) {
	audit, err := GetAuditByID(id)
	if err != nil {
		return nil, err
	}

	score, err := scoreForAudit(audit.ID)
	if err != nil {
		return nil, err
	}

	var updated models.Audit
	err = database.AuditCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": audit.ID},
		bson.M{"$set": bson.M{"overallScore": score, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// scoreForAudit loads the audit's answers and the weights of the questions
// they reference, then runs the scoring formula.
func scoreForAudit(auditID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.AnswerCollection.Find(ctx, bson.M{"auditId": auditID})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	answers := []models.Answer{}
	if err := cursor.All(ctx, &answers); err != nil {
		return 0, err
	}
	if len(answers) == 0 {
		return 0, nil
	}

	questionIDs := make([]primitive.ObjectID, 0, len(answers))
	for i := range answers {
		questionIDs = append(questionIDs, answers[i].QuestionID)
	}

	qCursor, err := database.QuestionCollection.Find(ctx, bson.M{"_id": bson.M{"$in": questionIDs}})
	if err != nil {
		return 0, err
	}
	defer qCursor.Close(ctx)

	questions := []models.Question{}
	if err := qCursor.All(ctx, &questions); err != nil {
		return 0, err
	}

	weights := make(map[primitive.ObjectID]int, len(questions))
	for i := range questions {
		weights[questions[i].ID] = questions[i].Weight
	}

	return CalculateAuditScore(answers, weights), nil
}

// scheduleOverdueCheck enqueues the overdue task at start + 14 days,
// replacing any task from a previous start. Without Redis this is a no-op.
func scheduleOverdueCheck(audit *models.Audit) {
	if database.AsynqClient == nil {
		return
	}

	taskID := "audit-overdue-" + audit.ID.Hex()
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: database.RedisURI})
	if err := inspector.DeleteTask("default", taskID); err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ Failed to delete old task "+taskID+", then skipping:", err)
	}

	task, err := jobs.NewAuditOverdueTask(audit.ID.Hex())
	if err != nil {
		log.Println("❌ Failed to create overdue task:", err)
		return
	}

	runAt := audit.StartDate.AddDate(0, 0, models.OverdueAfterDays)
	if _, err := database.AsynqClient.Enqueue(task, asynq.ProcessAt(runAt), asynq.TaskID(taskID)); err != nil {
		log.Println("❌ Failed to enqueue overdue task:", err)
		return
	}
	log.Printf("✅ Task scheduled: %s | RunAt=%s", taskID, runAt.Format(time.RFC3339))
}
