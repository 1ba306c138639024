package requestsRepo

import (
	"context"
	"time"

	"meetwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new schedule record and returns its ID.
func (r *mongoRequestRepo) Create(ctx context.Context, record models.ScheduleRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByRequestID returns the archived record for an upstream request ID.
func (r *mongoRequestRepo) GetByRequestID(ctx context.Context, requestID string) (*models.ScheduleRecord, error) {
	var record models.ScheduleRecord
	err := r.coll.FindOne(ctx, bson.M{"requestId": requestID}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecent fetches the most recently processed records, newest first.
func (r *mongoRequestRepo) ListRecent(ctx context.Context, limit int64) ([]models.ScheduleRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ScheduleRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
