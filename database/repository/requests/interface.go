package requestsRepo

import (
	"context"

	"meetwise/database"
	"meetwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRecordRepository archives processed scheduling requests.
type ScheduleRecordRepository interface {
	Create(ctx context.Context, record models.ScheduleRecord) (string, error)
	GetByRequestID(ctx context.Context, requestID string) (*models.ScheduleRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]models.ScheduleRecord, error)
}

type mongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo returns a ScheduleRecordRepository backed by MongoDB.
func NewMongoRequestRepo() ScheduleRecordRepository {
	db := database.MongoClient.Database("meetwise")
	return &mongoRequestRepo{
		coll: db.Collection("schedule_records"),
	}
}
