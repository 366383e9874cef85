package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wanderboard/models"
)

type GenerationLogRepository struct {
	col *mongo.Collection
}

func NewGenerationLogRepository(db *mongo.Database) *GenerationLogRepository {
	return &GenerationLogRepository{col: db.Collection("generation_logs")}
}

// Insert appends one audit record. Logs are write-once.
func (r *GenerationLogRepository) Insert(ctx context.Context, log models.GenerationLog) (*mongo.InsertOneResult, error) {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// ListByTrip returns the trip's generation history, newest first.
func (r *GenerationLogRepository) ListByTrip(ctx context.Context, tripID primitive.ObjectID, limit int64) ([]models.GenerationLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	logs := []models.GenerationLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
