package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wanderboard/models"
)

type ItineraryRepository struct {
	days   *mongo.Collection
	blocks *mongo.Collection
}

func NewItineraryRepository(db *mongo.Database) *ItineraryRepository {
	return &ItineraryRepository{
		days:   db.Collection("itinerary_days"),
		blocks: db.Collection("itinerary_blocks"),
	}
}

// ListByTrip returns the trip's days in day_number order, each with its
// blocks sorted by position_index.
func (r *ItineraryRepository) ListByTrip(ctx context.Context, tripID primitive.ObjectID) ([]models.ItineraryDay, error) {
	opts := options.Find().SetSort(bson.D{{Key: "day_number", Value: 1}})
	cur, err := r.days.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	days := []models.ItineraryDay{}
	if err := cur.All(ctx, &days); err != nil {
		return nil, err
	}

	for i := range days {
		blocks, err := r.listBlocks(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Blocks = blocks
	}
	return days, nil
}

func (r *ItineraryRepository) listBlocks(ctx context.Context, dayID primitive.ObjectID) ([]models.ItineraryBlock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position_index", Value: 1}})
	cur, err := r.blocks.Find(ctx, bson.M{"day_id": dayID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blocks := []models.ItineraryBlock{}
	if err := cur.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ReplaceForTrip deletes the trip's existing itinerary and inserts the given
// days with their blocks. No multi-document transaction: a partial failure
// leaves the itinerary incomplete and the caller retries the whole accept.
func (r *ItineraryRepository) ReplaceForTrip(ctx context.Context, tripID primitive.ObjectID, days []models.ItineraryDay) error {
	if err := r.DeleteForTrip(ctx, tripID); err != nil {
		return err
	}

	now := time.Now()
	for i := range days {
		day := days[i]
		day.ID = primitive.NilObjectID
		day.TripID = tripID
		day.CreatedAt = now
		day.UpdatedAt = now

		res, err := r.days.InsertOne(ctx, day)
		if err != nil {
			return err
		}
		dayID := res.InsertedID.(primitive.ObjectID)

		if len(day.Blocks) == 0 {
			continue
		}
		docs := make([]interface{}, 0, len(day.Blocks))
		for j := range day.Blocks {
			b := day.Blocks[j]
			b.ID = primitive.NilObjectID
			b.DayID = dayID
			b.PositionIndex = j
			b.CreatedAt = now
			b.UpdatedAt = now
			docs = append(docs, b)
		}
		if _, err := r.blocks.InsertMany(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTrip removes all days and blocks of the trip.
func (r *ItineraryRepository) DeleteForTrip(ctx context.Context, tripID primitive.ObjectID) error {
	cur, err := r.days.Find(ctx, bson.M{"trip_id": tripID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var dayIDs []primitive.ObjectID
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		dayIDs = append(dayIDs, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return err
	}

	if len(dayIDs) > 0 {
		if _, err := r.blocks.DeleteMany(ctx, bson.M{"day_id": bson.M{"$in": dayIDs}}); err != nil {
			return err
		}
	}
	_, err = r.days.DeleteMany(ctx, bson.M{"trip_id": tripID})
	return err
}

func (r *ItineraryRepository) FindDay(ctx context.Context, dayID primitive.ObjectID) (*models.ItineraryDay, error) {
	var day models.ItineraryDay
	if err := r.days.FindOne(ctx, bson.M{"_id": dayID}).Decode(&day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *ItineraryRepository) UpdateDayFields(ctx context.Context, dayID primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := r.days.UpdateByID(ctx, dayID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertBlock appends a block at the end of its day.
func (r *ItineraryRepository) InsertBlock(ctx context.Context, b *models.ItineraryBlock) (*models.ItineraryBlock, error) {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Currency == "" {
		b.Currency = "USD"
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "position_index", Value: -1}})
	var last models.ItineraryBlock
	err := r.blocks.FindOne(ctx, bson.M{"day_id": b.DayID}, opts).Decode(&last)
	switch {
	case err == nil:
		b.PositionIndex = last.PositionIndex + 1
	case errors.Is(err, mongo.ErrNoDocuments):
		b.PositionIndex = 0
	default:
		return nil, err
	}

	res, err := r.blocks.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

func (r *ItineraryRepository) UpdateBlockFields(ctx context.Context, blockID primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := r.blocks.UpdateByID(ctx, blockID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ItineraryRepository) DeleteBlock(ctx context.Context, blockID primitive.ObjectID) error {
	res, err := r.blocks.DeleteOne(ctx, bson.M{"_id": blockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderBlocks applies new position indexes (and optionally a new day) to
// blocks after a drag-and-drop edit.
func (r *ItineraryRepository) ReorderBlocks(ctx context.Context, moves []BlockMove) error {
	for _, m := range moves {
		set := bson.M{"position_index": m.PositionIndex, "updated_at": time.Now()}
		if !m.DayID.IsZero() {
			set["day_id"] = m.DayID
		}
		if _, err := r.blocks.UpdateByID(ctx, m.BlockID, bson.M{"$set": set}); err != nil {
			return err
		}
	}
	return nil
}

// BlockMove is one entry of a reorder request.
type BlockMove struct {
	BlockID       primitive.ObjectID
	DayID         primitive.ObjectID
	PositionIndex int
}
