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

type InspoItemRepository struct {
	col *mongo.Collection
}

func NewInspoItemRepository(db *mongo.Database) *InspoItemRepository {
	return &InspoItemRepository{col: db.Collection("inspo_items")}
}

// Insert appends the item at the end of the trip's board
// (position_index = current max + 1).
func (r *InspoItemRepository) Insert(ctx context.Context, item *models.InspoItem) (*models.InspoItem, error) {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Tags == nil {
		item.Tags = []string{}
	}

	next, err := r.nextPositionIndex(ctx, item.TripID)
	if err != nil {
		return nil, err
	}
	item.PositionIndex = next

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (r *InspoItemRepository) nextPositionIndex(ctx context.Context, tripID primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "position_index", Value: -1}})
	var last models.InspoItem
	err := r.col.FindOne(ctx, bson.M{"trip_id": tripID}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return last.PositionIndex + 1, nil
}

// ListByTrip returns the trip's items in position order. When ids is
// non-empty, the result is filtered to that selection while preserving
// position order.
func (r *InspoItemRepository) ListByTrip(ctx context.Context, tripID primitive.ObjectID, ids []primitive.ObjectID) ([]models.InspoItem, error) {
	filter := bson.M{"trip_id": tripID}
	if len(ids) > 0 {
		filter["_id"] = bson.M{"$in": ids}
	}
	opts := options.Find().SetSort(bson.D{{Key: "position_index", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.InspoItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InspoItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.InspoItem, error) {
	var item models.InspoItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *InspoItemRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InspoItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByTrip removes every inspo item of a trip.
func (r *InspoItemRepository) DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"trip_id": tripID})
	return err
}

// Reorder applies new position indexes to the given items.
func (r *InspoItemRepository) Reorder(ctx context.Context, positions map[primitive.ObjectID]int) error {
	for id, pos := range positions {
		if _, err := r.col.UpdateByID(ctx, id, bson.M{
			"$set": bson.M{"position_index": pos, "updated_at": time.Now()},
		}); err != nil {
			return err
		}
	}
	return nil
}
