package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderboard/dto"
	"wanderboard/eventbus"
	"wanderboard/events"
	"wanderboard/logger"
	"wanderboard/models"
	"wanderboard/repositories"
)

// ItineraryService manages the per-trip itinerary: accepting generated
// drafts and hand-editing days and blocks afterwards.
type ItineraryService struct {
	itinerary *repositories.ItineraryRepository
	trips     *repositories.TripRepository
	bus       eventbus.Bus
}

func NewItineraryService(
	itinerary *repositories.ItineraryRepository,
	trips *repositories.TripRepository,
	bus eventbus.Bus,
) *ItineraryService {
	return &ItineraryService{itinerary: itinerary, trips: trips, bus: bus}
}

func (s *ItineraryService) ListByTrip(ctx context.Context, tripID string) ([]models.ItineraryDay, error) {
	oid, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.itinerary.ListByTrip(ctx, oid)
}

// Accept replaces the trip's itinerary with a generated draft and moves
// the trip to the generated status. Every inserted block is marked as
// AI-generated; missing block fields get conservative defaults.
func (s *ItineraryService) Accept(ctx context.Context, in dto.AcceptItineraryDTO) ([]models.ItineraryDay, error) {
	tripID, err := primitive.ObjectIDFromHex(in.TripID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.trips.FindByID(ctx, tripID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	days := make([]models.ItineraryDay, 0, len(in.Days))
	numBlocks := 0
	for i, gd := range in.Days {
		day := models.ItineraryDay{
			TripID:    tripID,
			DayNumber: gd.DayNumber,
			Title:     gd.Title,
			Summary:   gd.Summary,
		}
		if day.DayNumber <= 0 {
			day.DayNumber = i + 1
		}
		for _, gb := range gd.Blocks {
			day.Blocks = append(day.Blocks, newAcceptedBlock(gb))
		}
		numBlocks += len(day.Blocks)
		days = append(days, day)
	}

	if err := s.itinerary.ReplaceForTrip(ctx, tripID, days); err != nil {
		return nil, err
	}
	if err := s.trips.UpdateStatus(ctx, tripID, models.TripStatusGenerated); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ItineraryAccepted, events.ItineraryAcceptedEvent{
		TripID:    tripID,
		NumDays:   len(days),
		NumBlocks: numBlocks,
	})
	return s.itinerary.ListByTrip(ctx, tripID)
}

// newAcceptedBlock maps a generated block onto the stored model, filling
// defaults for fields the model left out.
func newAcceptedBlock(gb models.GeneratedBlock) models.ItineraryBlock {
	blockType := gb.Type
	if !models.ValidBlockType(blockType) {
		blockType = models.BlockTypeActivity
	}
	title := gb.Title
	if title == "" {
		title = "Untitled"
	}
	currency := gb.Currency
	if currency == "" {
		currency = "USD"
	}
	return models.ItineraryBlock{
		Type:            blockType,
		Title:           title,
		Description:     gb.Description,
		StartTime:       gb.StartTime,
		EndTime:         gb.EndTime,
		DurationMinutes: gb.DurationMinutes,
		Location:        gb.Location,
		CostEstimate:    gb.CostEstimate,
		Currency:        currency,
		AIGenerated:     true,
	}
}

func (s *ItineraryService) UpdateDay(ctx context.Context, dayID string, in dto.UpdateDayDTO) (*models.ItineraryDay, error) {
	oid, err := primitive.ObjectIDFromHex(dayID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if in.Date != nil {
		set["date"] = *in.Date
	}
	if len(set) > 0 {
		if err := s.itinerary.UpdateDayFields(ctx, oid, set); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrDayNotFound
			}
			return nil, err
		}
	}

	day, err := s.itinerary.FindDay(ctx, oid)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrDayNotFound
	}
	return day, err
}

func (s *ItineraryService) CreateBlock(ctx context.Context, in dto.CreateBlockDTO) (*models.ItineraryBlock, error) {
	dayID, err := primitive.ObjectIDFromHex(in.DayID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.itinerary.FindDay(ctx, dayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	blockType := models.BlockType(in.Type)
	if in.Type == "" {
		blockType = models.BlockTypeActivity
	}
	if !models.ValidBlockType(blockType) {
		return nil, ErrInvalidPayload
	}

	block := &models.ItineraryBlock{
		DayID:           dayID,
		Type:            blockType,
		Title:           in.Title,
		Description:     in.Description,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationMinutes: in.DurationMinutes,
		Location:        in.Location,
		CostEstimate:    in.CostEstimate,
		Currency:        in.Currency,
		URL:             in.URL,
		ImageURL:        in.ImageURL,
	}
	return s.itinerary.InsertBlock(ctx, block)
}

func (s *ItineraryService) UpdateBlock(ctx context.Context, blockID string, in dto.UpdateBlockDTO) error {
	oid, err := primitive.ObjectIDFromHex(blockID)
	if err != nil {
		return ErrInvalidID
	}

	set := bson.M{}
	if in.Type != nil {
		blockType := models.BlockType(*in.Type)
		if !models.ValidBlockType(blockType) {
			return ErrInvalidPayload
		}
		set["type"] = blockType
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.StartTime != nil {
		set["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		set["end_time"] = *in.EndTime
	}
	if in.DurationMinutes != nil {
		set["duration_minutes"] = *in.DurationMinutes
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.CostEstimate != nil {
		set["cost_estimate"] = *in.CostEstimate
	}
	if in.Currency != nil {
		set["currency"] = *in.Currency
	}
	if in.URL != nil {
		set["url"] = *in.URL
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if len(set) == 0 {
		return nil
	}
	if err := s.itinerary.UpdateBlockFields(ctx, oid, set); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDayNotFound
		}
		return err
	}
	return nil
}

func (s *ItineraryService) DeleteBlock(ctx context.Context, blockID string) error {
	oid, err := primitive.ObjectIDFromHex(blockID)
	if err != nil {
		return ErrInvalidID
	}
	return s.itinerary.DeleteBlock(ctx, oid)
}

func (s *ItineraryService) ReorderBlocks(ctx context.Context, in dto.ReorderBlocksDTO) error {
	moves := make([]repositories.BlockMove, 0, len(in.Blocks))
	for _, m := range in.Blocks {
		blockID, err := primitive.ObjectIDFromHex(m.ID)
		if err != nil {
			return ErrInvalidID
		}
		move := repositories.BlockMove{BlockID: blockID, PositionIndex: m.PositionIndex}
		if m.DayID != "" {
			dayID, err := primitive.ObjectIDFromHex(m.DayID)
			if err != nil {
				return ErrInvalidID
			}
			move.DayID = dayID
		}
		moves = append(moves, move)
	}
	return s.itinerary.ReorderBlocks(ctx, moves)
}

func (s *ItineraryService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.bus == nil {
		return
	}
	evt, err := eventbus.NewJSONEvent(string(eventType), payload)
	if err != nil {
		logger.Log.Errorf("build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicTripEvents, evt); err != nil {
		logger.Log.Warnf("publish %s event: %v", eventType, err)
	}
}
