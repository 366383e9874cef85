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

// TripService encapsulates business logic for trips and DTO mapping
type TripService struct {
	trips     *repositories.TripRepository
	inspos    *repositories.InspoItemRepository
	itinerary *repositories.ItineraryRepository
	bus       eventbus.Bus
}

func NewTripService(
	trips *repositories.TripRepository,
	inspos *repositories.InspoItemRepository,
	itinerary *repositories.ItineraryRepository,
	bus eventbus.Bus,
) *TripService {
	return &TripService{trips: trips, inspos: inspos, itinerary: itinerary, bus: bus}
}

func (s *TripService) Create(ctx context.Context, in dto.CreateTripDTO) (dto.TripDTO, error) {
	trip := &models.Trip{
		Title:       in.Title,
		Description: in.Description,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		StayAddress: in.StayAddress,
	}
	created, err := s.trips.Insert(ctx, trip)
	if err != nil {
		return dto.TripDTO{}, err
	}

	s.publish(ctx, events.TripCreated, events.TripCreatedEvent{
		TripID:      created.ID,
		Destination: created.Destination,
	})
	return dto.NewTripDTO(*created), nil
}

func (s *TripService) Get(ctx context.Context, id string) (dto.TripDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.TripDTO{}, ErrInvalidID
	}
	trip, err := s.trips.FindByID(ctx, oid)
	if errors.Is(err, repositories.ErrNotFound) {
		return dto.TripDTO{}, ErrTripNotFound
	}
	if err != nil {
		return dto.TripDTO{}, err
	}
	return dto.NewTripDTO(*trip), nil
}

func (s *TripService) List(ctx context.Context) ([]dto.TripDTO, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, dto.NewTripDTO(t))
	}
	return out, nil
}

func (s *TripService) Update(ctx context.Context, id string, in dto.UpdateTripDTO) (dto.TripDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.TripDTO{}, ErrInvalidID
	}

	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Destination != nil {
		set["destination"] = *in.Destination
	}
	if in.CoverImageURL != nil {
		set["cover_image_url"] = *in.CoverImageURL
	}
	if in.StartDate != nil {
		set["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		set["end_date"] = *in.EndDate
	}
	if in.StayAddress != nil {
		set["stay_address"] = *in.StayAddress
	}
	if in.Status != nil {
		status := models.TripStatus(*in.Status)
		if !models.ValidTripStatus(status) {
			return dto.TripDTO{}, ErrInvalidPayload
		}
		set["status"] = status
	}
	if len(set) > 0 {
		if err := s.trips.UpdateFields(ctx, oid, set); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return dto.TripDTO{}, ErrTripNotFound
			}
			return dto.TripDTO{}, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the trip together with its inspo items and itinerary.
func (s *TripService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.trips.FindByID(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	if err := s.itinerary.DeleteForTrip(ctx, oid); err != nil {
		return err
	}
	if err := s.inspos.DeleteByTrip(ctx, oid); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, oid); err != nil {
		return err
	}

	s.publish(ctx, events.TripDeleted, events.TripDeletedEvent{TripID: oid})
	return nil
}

func (s *TripService) publish(ctx context.Context, eventType events.EventType, payload any) {
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
