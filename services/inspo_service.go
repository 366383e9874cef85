package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderboard/dto"
	"wanderboard/models"
	"wanderboard/preview"
	"wanderboard/repositories"
)

// InspoService encapsulates business logic for inspiration items.
type InspoService struct {
	inspos *repositories.InspoItemRepository
	trips  *repositories.TripRepository
}

func NewInspoService(inspos *repositories.InspoItemRepository, trips *repositories.TripRepository) *InspoService {
	return &InspoService{inspos: inspos, trips: trips}
}

func (s *InspoService) Create(ctx context.Context, in dto.CreateInspoDTO) (dto.InspoItemDTO, error) {
	tripID, err := primitive.ObjectIDFromHex(in.TripID)
	if err != nil {
		return dto.InspoItemDTO{}, ErrInvalidID
	}
	if _, err := s.trips.FindByID(ctx, tripID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.InspoItemDTO{}, ErrTripNotFound
		}
		return dto.InspoItemDTO{}, err
	}

	inspoType := models.InspoType(in.Type)
	if inspoType == "" {
		if in.URL != "" {
			inspoType = preview.DetectType(in.URL, "")
		} else {
			inspoType = models.InspoTypeNote
		}
	}
	if !models.ValidInspoType(inspoType) {
		return dto.InspoItemDTO{}, ErrInvalidPayload
	}

	item := &models.InspoItem{
		TripID:      tripID,
		Type:        inspoType,
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SiteName:    in.SiteName,
		FaviconURL:  in.FaviconURL,
		UserNote:    in.UserNote,
		Tags:        in.Tags,
	}
	created, err := s.inspos.Insert(ctx, item)
	if err != nil {
		return dto.InspoItemDTO{}, err
	}
	return dto.NewInspoItemDTO(*created), nil
}

func (s *InspoService) ListByTrip(ctx context.Context, tripID string) ([]dto.InspoItemDTO, error) {
	oid, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return nil, ErrInvalidID
	}
	items, err := s.inspos.ListByTrip(ctx, oid, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InspoItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewInspoItemDTO(it))
	}
	return out, nil
}

func (s *InspoService) Update(ctx context.Context, id string, in dto.UpdateInspoDTO) (dto.InspoItemDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.InspoItemDTO{}, ErrInvalidID
	}

	set := bson.M{}
	if in.Type != nil {
		inspoType := models.InspoType(*in.Type)
		if !models.ValidInspoType(inspoType) {
			return dto.InspoItemDTO{}, ErrInvalidPayload
		}
		set["type"] = inspoType
	}
	if in.URL != nil {
		set["url"] = *in.URL
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.UserNote != nil {
		set["user_note"] = *in.UserNote
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if len(set) > 0 {
		if err := s.inspos.UpdateFields(ctx, oid, set); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return dto.InspoItemDTO{}, ErrInspoNotFound
			}
			return dto.InspoItemDTO{}, err
		}
	}

	item, err := s.inspos.FindByID(ctx, oid)
	if errors.Is(err, repositories.ErrNotFound) {
		return dto.InspoItemDTO{}, ErrInspoNotFound
	}
	if err != nil {
		return dto.InspoItemDTO{}, err
	}
	return dto.NewInspoItemDTO(*item), nil
}

func (s *InspoService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.inspos.Delete(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInspoNotFound
		}
		return err
	}
	return nil
}

func (s *InspoService) Reorder(ctx context.Context, in dto.ReorderInspoDTO) error {
	positions := make(map[primitive.ObjectID]int, len(in.Items))
	for _, entry := range in.Items {
		oid, err := primitive.ObjectIDFromHex(entry.ID)
		if err != nil {
			return ErrInvalidID
		}
		positions[oid] = entry.PositionIndex
	}
	return s.inspos.Reorder(ctx, positions)
}
