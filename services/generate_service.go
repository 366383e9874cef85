package services

import (
	"context"
	"errors"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderboard/config"
	"wanderboard/dto"
	"wanderboard/eventbus"
	"wanderboard/events"
	"wanderboard/generator"
	"wanderboard/logger"
	"wanderboard/models"
	"wanderboard/prompt"
	"wanderboard/repositories"
	"wanderboard/trace"
)

const (
	defaultNumDays = 3

	// Strict mode reproduces the saved items faithfully, creative mode
	// gets room to improvise.
	strictTemperature   = 0.3
	creativeTemperature = 0.9
)

// GenerateService validates a generation request, builds the prompt and
// opens the model stream.
type GenerateService struct {
	trips    *repositories.TripRepository
	inspos   *repositories.InspoItemRepository
	logs     *repositories.GenerationLogRepository
	streamer generator.TextStreamer
	bus      eventbus.Bus
}

func NewGenerateService(
	trips *repositories.TripRepository,
	inspos *repositories.InspoItemRepository,
	logs *repositories.GenerationLogRepository,
	streamer generator.TextStreamer,
	bus eventbus.Bus,
) *GenerateService {
	return &GenerateService{trips: trips, inspos: inspos, logs: logs, streamer: streamer, bus: bus}
}

// Generation is a validated, ready-to-stream request.
type Generation struct {
	TripID  primitive.ObjectID
	Mode    models.GenerationMode
	NumDays int
	Prompt  string

	svc    *GenerateService
	stream iter.Seq2[string, error]
}

// Generate validates the request, snapshots it into the generation log
// and prepares the model stream. Streaming starts when the caller ranges
// over Stream().
func (s *GenerateService) Generate(ctx context.Context, in dto.GenerateRequestDTO) (*Generation, error) {
	tripID, err := primitive.ObjectIDFromHex(in.TripID)
	if err != nil {
		return nil, ErrInvalidID
	}

	trip, err := s.trips.FindByID(ctx, tripID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}

	var selected []primitive.ObjectID
	for _, raw := range in.SelectedInspoIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, ErrInvalidID
		}
		selected = append(selected, oid)
	}

	items, err := s.inspos.ListByTrip(ctx, tripID, selected)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoInspoItems
	}

	mode := models.ModeCreative
	switch in.Mode {
	case "", string(models.ModeCreative):
	case string(models.ModeStrict):
		mode = models.ModeStrict
	default:
		logger.WarnWithFields("unrecognized generation mode, using creative", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"mode":       in.Mode,
		})
	}

	numDays := in.NumDays
	if numDays <= 0 {
		numDays = defaultNumDays
	}

	tc := prompt.TripContext{
		StartDate:   firstNonEmpty(in.StartDate, trip.StartDate),
		EndDate:     firstNonEmpty(in.EndDate, trip.EndDate),
		StayAddress: firstNonEmpty(in.StayAddress, trip.StayAddress),
	}

	var userPrompt string
	var temperature float32
	if mode == models.ModeStrict {
		userPrompt = prompt.BuildStrictPrompt(items, trip.Destination, numDays, tc)
		temperature = strictTemperature
	} else {
		userPrompt = prompt.BuildCreativePrompt(items, trip.Destination, numDays, tc)
		temperature = creativeTemperature
	}

	model := config.GetConfig().Gemini.Model

	// Audit record first, streaming after. A failed write must not block
	// the generation itself.
	if _, err := s.logs.Insert(ctx, models.GenerationLog{
		TripID:         tripID,
		Mode:           mode,
		NumDays:        numDays,
		Model:          model,
		PromptSnapshot: userPrompt,
		InspoSnapshot:  items,
		CreatedAt:      time.Now(),
	}); err != nil {
		logger.WarnWithFields("generation log write failed", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"trip_id":    tripID.Hex(),
			"error":      err.Error(),
		})
	}

	g := &Generation{
		TripID:  tripID,
		Mode:    mode,
		NumDays: numDays,
		Prompt:  userPrompt,
		svc:     s,
		stream:  s.streamer.StreamText(ctx, prompt.SYSTEM_INSTRUCTION, userPrompt, generator.Options{Temperature: temperature}),
	}

	s.publish(ctx, events.GenerationRequested, events.GenerationRequestedEvent{
		TripID:    tripID,
		Mode:      string(mode),
		NumDays:   numDays,
		Model:     model,
		NumInspos: len(items),
	})
	return g, nil
}

// Stream yields the model's text fragments in order. Completion and
// failure events are published as a side effect of draining it.
func (g *Generation) Stream(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		total := 0
		for fragment, err := range g.stream {
			if err != nil {
				g.svc.publish(ctx, events.GenerationFailed, events.GenerationFailedEvent{
					TripID: g.TripID,
					Mode:   string(g.Mode),
					Reason: err.Error(),
				})
				yield("", err)
				return
			}
			total += len(fragment)
			if !yield(fragment, nil) {
				return
			}
		}
		g.svc.publish(ctx, events.GenerationCompleted, events.GenerationCompletedEvent{
			TripID:     g.TripID,
			Mode:       string(g.Mode),
			Model:      config.GetConfig().Gemini.Model,
			OutputSize: total,
		})
	}
}

// History lists past generation requests of a trip, newest first.
func (s *GenerateService) History(ctx context.Context, tripID string, limit int64) ([]dto.GenerationLogDTO, error) {
	oid, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return nil, ErrInvalidID
	}
	logs, err := s.logs.ListByTrip(ctx, oid, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GenerationLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.NewGenerationLogDTO(l))
	}
	return out, nil
}

func (s *GenerateService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.bus == nil {
		return
	}
	evt, err := eventbus.NewJSONEvent(string(eventType), payload)
	if err != nil {
		logger.Log.Errorf("build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicGenerationEvents, evt); err != nil {
		logger.Log.Warnf("publish %s event: %v", eventType, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
