package eventbus

const (
	// TopicGenerationEvents carries itinerary generation lifecycle events.
	TopicGenerationEvents = "wanderboard.generation.events"
	// TopicTripEvents carries trip and itinerary mutation events.
	TopicTripEvents = "wanderboard.trip.events"
)
