package models

// EngagementEvent is published to Kafka after a successful play counter
// increment, one message per listen or watch.
type EngagementEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the play happened.
	Kind      string `json:"kind"`      // Kind is "track" or "video".
	MediaID   string `json:"media_id"`  // MediaID is the identifier of the played item.
	Title     string `json:"title"`     // Title is the item's title at play time.
	ViewerID  string `json:"viewer_id"` // ViewerID is the viewer's user id, empty for anonymous plays.
}
