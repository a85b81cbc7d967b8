package models

// Favorite event actions published to Kafka.
const (
	FavoriteAdded   = "favorite_added"
	FavoriteRemoved = "favorite_removed"
)

// FavoriteEvent is the activity record published when a user adds or
// removes a favorite book.
type FavoriteEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix seconds
	UserID    string `json:"user_id"`   // Acting user
	BookID    string `json:"book_id"`   // External catalog identifier
	Title     string `json:"title"`     // Book title at the time of the action
	Action    string `json:"action"`    // favorite_added or favorite_removed
}
