package feedback

import "time"

// Feedback is one free-text comment about a menu item, accepted verbatim.
// Rating, when present, is an integer in [1,5].
type Feedback struct {
	Item      string    `json:"item"`
	Text      string    `json:"feedback"`
	Rating    *int      `json:"rating,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
