package domain

import "time"

// DefaultActivityLogLimit is how many activity entries are retained.
const DefaultActivityLogLimit = 100

// ActivityLogEntry is one line of the user action trail.
type ActivityLogEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Description string    `json:"activity"`
}
