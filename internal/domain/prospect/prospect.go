package prospect

import "time"

// Prospect is a persisted contact record, unique per (owner, email).
type Prospect struct {
	ID        int64
	UserID    int64
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is the owning identity for uploads and prospects.
type User struct {
	ID    int64
	Email string
}
