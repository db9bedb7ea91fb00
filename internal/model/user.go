package model

import "time"

// User is identified by a stable external email; created lazily on
// first authentication.
type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}
