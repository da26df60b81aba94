package entity

import "time"

// Newsletter is a single newsletter subscription, one per email.
type Newsletter struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
