package entity

import "time"

// Contact is an inquiry submitted through the contact form.
// Immutable once stored.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContact carries the validated fields of a contact submission.
// ID and CreatedAt are assigned by the store.
type NewContact struct {
	Name    string
	Email   string
	Company string
	Subject string
	Message string
}
