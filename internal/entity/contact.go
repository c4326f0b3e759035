package entity

import "time"

// Contact represents one inbound inquiry persisted from the contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContact carries the normalized fields of a contact that has not been stored yet.
// A nil Company is stored as NULL.
type NewContact struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Message string  `json:"message"`
}

// ContactDetail is a contact augmented with derived diagnostics fields.
type ContactDetail struct {
	Contact
	MessageLength int `json:"message_length"`
}
