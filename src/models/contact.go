package models

import "time"

// Contact is a submission from the public contact form. Contacts are
// created by the public site and are read-only in the admin panel.
type Contact struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
