package dto

import "github.com/google/uuid"

// SoftDeleteResponse reports the toggle outcome. WasAvailable lets the
// boundary phrase the message: true means the record was just blocked,
// false means it was just restored.
type SoftDeleteResponse struct {
	ID           uuid.UUID `json:"id"`
	WasAvailable bool      `json:"was_available"`
	Available    bool      `json:"available"`
}
