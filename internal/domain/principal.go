package domain

import "github.com/google/uuid"

// GuestLinkLimit caps how many links a guest principal may save. Enforced at
// the HTTP layer before the pipeline runs, not inside it.
const GuestLinkLimit = 10

// Principal identifies the caller on whose behalf a request runs. The
// pipeline treats it as opaque; only the guest flag changes behavior, and
// only at the API boundary.
type Principal struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email,omitempty"`
	IsGuest bool      `json:"isGuest"`
}
