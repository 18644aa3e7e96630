// Package domain contains the core data types for the travel catalog.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, web).
package domain

import "time"

// Destination is the single persisted entity: a user-curated travel location
// with visited/wishlist status. A destination with Visited=false is considered
// part of the wishlist.
type Destination struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Visited     bool      `json:"visited"`
	Rating      *int      `json:"rating"` // nil when never rated; rendered as repeated star glyphs
	Notes       *string   `json:"notes"`
	Budget      *string   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DestinationUpdate carries the full replacement field set for an update.
// Visited is a pointer so the wire contract can distinguish "set to value"
// from "leave the stored value unchanged" — omitting it keeps the current
// flag rather than silently clearing it.
type DestinationUpdate struct {
	Name        string
	Country     string
	City        string
	Description string
	Visited     *bool
	Rating      *int
	Notes       *string
	Budget      *string
}
