package model

import "github.com/google/uuid"

// NewID returns a fresh globally unique identifier. Compositions, nodes,
// connections and groups all draw from the same space.
func NewID() string {
	return uuid.NewString()
}
