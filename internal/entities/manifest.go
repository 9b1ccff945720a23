package entities

import "time"

// Manifest describes the catalogue revision currently held by a store
type Manifest struct {
	Revision    string    `json:"revision"`
	PublishedAt time.Time `json:"published_at"`
	Spells      int       `json:"spells"`
}
