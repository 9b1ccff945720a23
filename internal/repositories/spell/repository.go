// Package spell provides the interface for catalogue spell persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/KirkDiggler/spellmerge/internal/repositories/spell Repository

import (
	"context"

	"github.com/KirkDiggler/spellmerge/internal/entities"
)

// Repository defines the interface for catalogue spell persistence
type Repository interface {
	// Get retrieves a spell by canonical key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if no spell is stored under the key
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stored spell ordered by key
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Replace swaps the stored catalogue for spells and records manifest as
	// the published revision in one transaction. Either everything is written
	// or the previous catalogue is left as it was.
	// Returns errors.InvalidArgument for a nil manifest, an empty revision, a
	// nil spell or an empty key
	// Returns errors.Unavailable if the index changed while the transaction
	// was being prepared
	// Returns errors.Internal for storage failures
	Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error)

	// GetManifest returns the revision that was last published
	// Returns errors.NotFound if nothing has been published
	// Returns errors.Internal for storage failures
	GetManifest(ctx context.Context, input GetManifestInput) (*GetManifestOutput, error)
}

// GetInput defines the input for getting a spell
type GetInput struct {
	Key string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *entities.Spell
}

// ListInput defines the input for listing spells
type ListInput struct{}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*entities.Spell
}

// ReplaceInput defines the input for publishing a catalogue
type ReplaceInput struct {
	Spells   []*entities.Spell
	Manifest *entities.Manifest
}

// ReplaceOutput defines the output for publishing a catalogue
type ReplaceOutput struct {
	// Deleted is the number of spells the previous catalogue held
	Deleted int
}

// GetManifestInput defines the input for reading the published revision
type GetManifestInput struct{}

// GetManifestOutput defines the output for reading the published revision
type GetManifestOutput struct {
	Manifest *entities.Manifest
}
