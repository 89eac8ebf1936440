// Package creature provides the interface for creature persistence
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/KirkDiggler/dnd5e-rules/internal/repositories/creature Repository

import (
	"context"

	"github.com/KirkDiggler/dnd5e-rules/internal/entities"
)

// Repository defines the interface for creature persistence
type Repository interface {
	// Create stores a new creature, assigning an ID and timestamps
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a creature with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a creature by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the creature doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing creature, refreshing UpdatedAt
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the creature doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a creature by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the creature doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all creatures for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a creature
type CreateInput struct {
	Creature *entities.Creature
}

// CreateOutput defines the output for creating a creature
type CreateOutput struct {
	Creature *entities.Creature
}

// GetInput defines the input for getting a creature
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *entities.Creature
}

// UpdateInput defines the input for updating a creature
type UpdateInput struct {
	Creature *entities.Creature
}

// UpdateOutput defines the output for updating a creature
type UpdateOutput struct {
	Creature *entities.Creature
}

// DeleteInput defines the input for deleting a creature
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a creature
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListByOwnerInput defines the input for listing creatures by owner
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing creatures by owner
type ListByOwnerOutput struct {
	Creatures []*entities.Creature
}
