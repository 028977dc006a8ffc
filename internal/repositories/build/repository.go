// Package build loads build documents for the planner
package build

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/KirkDiggler/engraving-planner/internal/repositories/build Repository

import (
	"context"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
)

// Repository defines the interface for reading build documents
type Repository interface {
	// Get loads one build document and decodes it
	// Returns errors.InvalidArgument for an empty reference
	// Returns errors.NotFound if no document exists for the reference
	// Returns errors.MalformedInput if the document is not a valid build
	// Returns errors.Unavailable or errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput defines the input for loading a build
type GetInput struct {
	// Ref is a file path for file repositories and a key for Redis
	Ref string
}

// GetOutput defines the output for loading a build
type GetOutput struct {
	Build *lostark.Build
	// Source describes where the build came from, e.g. "file:builds/bard.yaml"
	Source string
}
