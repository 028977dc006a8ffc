package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

const errRefEmpty = "build reference cannot be empty"

type fileRepository struct {
	root string
}

// FileConfig contains configuration for the file build repository.
type FileConfig struct {
	// Root resolves relative paths; empty means the working directory
	Root string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// NewFile creates a repository reading build documents from disk
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		root: cfg.Root,
	}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Ref == "" {
		return nil, errors.InvalidArgument(errRefEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "build load canceled")
	}

	path := input.Ref
	if r.root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}

	slog.DebugContext(ctx, "reading build file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("build file %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read build file %s", path)
	}

	b, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid build file %s", path)
	}

	return &GetOutput{
		Build:  b,
		Source: "file:" + path,
	}, nil
}
