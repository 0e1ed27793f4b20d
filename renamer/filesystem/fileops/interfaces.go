package fileops

import (
	"context"

	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/options"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/types"
)

// FileRenamer defines the interface for renaming a single file
type FileRenamer interface {
	Plan(path string) (*types.RenameOperation, error)
	RenameFile(ctx context.Context, path string, opts options.RenameOptions) error
}

// NameComposer produces the new base name for a file
type NameComposer interface {
	Compose(originalName string) (string, error)
}
