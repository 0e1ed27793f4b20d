package fileops

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/common"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/options"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/types"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/ports"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Renamer renames single files to composed token names
type Renamer struct {
	fs         afero.Fs
	composer   NameComposer
	terminal   ports.Interactor
	logger     zerolog.Logger
	metrics    *common.RunMetrics
	pathUtils  *common.PathUtils
	errorUtils *common.ErrorUtils
}

// NewRenamer creates a renamer working on fs. metrics may be nil.
func NewRenamer(fs afero.Fs, composer NameComposer, terminal ports.Interactor, logger zerolog.Logger, metrics *common.RunMetrics) *Renamer {
	if metrics == nil {
		metrics = common.NewRunMetrics()
	}
	return &Renamer{
		fs:         fs,
		composer:   composer,
		terminal:   terminal,
		logger:     logger,
		metrics:    metrics,
		pathUtils:  common.NewPathUtils(),
		errorUtils: common.NewErrorUtils(),
	}
}

// Plan computes the destination for path without touching the filesystem
func (r *Renamer) Plan(path string) (*types.RenameOperation, error) {
	if err := r.pathUtils.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	parent, err := r.pathUtils.ParentDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	newName, err := r.composer.Compose(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to compose new name for %s: %w", path, err)
	}

	return &types.RenameOperation{
		Source:      path,
		Destination: filepath.Join(parent, newName),
	}, nil
}

// RenameFile applies the hidden-file policy to path and renames it.
// Skipping a hidden file is not an error.
func (r *Renamer) RenameFile(ctx context.Context, path string, opts options.RenameOptions) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !opts.IncludeHidden && r.pathUtils.IsHidden(path) {
		r.terminal.Warning(fmt.Sprintf("Skipping hidden file: %q", path))
		r.metrics.SkippedHidden++
		return nil
	}

	op, err := r.Plan(path)
	if err != nil {
		return err
	}

	if opts.DryRun {
		r.terminal.Output(fmt.Sprintf("Would rename: %q -> %q", op.Source, op.Destination))
		r.logger.Debug().Str("src", op.Source).Str("dst", op.Destination).Msg("Dry run: would rename file")
		r.metrics.Renamed++
		return nil
	}

	r.terminal.Output(fmt.Sprintf("Renaming: %q -> %q", op.Source, op.Destination))

	if err := r.fs.Rename(op.Source, op.Destination); err != nil {
		return r.errorUtils.WrapIO(err, "rename", op.Source)
	}

	r.metrics.Renamed++
	return nil
}
