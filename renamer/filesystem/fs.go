package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ZanzyTHEbar/uuid-renamer/renamer/config"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/common"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/fileops"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/naming"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/options"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/types"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/ports"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// FileSystem is the entry point of a rename run. It decides whether the
// target is a single file or a directory tree and dispatches accordingly.
type FileSystem struct {
	fs      afero.Fs
	renamer *fileops.Renamer
	walker  *Walker
	logger  zerolog.Logger
	metrics *common.RunMetrics

	pathUtils  *common.PathUtils
	errorUtils *common.ErrorUtils
}

// New creates a filesystem manager using UUID tokens
func New(fsys afero.Fs, terminal ports.Interactor, logger zerolog.Logger) *FileSystem {
	return NewWithGenerator(fsys, terminal, logger, naming.NewUUIDGenerator())
}

// NewWithGenerator creates a filesystem manager drawing tokens from generator
func NewWithGenerator(fsys afero.Fs, terminal ports.Interactor, logger zerolog.Logger, generator naming.TokenGenerator) *FileSystem {
	metrics := common.NewRunMetrics()
	renamer := fileops.NewRenamer(fsys, naming.NewComposer(generator), terminal, logger, metrics)

	return &FileSystem{
		fs:         fsys,
		renamer:    renamer,
		walker:     NewWalker(fsys, renamer, logger, metrics),
		logger:     logger,
		metrics:    metrics,
		pathUtils:  common.NewPathUtils(),
		errorUtils: common.NewErrorUtils(),
	}
}

// Process runs the rename described by cfg
func (dfs *FileSystem) Process(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	return dfs.ProcessPath(ctx, cfg.TargetPath, options.FromConfig(cfg))
}

// ProcessPath renames target if it is a regular file, otherwise walks it as a directory.
// A target that does not exist yields common.ErrInvalidPath and nothing is touched.
func (dfs *FileSystem) ProcessPath(ctx context.Context, target string, opts options.RenameOptions) error {
	if err := dfs.pathUtils.ValidatePath(target); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidPath, err)
	}

	info, err := dfs.fs.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dfs.errorUtils.InvalidPath(target)
		}
		return dfs.errorUtils.WrapIO(err, "stat", target)
	}

	dfs.logger.Debug().
		Str("target", target).
		Bool("recursive", opts.Recursive).
		Bool("hidden", opts.IncludeHidden).
		Bool("dryRun", opts.DryRun).
		Msg("Starting rename")

	if types.KindOf(info.Mode()) == types.EntryFile {
		err = dfs.renamer.RenameFile(ctx, target, opts)
	} else {
		err = dfs.walker.Walk(ctx, target, opts)
	}
	if err != nil {
		return err
	}

	dfs.logger.Info().Fields(dfs.metrics.GetMetrics()).Msg("Rename completed")
	return nil
}

// GetMetrics returns the counters of the current run
func (dfs *FileSystem) GetMetrics() map[string]interface{} {
	return dfs.metrics.GetMetrics()
}
