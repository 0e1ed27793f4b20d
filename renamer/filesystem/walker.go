package filesystem

import (
	"context"
	"path/filepath"

	internal "github.com/ZanzyTHEbar/uuid-renamer/renamer"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/common"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/fileops"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/options"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/types"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Walker performs a sequential descent over a directory tree and hands every
// regular file to the renamer. The first error aborts the whole walk.
type Walker struct {
	fs         afero.Fs
	renamer    fileops.FileRenamer
	logger     zerolog.Logger
	metrics    *common.RunMetrics
	errorUtils *common.ErrorUtils
}

// NewWalker creates a new walker. metrics may be nil.
func NewWalker(fs afero.Fs, renamer fileops.FileRenamer, logger zerolog.Logger, metrics *common.RunMetrics) *Walker {
	if metrics == nil {
		metrics = common.NewRunMetrics()
	}
	return &Walker{
		fs:         fs,
		renamer:    renamer,
		logger:     logger,
		metrics:    metrics,
		errorUtils: common.NewErrorUtils(),
	}
}

// Walk processes the immediate entries of dir, recursing into
// subdirectories only when opts.Recursive is set.
func (w *Walker) Walk(ctx context.Context, dir string, opts options.RenameOptions) error {
	excluded := NewExcludeList(internal.DefaultSidecarPatterns, opts.Exclude)
	w.logger.Debug().Strs("exclude", excluded.Patterns()).Msg("Compiled exclude list")

	return w.walk(ctx, dir, opts, excluded)
}

func (w *Walker) walk(ctx context.Context, dir string, opts options.RenameOptions, excluded IgnoreChecker) error {
	w.logger.Debug().Str("dir", dir).Msg("Entering directory")
	w.metrics.Directories++

	// afero.ReadDir returns lstat info, symlinks are reported as such
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return w.errorUtils.WrapIO(err, "readdir", dir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())

		switch types.KindOf(entry.Mode()) {
		case types.EntryDirectory:
			if !opts.Recursive {
				continue
			}
			if err := w.walk(ctx, path, opts, excluded); err != nil {
				return err
			}

		case types.EntryFile:
			if excluded.MatchesPath(path) {
				w.logger.Debug().Str("path", path).Msg("Excluded sidecar file")
				w.metrics.Excluded++
				continue
			}
			if err := w.renamer.RenameFile(ctx, path, opts); err != nil {
				return err
			}

		default:
			w.logger.Debug().Str("path", path).Str("mode", entry.Mode().String()).Msg("Ignoring entry that is neither file nor directory")
			w.metrics.Ignored++
		}
	}

	return nil
}
