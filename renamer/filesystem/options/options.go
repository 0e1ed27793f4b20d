package options

import (
	internal "github.com/ZanzyTHEbar/uuid-renamer/renamer"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/config"
)

// RenameOptions configures a rename run. It is passed by value down the walk.
type RenameOptions struct {
	Recursive     bool     // Descend into subdirectories
	IncludeHidden bool     // Rename dotfiles instead of skipping them
	DryRun        bool     // Preview operations without executing
	Exclude       []string // Gitignore-style name patterns that are never renamed during a walk
}

// DefaultRenameOptions returns the defaults used when no flags are given
func DefaultRenameOptions() RenameOptions {
	return RenameOptions{
		Recursive:     false,
		IncludeHidden: false,
		DryRun:        false,
		Exclude:       append([]string(nil), internal.DefaultSidecarPatterns...),
	}
}

// FromConfig converts a resolved configuration into rename options
func FromConfig(cfg *config.Config) RenameOptions {
	opts := DefaultRenameOptions()
	if cfg == nil {
		return opts
	}

	opts.Recursive = cfg.Recursive
	opts.IncludeHidden = cfg.IncludeHidden
	opts.DryRun = cfg.DryRun
	if cfg.Exclude != nil {
		opts.Exclude = append([]string(nil), cfg.Exclude...)
	}
	return opts
}
