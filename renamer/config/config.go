package config

import (
	"fmt"

	internal "github.com/ZanzyTHEbar/uuid-renamer/renamer"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names, shared by the CLI and the viper keys they bind to.
const (
	KeyRecursive     = "recursive"
	KeyIncludeHidden = "hidden"
	KeyDryRun        = "dry-run"
	KeyVerbose       = "verbose"
	KeyExclude       = "exclude"
	KeyTargetPath    = "path"
)

// Config stores the resolved invocation of the application.
// The values are read by viper from the command-line flags only.
type Config struct {
	TargetPath    string   `mapstructure:"path"`
	Recursive     bool     `mapstructure:"recursive"`
	IncludeHidden bool     `mapstructure:"hidden"`
	DryRun        bool     `mapstructure:"dry-run"`
	Verbose       bool     `mapstructure:"verbose"`
	Exclude       []string `mapstructure:"exclude"`
}

// RegisterFlags declares the flags Resolve understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP(KeyRecursive, "r", false, "Recurse into subdirectories")
	fs.BoolP(KeyIncludeHidden, "h", false, "Include hidden files (dotfiles) when renaming")
	fs.BoolP(KeyDryRun, "n", false, "Print the renames without performing them")
	fs.Bool(KeyVerbose, false, "Verbose output (shows debug messages)")
	fs.StringArray(KeyExclude, nil, "Additional gitignore-style pattern of file names to never rename (repeatable)")
}

// Resolve builds a Config from the parsed flag set and positional arguments.
// The built-in sidecar patterns always precede user supplied exclusions.
func Resolve(fs *pflag.FlagSet, args []string) (*Config, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one target path, got %d", len(args))
	}
	if args[0] == "" {
		return nil, fmt.Errorf("target path cannot be empty")
	}

	v := viper.New()
	v.SetDefault(KeyRecursive, false)
	v.SetDefault(KeyIncludeHidden, false)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyVerbose, false)

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.Set(KeyTargetPath, args[0])

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	// viper splits array flags as CSV, read the raw values back
	if fs.Lookup(KeyExclude) != nil {
		extra, err := fs.GetStringArray(KeyExclude)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", KeyExclude, err)
		}
		cfg.Exclude = extra
	}

	exclude := make([]string, 0, len(internal.DefaultSidecarPatterns)+len(cfg.Exclude))
	exclude = append(exclude, internal.DefaultSidecarPatterns...)
	exclude = append(exclude, cfg.Exclude...)
	cfg.Exclude = exclude

	return &cfg, nil
}
