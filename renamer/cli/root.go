// Package cli provides the command-line interface for uuid-renamer.
package cli

import (
	"context"

	internal "github.com/ZanzyTHEbar/uuid-renamer/renamer"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/config"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem"
	"github.com/ZanzyTHEbar/uuid-renamer/renamer/version"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. fsys is the filesystem renames run on.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   internal.DefaultAppName + " <path>",
		Short: "Rename files to random UUIDs",
		Long: internal.DefaultAppName + ` ` + version.String() + `
` + internal.DefaultAppDescription + `

Each file is renamed to 32 uppercase hex characters followed by its original
extension, e.g. "photo.jpg" becomes "3F2A9C1E...B7.jpg". Files without an
extension keep a trailing dot. Hidden files are skipped unless --hidden is set,
and platform sidecar files like .DS_Store are never renamed.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Version:      version.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}

			level := zerolog.WarnLevel
			if cfg.Verbose {
				level = zerolog.DebugLevel
			}
			logger := internal.NewLogger(cmd.ErrOrStderr(), level)

			dfs := filesystem.New(fsys, NewConsole(cmd.OutOrStdout()), logger)
			return dfs.Process(cmd.Context(), cfg)
		},
	}

	// -h is taken by --hidden, so help is long-form only
	rootCmd.Flags().Bool("help", false, "help for "+internal.DefaultAppName)
	config.RegisterFlags(rootCmd.Flags())

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return rootCmd
}

// Execute runs the root command on the host filesystem with os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
}
