package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/config"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand(a *app.App) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Generate(a.Config())
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, MsgErrWrite)
				}
				return nil
			}

			path := paths.ConfigFilePath()
			if err := WriteFile(path, content, force); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Config written")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

// WriteFile writes content to path, refusing to replace an existing
// file unless force is set
func WriteFile(path string, content []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, MsgErrExists, path).WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, MsgErrMkdir, filepath.Dir(path))
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, MsgErrWriteFile, path)
	}
	return nil
}
