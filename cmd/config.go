package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	tomlrepo "github.com/bnema/honeybible-cli/internal/adapters/repo/toml"
	"github.com/bnema/honeybible-cli/internal/domain"
)

var errSettingsExist = errors.New("settings file already exists")

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	cmd.AddCommand(
		newConfigInitCmd(app),
		newConfigShowCmd(app),
		newConfigPathCmd(app),
	)

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exists, err := app.settingsRepo.Exists()
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", errSettingsExist, app.settingsRepo.Path())
			}

			if err := app.settingsRepo.Save(cmd.Context(), domain.DefaultSettings()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", app.settingsRepo.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings(cmd.Context())
			if err != nil {
				return err
			}

			data, err := tomlrepo.MarshalSettings(settings)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.settingsRepo.Path())
			return err
		},
	}
}
