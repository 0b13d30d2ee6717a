package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/geminichat/internal/config"
	apierrors "github.com/diogo/geminichat/internal/errors"
)

func newConfigCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config and log file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logPath, err := config.GetLogPath(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(deps.Stdout, "config: %s\nlog:    %s\n", cfgPath, logPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as JSON",
		Long: `Print the settings after the config file, environment overrides and
flags are applied. The API key itself is never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(deps, opts)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(deps, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

// settingsView is the printable form of config.Settings
type settingsView struct {
	Config    config.Config `json:"config"`
	APIKeyVar string        `json:"api_key_var"`
	APIKeySet bool          `json:"api_key_set"`
}

func runConfigShow(deps *Dependencies, opts *rootOptions) error {
	if err := config.LoadDotEnv(opts.envFiles...); err != nil {
		return err
	}

	view := settingsView{}
	settings, err := deps.LoadSettings(config.LoadOptions{Model: opts.model, Verbose: opts.verbose})
	if err != nil {
		if !isMissingKey(err) {
			return err
		}
		// A missing key still leaves the rest of the settings worth showing
		cfg, loadErr := config.LoadConfig()
		if loadErr != nil {
			return loadErr
		}
		view.Config = cfg
	} else {
		view.Config = settings.Config
		view.APIKeySet = true
	}
	view.APIKeyVar = config.APIKeyVar(view.Config.Provider)

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

// isMissingKey reports whether err is the missing-credential ConfigurationError
func isMissingKey(err error) bool {
	var cfgErr *apierrors.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return false
	}
	return cfgErr.Field == config.EnvAPIKey || cfgErr.Field == config.EnvArkAPIKey
}

func runConfigInit(deps *Dependencies, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
