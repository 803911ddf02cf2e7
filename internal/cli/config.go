package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/opencode-labs/opencode-wrapper/internal/config"
)

var (
	configInitForce bool
)

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite any existing user config")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wrapper configuration",
	Long: `Inspect and manage the layered wrapper configuration.

Settings come from the user config file, the project .opencode.yaml, and
OPENENCODE_* environment variables, with later sources overriding earlier ones.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration and source provenance",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := config.Load("")
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default user configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.ResolvePaths("")
		if err != nil {
			return err
		}
		existed := false
		if _, statErr := os.Stat(paths.UserConfigFile); statErr == nil {
			existed = true
		}

		path, err := config.WriteDefault(configInitForce)
		if err != nil {
			return err
		}
		if existed && !configInitForce {
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s (use --force to overwrite)\n", path)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Wrote configuration to "+path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the resolved configuration paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.ResolvePaths("")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "User config dir: %s\n", paths.UserConfigDir)
		fmt.Fprintf(cmd.OutOrStdout(), "User config:     %s\n", paths.UserConfigFile)
		fmt.Fprintf(cmd.OutOrStdout(), "Project config:  %s\n", paths.ProjectConfigFile)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a value from the user config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the user config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate config files against the schema",
	Long: `Validate a config file against the wrapper's configuration schema.

Without an argument, validates whichever of the user and project config files
exist on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var targets []string
		if len(args) == 1 {
			targets = args
		} else {
			paths, err := config.ResolvePaths("")
			if err != nil {
				return err
			}
			for _, p := range []string{paths.UserConfigFile, paths.ProjectConfigFile} {
				if _, err := os.Stat(p); err == nil {
					targets = append(targets, p)
				}
			}
			if len(targets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No config files found.")
				return nil
			}
		}

		failed := false
		for _, path := range targets {
			result, err := config.LintFile(path)
			if err != nil {
				return err
			}
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
				continue
			}
			failed = true
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n", path, issue.Path, issue.Message)
			}
		}
		if failed {
			return fmt.Errorf("config validation failed")
		}
		return nil
	},
}
