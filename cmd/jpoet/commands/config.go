package commands

import (
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/errors"
)

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jpoet configuration",
		Long: `Display and manage jpoet configuration.

Configuration sources (later overrides earlier):
1. Built-in defaults
2. /etc/jpoet/jpoet.toml
3. ~/.jpoet/jpoet.toml
4. jpoet.toml in the working directory or a parent
5. JPOET_* environment variables

Examples:
  jpoet config init                 # Write jpoet.toml with defaults
  jpoet config show --format yaml   # Show the merged configuration
  jpoet config get emit.indent      # Show one value
  jpoet config validate`,
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(g))
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigValidateCmd(g))
	cmd.AddCommand(newConfigPathCmd(g))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default jpoet.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file (kept as a backup)")
	return cmd
}

func newConfigShowCmd(g *globals) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the merged configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "toml":
				data, err = config.Marshal(cfg)
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return errors.WithHint(
					errors.NewInvalidConfigError("unsupported format: %s", format),
					"use toml, json or yaml")
			}
			if err != nil {
				return errors.Wrapf(err, "failed to marshal config to %s", format)
			}
			pterm.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one configuration value",
		Long:  "Show one configuration value using dot notation (e.g., emit.column_limit, generate.java_package)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.GetViper()
			if !v.IsSet(args[0]) {
				return errors.NewNotFoundError("configuration key %q", args[0])
			}
			pterm.Println(v.Get(args[0]))
			return nil
		},
	}
}

func newConfigValidateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := g.loadConfig(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			pterm.Success.Println("Configuration is valid")
			return nil
		},
	}
}

func newConfigPathCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show which project config file is in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.watchedConfigPath()
			if path == "" {
				pterm.Warning.Println("No jpoet.toml found; using defaults and environment")
				return nil
			}
			pterm.Println(path)
			return nil
		},
	}
}
