package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/deckdiff/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the deckdiff configuration",
	Long: `Commands for managing the deckdiff configuration file.

The file lives at $XDG_CONFIG_HOME/deckdiff/config.toml and sets the tokens
used to read deck lists, the color mode and the log level.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, created, err := config.InitConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		configPath := config.GetConfigFilePath()
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", configPath)
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config value",
	Long: `Set updates one key in the config file, creating the file if needed.

Keys: ` + strings.Join(config.Keys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := cfg.Set(key, value); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %q\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
