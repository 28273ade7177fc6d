package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/deckdiff/internal/card"
	"github.com/arcanaland/deckdiff/internal/deck"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	FaceSeparator   string `toml:"face_separator"`
	FaceSplit       string `toml:"face_split"`
	CommentPrefix   string `toml:"comment_prefix"`
	SideboardMarker string `toml:"sideboard_marker"`
	Color           string `toml:"color"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		FaceSeparator:   card.DefaultSeparator,
		FaceSplit:       card.DefaultSplit,
		CommentPrefix:   deck.DefaultCommentPrefix,
		SideboardMarker: deck.DefaultSideboardMarker,
		Color:           ColorAuto,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckdiff", "config.toml")
}

// LoadConfig loads the config file, falling back to defaults when it is missing
func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigFilePath())
}

// LoadFile loads a config file from an explicit path
func LoadFile(configPath string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// fillDefaults replaces empty values so a partial file still works
func (c *Config) fillDefaults() {
	d := Default()
	if c.FaceSeparator == "" {
		c.FaceSeparator = d.FaceSeparator
	}
	if c.FaceSplit == "" {
		c.FaceSplit = d.FaceSplit
	}
	if c.CommentPrefix == "" {
		c.CommentPrefix = d.CommentPrefix
	}
	if c.SideboardMarker == "" {
		c.SideboardMarker = d.SideboardMarker
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// Validate checks values that have a fixed set of choices
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.LogFormat)
	}

	if !strings.Contains(c.FaceSplit, c.FaceSeparator) {
		return fmt.Errorf("face_split %q must contain face_separator %q", c.FaceSplit, c.FaceSeparator)
	}

	return nil
}

// DeckOptions returns parser options for the configured tokens
func (c *Config) DeckOptions(includeSideboard bool) deck.Options {
	return deck.Options{
		IncludeSideboard: includeSideboard,
		Separator:        c.FaceSeparator,
		CommentPrefix:    c.CommentPrefix,
		SideboardMarker:  c.SideboardMarker,
	}
}

// keys maps config file keys to their fields
func (c *Config) keys() map[string]*string {
	return map[string]*string{
		"face_separator":   &c.FaceSeparator,
		"face_split":       &c.FaceSplit,
		"comment_prefix":   &c.CommentPrefix,
		"sideboard_marker": &c.SideboardMarker,
		"color":            &c.Color,
		"log_level":        &c.LogLevel,
		"log_format":       &c.LogFormat,
	}
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	var names []string
	for k := range Default().keys() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Set updates one key, validating the result
func (c *Config) Set(key, value string) error {
	field, ok := c.keys()[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (expected one of %s)", key, strings.Join(Keys(), ", "))
	}

	previous := *field
	*field = value
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		*field = previous
		return err
	}
	return nil
}

// Save writes the config to the config file, creating its directory
func Save(config *Config) error {
	return SaveFile(GetConfigFilePath(), config)
}

// SaveFile writes the config to an explicit path
func SaveFile(configPath string, config *Config) error {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// InitConfig writes the default config unless a file already exists
func InitConfig() (*Config, bool, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadFile(configPath)
		return config, false, err
	}

	config := Default()
	if err := SaveFile(configPath, config); err != nil {
		return nil, false, err
	}
	return config, true, nil
}
