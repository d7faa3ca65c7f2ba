package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "Radio CLI"
	AppTagline     = "Terminal radio station browser"
	AppDescription = "Browse, search and play internet radio stations from the terminal"
	AppProjectURL  = "https://github.com/glebovdev/radio-cli"

	ConfigDir       = ".config/radio-cli"
	ConfigFileName  = "config.yml"
	DefaultStations = "radios.json"
	DefaultPlayer   = "mpv"

	MinWidth  = 60
	MinHeight = 20
)

// AppVersion can be overridden at build time using ldflags:
// go build -ldflags "-X github.com/glebovdev/radio-cli/internal/config.AppVersion=1.0.0"
var AppVersion = "dev"

type Theme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Borders    string `yaml:"borders"`
	Highlight  string `yaml:"highlight"`
	Accent     string `yaml:"accent"`
	Title      string `yaml:"title"`
	Station    string `yaml:"station"`
	Error      string `yaml:"error"`
}

type Config struct {
	// Stations is a file path or an http(s) URL of the station list.
	Stations string `yaml:"stations"`
	Player   string `yaml:"player"`
	// Socket is the player control socket; empty picks a per-process path.
	Socket string `yaml:"socket"`
	Theme  Theme  `yaml:"theme"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(home, ConfigDir, ConfigFileName)
	return configPath, nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()

	return cfg, nil
}

// normalize fills blank required fields with their defaults.
func (c *Config) normalize() {
	c.Stations = strings.TrimSpace(c.Stations)
	if c.Stations == "" {
		c.Stations = DefaultStations
	}
	c.Player = strings.TrimSpace(c.Player)
	if c.Player == "" {
		c.Player = DefaultPlayer
	}
	c.Socket = strings.TrimSpace(c.Socket)
}

// Save writes the configuration to disk atomically using temp file + rename.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	tmpPath = ""
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Stations: DefaultStations,
		Player:   DefaultPlayer,
		Socket:   "",
		Theme: Theme{
			Background: "#1a1b25",
			Foreground: "#a3aacb",
			Borders:    "#40445b",
			Highlight:  "#ff9d65",
			Accent:     "#3a3d4f",
			Title:      "#c8d0e8",
			Station:    "#9ece6a",
			Error:      "#fe0702",
		},
	}
}

// IsRemote reports whether the station source is fetched over HTTP.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func GetColor(colorStr string) tcell.Color {
	if colorStr == "" || colorStr == "default" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(colorStr)
}
