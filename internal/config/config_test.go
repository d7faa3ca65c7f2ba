package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stations != DefaultStations {
		t.Errorf("DefaultConfig().Stations = %q, want %q", cfg.Stations, DefaultStations)
	}

	if cfg.Player != DefaultPlayer {
		t.Errorf("DefaultConfig().Player = %q, want %q", cfg.Player, DefaultPlayer)
	}

	if cfg.Socket != "" {
		t.Errorf("DefaultConfig().Socket = %q, want empty string", cfg.Socket)
	}
}

func TestConfigSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	testCfg := &Config{
		Stations: "https://example.com/radios.json",
		Player:   "/usr/local/bin/mpv",
		Socket:   "/tmp/radio.sock",
		Theme:    DefaultConfig().Theme,
	}

	err := testCfg.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file was not created at %s", configPath)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if *loadedCfg != *testCfg {
		t.Errorf("Load() = %+v, want %+v", *loadedCfg, *testCfg)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	if err := DefaultConfig().Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, ConfigDir))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != ConfigFileName {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("config dir contains %v, want only %s", names, ConfigFileName)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("Load() with non-existent file = %+v, want defaults", *cfg)
	}
}

func TestLoadFillsBlankFields(t *testing.T) {
	tests := []struct {
		name             string
		yaml             string
		expectedStations string
		expectedPlayer   string
		expectedSocket   string
	}{
		{
			name:             "empty file keeps defaults",
			yaml:             "",
			expectedStations: DefaultStations,
			expectedPlayer:   DefaultPlayer,
		},
		{
			name:             "blank values fall back",
			yaml:             "stations: \"  \"\nplayer: \"\"\n",
			expectedStations: DefaultStations,
			expectedPlayer:   DefaultPlayer,
		},
		{
			name:             "values are trimmed",
			yaml:             "stations: \" my.json \"\nplayer: \" mpv2 \"\nsocket: \" /tmp/s \"\n",
			expectedStations: "my.json",
			expectedPlayer:   "mpv2",
			expectedSocket:   "/tmp/s",
		},
		{
			name:             "partial file keeps other defaults",
			yaml:             "player: vlc\n",
			expectedStations: DefaultStations,
			expectedPlayer:   "vlc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("HOME", tmpDir)

			configDir := filepath.Join(tmpDir, ConfigDir)
			if err := os.MkdirAll(configDir, 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.Stations != tt.expectedStations {
				t.Errorf("Stations = %q, want %q", cfg.Stations, tt.expectedStations)
			}
			if cfg.Player != tt.expectedPlayer {
				t.Errorf("Player = %q, want %q", cfg.Player, tt.expectedPlayer)
			}
			if cfg.Socket != tt.expectedSocket {
				t.Errorf("Socket = %q, want %q", cfg.Socket, tt.expectedSocket)
			}
		})
	}
}

func TestThemeDefaults(t *testing.T) {
	theme := DefaultConfig().Theme

	colors := map[string]string{
		"Background": theme.Background,
		"Foreground": theme.Foreground,
		"Borders":    theme.Borders,
		"Highlight":  theme.Highlight,
		"Accent":     theme.Accent,
		"Title":      theme.Title,
		"Station":    theme.Station,
		"Error":      theme.Error,
	}

	for name, value := range colors {
		if value == "" {
			t.Errorf("DefaultConfig().Theme.%s is empty", name)
		}
		if GetColor(value) == tcell.ColorDefault {
			t.Errorf("DefaultConfig().Theme.%s = %q does not resolve to a color", name, value)
		}
	}
}

func TestThemePersistence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg := DefaultConfig()
	cfg.Theme.Highlight = "#00ff00"
	cfg.Theme.Error = "red"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Theme != cfg.Theme {
		t.Errorf("Load().Theme = %+v, want %+v", loaded.Theme, cfg.Theme)
	}
}

func TestGetColor(t *testing.T) {
	tests := []struct {
		name      string
		colorStr  string
		isDefault bool
	}{
		{"empty string returns default", "", true},
		{"default keyword returns default", "default", true},
		{"named color white", "white", false},
		{"named color red", "red", false},
		{"hex color", "#FF0000", false},
		{"hex color lowercase", "#ff0000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColor(tt.colorStr)
			if (result == tcell.ColorDefault) != tt.isDefault {
				t.Errorf("GetColor(%q) = %v, isDefault want %v", tt.colorStr, result, tt.isDefault)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"radios.json", false},
		{"/etc/radio/list.json", false},
		{"http://example.com/radios.json", true},
		{"https://example.com/radios.json", true},
		{"HTTPS://EXAMPLE.COM/radios.json", true},
		{"ftp://example.com/radios.json", false},
		{"http-stations.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := IsRemote(tt.source); got != tt.expected {
				t.Errorf("IsRemote(%q) = %v, want %v", tt.source, got, tt.expected)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configDir := filepath.Join(tmpDir, ConfigDir)
	_ = os.MkdirAll(configDir, 0755)
	configPath := filepath.Join(configDir, ConfigFileName)

	invalidYAML := []byte("stations: [unclosed")
	_ = os.WriteFile(configPath, invalidYAML, 0644)

	cfg, err := Load()
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("Load() with invalid YAML = %+v, want defaults", *cfg)
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if path == "" {
		t.Error("GetConfigPath() returned empty string")
	}

	if !filepath.IsAbs(path) {
		t.Errorf("GetConfigPath() = %q, want absolute path", path)
	}
}
