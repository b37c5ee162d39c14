package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultAppDir         = "todolist"
	ConfigEnv             = "TODOLIST_CONFIG"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Delete  string `toml:"delete"`
	Grab    string `toml:"grab"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	Title         string `toml:"title"`
	Placeholder   string `toml:"placeholder"`
	Theme         string `toml:"theme"`
	ConfirmDelete bool   `toml:"confirm_delete"`
	CharLimit     int    `toml:"char_limit"`
	LogFile       string `toml:"log_file"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath picks $TODOLIST_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, DefaultAppDir, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Keys absent from the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// fillDefaults restores values a user blanked out explicitly.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	// 0 means no limit.
	if c.CharLimit < 0 {
		c.CharLimit = 0
	}
	keys := []struct {
		got *string
		def string
	}{
		{&c.Keys.Quit, d.Keys.Quit},
		{&c.Keys.Add, d.Keys.Add},
		{&c.Keys.Up, d.Keys.Up},
		{&c.Keys.Down, d.Keys.Down},
		{&c.Keys.Delete, d.Keys.Delete},
		{&c.Keys.Grab, d.Keys.Grab},
		{&c.Keys.Confirm, d.Keys.Confirm},
		{&c.Keys.Cancel, d.Keys.Cancel},
	}
	for _, k := range keys {
		if *k.got == "" {
			*k.got = k.def
		}
	}
}

func Default() Config {
	return Config{
		Title:       "Todo List",
		Placeholder: "Add a new todo",
		Theme:       "dark",
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Delete:  "d",
			Grab:    "m",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}
