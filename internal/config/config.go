// ABOUTME: Configuration loading for the expandable text area demo
// ABOUTME: Reads YAML through viper with EXPANDAREA_ environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/expandable-textarea/internal/expand"
	"github.com/harper/expandable-textarea/internal/logger"
	"github.com/harper/expandable-textarea/internal/tui/theme"
	"github.com/harper/expandable-textarea/internal/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "EXPANDAREA"

type Config struct {
	TextArea TextAreaConfig `mapstructure:"textarea" yaml:"textarea"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

type TextAreaConfig struct {
	Text               string `mapstructure:"text" yaml:"text"`
	Expandable         bool   `mapstructure:"expandable" yaml:"expandable"`
	FixedHeight        bool   `mapstructure:"fixed_height" yaml:"fixed_height"`
	CompactLineCount   int    `mapstructure:"compact_line_count" yaml:"compact_line_count"`
	InitialLineCount   int    `mapstructure:"initial_line_count" yaml:"initial_line_count"`
	MaxCharacters      int    `mapstructure:"max_characters" yaml:"max_characters"` // 0 means no limit
	CharacterThreshold int    `mapstructure:"character_threshold" yaml:"character_threshold"`
	LimitationText     string `mapstructure:"limitation_text" yaml:"limitation_text"`
	Stacked            bool   `mapstructure:"stacked" yaml:"stacked"`
	Editable           bool   `mapstructure:"editable" yaml:"editable"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Level   string `mapstructure:"level" yaml:"level"`
	File    string `mapstructure:"file" yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		TextArea: TextAreaConfig{
			Expandable:         false,
			FixedHeight:        true,
			CompactLineCount:   expand.DefaultCompactLineCount,
			InitialLineCount:   expand.DefaultInitialLineCount,
			MaxCharacters:      0,
			CharacterThreshold: expand.Unset,
			LimitationText:     expand.DefaultLimitationText,
			Editable:           true,
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "$XDG_DATA_HOME/" + xdg.AppName + "/demo.log",
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome(), "config.yaml")
}

// Load reads the config at configPath. A missing file is created with the
// defaults. Environment variables such as EXPANDAREA_TEXTAREA_MAX_CHARACTERS
// override file values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := saveDefault(DefaultConfig(), configPath); err != nil {
			logger.Warn("config: could not write default config to %s: %v", configPath, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Validate()
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("textarea.text", cfg.TextArea.Text)
	v.SetDefault("textarea.expandable", cfg.TextArea.Expandable)
	v.SetDefault("textarea.fixed_height", cfg.TextArea.FixedHeight)
	v.SetDefault("textarea.compact_line_count", cfg.TextArea.CompactLineCount)
	v.SetDefault("textarea.initial_line_count", cfg.TextArea.InitialLineCount)
	v.SetDefault("textarea.max_characters", cfg.TextArea.MaxCharacters)
	v.SetDefault("textarea.character_threshold", cfg.TextArea.CharacterThreshold)
	v.SetDefault("textarea.limitation_text", cfg.TextArea.LimitationText)
	v.SetDefault("textarea.stacked", cfg.TextArea.Stacked)
	v.SetDefault("textarea.editable", cfg.TextArea.Editable)
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("logging.enabled", cfg.Logging.Enabled)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}

// Validate clamps values the text area cannot use and expands the log path.
func (c *Config) Validate() {
	ta := &c.TextArea

	if ta.CompactLineCount < 1 {
		logger.Warn("config: compact_line_count %d out of range, using 1", ta.CompactLineCount)
		ta.CompactLineCount = 1
	}
	if ta.InitialLineCount < 1 {
		logger.Warn("config: initial_line_count %d out of range, using 1", ta.InitialLineCount)
		ta.InitialLineCount = 1
	}
	if ta.MaxCharacters < 0 {
		logger.Warn("config: max_characters %d out of range, using 0", ta.MaxCharacters)
		ta.MaxCharacters = 0
	}
	if ta.MaxCharacters > 0 && ta.MaxCharacters < expand.MinMaxCharacters {
		logger.Warn("config: max_characters %d out of range, using %d", ta.MaxCharacters, expand.MinMaxCharacters)
		ta.MaxCharacters = expand.MinMaxCharacters
	}
	if ta.MaxCharacters == 0 || ta.CharacterThreshold < 0 {
		ta.CharacterThreshold = expand.Unset
	} else if ta.CharacterThreshold > ta.MaxCharacters {
		logger.Warn("config: character_threshold %d out of range, using %d", ta.CharacterThreshold, ta.MaxCharacters)
		ta.CharacterThreshold = ta.MaxCharacters
	}

	if !isKnownTheme(c.UI.Theme) {
		logger.Warn("config: unknown theme %q, using default", c.UI.Theme)
		c.UI.Theme = "default"
	}

	c.Logging.File = xdg.ExpandPath(c.Logging.File)

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
		c.Logging.Level = strings.ToLower(c.Logging.Level)
	default:
		c.Logging.Level = "info"
	}
}

func isKnownTheme(name string) bool {
	for _, n := range theme.Names {
		if n == name {
			return true
		}
	}
	return false
}

// ToExpand converts the file settings into a text area configuration.
func (t TextAreaConfig) ToExpand() expand.Config {
	cfg := expand.DefaultConfig()
	cfg.Expandable = t.Expandable
	cfg.FixedHeight = t.FixedHeight
	cfg.CompactLineCount = t.CompactLineCount
	cfg.InitialLineCount = t.InitialLineCount
	cfg.LimitationText = t.LimitationText
	cfg.Stacked = t.Stacked
	cfg.MaxCharacters = expand.Unbounded
	cfg.CharacterThreshold = expand.Unset
	if t.MaxCharacters > 0 {
		cfg.MaxCharacters = t.MaxCharacters
		cfg.CharacterThreshold = t.CharacterThreshold
	}
	return cfg
}

func saveDefault(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
