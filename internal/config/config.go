package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// File is the raw shape of a logster.toml. Pointer fields distinguish a
// key that is absent from one set to its zero value, which the resolver
// needs to layer file values over defaults and preset colors.
type File struct {
	NoColor     *bool   `toml:"no_color"`
	OutputStyle *string `toml:"output_style"`
	Theme       *string `toml:"theme"`
	ColorScheme *string `toml:"color_scheme"`

	TimeColor                       *string `toml:"time_color"`
	LevelColor                      *string `toml:"level_color"`
	FileColor                       *string `toml:"file_color"`
	OriginColor                     *string `toml:"origin_color"`
	MessageColor                    *string `toml:"message_color"`
	VerboseMetadataKeyColor         *string `toml:"verbose_metadata_key_color"`
	VerboseMetadataValueColor       *string `toml:"verbose_metadata_value_color"`
	VerboseMetadataPunctuationColor *string `toml:"verbose_metadata_punctuation_color"`

	Fields *FileFields `toml:"fields"`
}

// FileFields is the optional [fields] table.
type FileFields struct {
	Timestamp *string `toml:"timestamp"`
	Level     *string `toml:"level"`
	Path      *string `toml:"path"`
	Query     *string `toml:"query"`
	TopK      *string `toml:"top_k"`
	File      *string `toml:"file"`
	Function  *string `toml:"function"`
	Line      *string `toml:"line"`

	MessageFields  []string `toml:"message_fields"`
	MainLineFields []string `toml:"main_line_fields"`
}

const (
	envConfigPath     = "LOGSTER_CONFIG"
	localConfigName   = "logster.toml"
	defaultConfigPath = "~/.config/logster/config.toml"
)

// Load reads a config file. An empty path triggers discovery: the
// LOGSTER_CONFIG environment variable, then ./logster.toml, then
// ~/.config/logster/config.toml. An explicitly requested file (path
// argument or environment variable) that does not exist is an error;
// a missing discovered file just yields an empty File.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) != "" {
		return fromFile(path, true)
	}
	if env := strings.TrimSpace(os.Getenv(envConfigPath)); env != "" {
		return fromFile(env, true)
	}
	if _, err := os.Stat(localConfigName); err == nil {
		return fromFile(localConfigName, false)
	}
	resolved, err := expandPath(defaultConfigPath)
	if err != nil {
		return File{}, nil
	}
	if _, err := os.Stat(resolved); err != nil {
		return File{}, nil
	}
	return fromFile(resolved, false)
}

func fromFile(path string, required bool) (File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return File{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && required {
			return File{}, fmt.Errorf("config file not found: %s", resolved)
		}
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := toml.Unmarshal(bytes, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return f, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
