// Package config loads picofetch settings from an INI file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/CristiGvl/picoFetch/internal/duration"
	"github.com/CristiGvl/picoFetch/internal/source"
)

// FetchUnits is the number of duration units shown by the fetch line.
const FetchUnits = 1

// Config holds every setting picofetch understands.
type Config struct {
	Display Display
	Source  Source
	Server  Server
	Log     Log
}

type Display struct {
	Units int
	Color bool
	JSON  bool
}

type Source struct {
	Root string
}

type Server struct {
	Listen string
}

type Log struct {
	Level  string
	Pretty bool
}

var loadOptions = ini.LoadOptions{
	Insensitive:             true,
	SkipUnrecognizableLines: true,
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Display: Display{Units: FetchUnits, Color: true},
		Source:  Source{Root: source.DefaultRoot},
		Log:     Log{Level: "warn"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/picofetch/config.ini or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "picofetch", "config.ini"), nil
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath, which may be missing.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.apply(file); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads INI content over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.apply(file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(file *ini.File) error {
	display := file.Section("display")
	if key := display.Key("units"); key.String() != "" {
		units, err := key.Int()
		if err != nil {
			return fmt.Errorf("display.units: %w", err)
		}
		c.Display.Units = duration.ClampUnits(units)
	}
	c.Display.Color = display.Key("color").MustBool(c.Display.Color)
	c.Display.JSON = display.Key("json").MustBool(c.Display.JSON)

	if root := file.Section("source").Key("root").String(); root != "" {
		c.Source.Root = root
	}

	c.Server.Listen = file.Section("server").Key("listen").MustString(c.Server.Listen)

	logSection := file.Section("log")
	c.Log.Level = logSection.Key("level").MustString(c.Log.Level)
	c.Log.Pretty = logSection.Key("pretty").MustBool(c.Log.Pretty)
	return nil
}

// ApplyEnv overrides settings from environment variables looked up with
// lookup, normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if root, ok := lookup("PICOFETCH_ROOT"); ok && root != "" {
		c.Source.Root = root
	}
	if value, ok := lookup("PICOFETCH_UNITS"); ok && value != "" {
		units, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("PICOFETCH_UNITS: %w", err)
		}
		c.Display.Units = duration.ClampUnits(units)
	}
	if level, ok := lookup("LOG_LEVEL"); ok && level != "" {
		c.Log.Level = level
	}
	if value, ok := lookup("NO_COLOR"); ok && value != "" {
		c.Display.Color = false
	}
	return nil
}
