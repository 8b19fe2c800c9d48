// Package config holds the game settings: defaults, an optional TOML file and
// command line overrides applied on top.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Config is the resolved game configuration
type Config struct {
	Map     string `toml:"map"`
	Laps    int    `toml:"laps"` // 0 uses the map's lap count
	Audio   bool   `toml:"audio"`
	Engine  bool   `toml:"engine_sound"`
	Debug   bool   `toml:"debug"`
	TickHz  int    `toml:"tick_hz"`
	Keymap  string `toml:"keymap"`
	MapsDir string `toml:"maps_dir"`
	Color   bool   `toml:"color"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Map:    parameter.DefaultMapID,
		Audio:  true,
		Engine: true,
		TickHz: parameter.DefaultTickRate,
		Color:  true,
	}
}

// Load decodes a TOML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Laps < 0 {
		errs = append(errs, fmt.Errorf("laps must not be negative, got %d", c.Laps))
	}
	if c.TickHz < 10 || c.TickHz > 240 {
		errs = append(errs, fmt.Errorf("tick_hz must be within 10..240, got %d", c.TickHz))
	}
	return errors.Join(errs...)
}

// Parse resolves the configuration from args: -config selects a TOML file,
// explicitly set flags override it
func Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "TOML config file")
	def := Default()
	mapID := fs.String("map", def.Map, "track id")
	laps := fs.Int("laps", def.Laps, "laps to race, 0 for the track default")
	audio := fs.Bool("audio", def.Audio, "enable sound")
	engineSound := fs.Bool("engine", def.Engine, "enable the engine drone")
	debug := fs.Bool("debug", def.Debug, "write logs to logs/")
	tick := fs.Int("tick", def.TickHz, "simulation and render rate in Hz")
	keymap := fs.String("keymap", def.Keymap, "TOML keymap overrides")
	mapsDir := fs.String("maps", def.MapsDir, "directory of extra TOML tracks")
	color := fs.Bool("color", def.Color, "use true color")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return def, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map = *mapID
		case "laps":
			cfg.Laps = *laps
		case "audio":
			cfg.Audio = *audio
		case "engine":
			cfg.Engine = *engineSound
		case "debug":
			cfg.Debug = *debug
		case "tick":
			cfg.TickHz = *tick
		case "keymap":
			cfg.Keymap = *keymap
		case "maps":
			cfg.MapsDir = *mapsDir
		case "color":
			cfg.Color = *color
		}
	})
	return cfg, cfg.Validate()
}
