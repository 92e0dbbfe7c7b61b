package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tspanneal/tsp"
)

// annealConfig mirrors the scalar fields of tsp.Options under the [anneal]
// table of a TOML config file.
type annealConfig struct {
	InitialTemperature float64 `toml:"initial_temperature"`
	CoolingRate        float64 `toml:"cooling_rate"`
	PlateauLimit       int     `toml:"plateau_limit"`
	MovesPerSweep      int     `toml:"moves_per_sweep"`
	FrozenThreshold    float64 `toml:"frozen_threshold"`
	MaxSweeps          int     `toml:"max_sweeps"`
	Seed               int64   `toml:"seed"`
	ShuffleStart       bool    `toml:"shuffle_start"`
}

type fileConfig struct {
	Anneal annealConfig `toml:"anneal"`
}

// loadConfig reads a TOML config file and applies it onto opts.
func loadConfig(path string, opts *tsp.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decodeConfig(string(data), opts); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// decodeConfig applies the keys present in data onto opts; absent keys keep
// their current value. Unknown keys are an error so typos do not pass
// silently. Range checks are left to the tsp package.
func decodeConfig(data string, opts *tsp.Options) error {
	var fc fileConfig
	md, err := toml.Decode(data, &fc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	a := fc.Anneal
	set := func(key string) bool { return md.IsDefined("anneal", key) }

	if set("initial_temperature") {
		opts.InitialTemperature = a.InitialTemperature
	}
	if set("cooling_rate") {
		opts.CoolingRate = a.CoolingRate
	}
	if set("plateau_limit") {
		opts.PlateauLimit = a.PlateauLimit
	}
	if set("moves_per_sweep") {
		opts.MovesPerSweep = a.MovesPerSweep
	}
	if set("frozen_threshold") {
		opts.FrozenThreshold = a.FrozenThreshold
	}
	if set("max_sweeps") {
		opts.MaxSweeps = a.MaxSweeps
	}
	if set("seed") {
		opts.Seed = a.Seed
	}
	if set("shuffle_start") {
		opts.ShuffleStart = a.ShuffleStart
	}

	return nil
}
