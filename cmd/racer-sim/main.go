// Command racer-sim drives a race headlessly from a key script and writes
// per-tick telemetry as CSV, optionally plotting the driven line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
)

func main() {
	mapID := flag.String("map", parameter.DefaultMapID, "track id")
	mapsDir := flag.String("maps", "", "directory of extra TOML tracks")
	script := flag.String("script", "F:2", "key script, e.g. F:2,FL:1.5,N:1")
	dt := flag.Float64("dt", 1.0/parameter.DefaultTickRate, "fixed tick in seconds")
	laps := flag.Int("laps", 0, "laps to race, 0 for the track default")
	out := flag.String("out", "-", "CSV output file, - for stdout")
	plotPath := flag.String("plot", "", "write a PNG of the trace")
	verbose := flag.Bool("v", false, "log race events to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(*mapID, *mapsDir, *script, *dt, *laps, *out, *plotPath); err != nil {
		fmt.Fprintf(os.Stderr, "racer-sim: %v\n", err)
		os.Exit(1)
	}
}

func run(mapID, mapsDir, script string, dt float64, laps int, out, plotPath string) error {
	if dt <= 0 || dt > parameter.MaxFrameDelta {
		return fmt.Errorf("dt must be within (0, %g], got %g", parameter.MaxFrameDelta, dt)
	}
	segs, err := ParseScript(script)
	if err != nil {
		return err
	}

	m, err := openMap(mapsDir, mapID)
	if err != nil {
		return err
	}
	sim := engine.NewSimulation(m, laps)
	samples := Run(sim, segs, dt)

	w := io.Writer(os.Stdout)
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	if err := WriteCSV(w, samples); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if plotPath != "" {
		if err := SavePlot(plotPath, m, sim.Geometry(), samples); err != nil {
			return err
		}
	}
	log.Printf("summary %+v", sim.Tracker().Summary())
	return nil
}

// openMap loads extra tracks from mapsDir and resolves mapID, an unknown id
// falls back to the default track
func openMap(mapsDir, mapID string) (*track.Map, error) {
	registry := track.NewRegistry()
	if mapsDir != "" {
		if _, err := registry.LoadDir(mapsDir); err != nil {
			return nil, err
		}
	}
	return registry.Lookup(mapID), nil
}
