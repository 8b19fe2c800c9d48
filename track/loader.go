package track

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
)

// mapFile is the TOML layout of a circuit definition
type mapFile struct {
	ID            string       `toml:"id"`
	Name          string       `toml:"name"`
	Points        [][2]float64 `toml:"points"`
	RoadWidth     float64      `toml:"road_width"`
	WallHeight    float64      `toml:"wall_height"`
	WallThickness float64      `toml:"wall_thickness"`
	Spawn         [3]float64   `toml:"spawn"`
	SpawnHeading  float64      `toml:"spawn_heading"`
	TotalLaps     int          `toml:"total_laps"`
	Lap           lapFile      `toml:"lap"`
}

type lapFile struct {
	Kind        string       `toml:"kind"` // line | checkpoint
	Axis        string       `toml:"axis"` // x | z
	Position    float64      `toml:"position"`
	SideA       string       `toml:"side_a"` // below | above
	Bound       string       `toml:"bound"`  // min_x | max_x | min_z | max_z
	Threshold   float64      `toml:"threshold"`
	Checkpoints [][2]float64 `toml:"checkpoints"`
}

// DecodeMap parses a TOML circuit definition
func DecodeMap(data []byte) (*Map, error) {
	var f mapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("map parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("map %q: unknown keys %v", f.ID, undecoded)
	}

	rule, err := f.Lap.rule()
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", f.ID, err)
	}

	m := &Map{
		ID:            f.ID,
		Name:          f.Name,
		Points:        vec2s(f.Points),
		RoadWidth:     f.RoadWidth,
		WallHeight:    f.WallHeight,
		WallThickness: f.WallThickness,
		Lap:           rule,
		Spawn:         mgl64.Vec3{f.Spawn[0], f.Spawn[1], f.Spawn[2]},
		SpawnHeading:  f.SpawnHeading,
		TotalLaps:     f.TotalLaps,
	}
	if m.Name == "" {
		m.Name = m.ID
	}
	if m.Spawn.Y() == 0 {
		m.Spawn[1] = parameter.SpawnHeight
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (l lapFile) rule() (LapRule, error) {
	line := Line{Position: l.Position}
	switch strings.ToLower(l.Axis) {
	case "", "x":
		line.Axis = AxisX
	case "z":
		line.Axis = AxisZ
	default:
		return nil, fmt.Errorf("lap axis %q: want x or z", l.Axis)
	}
	switch strings.ToLower(l.SideA) {
	case "", "below":
		line.ABelow = true
	case "above":
		line.ABelow = false
	default:
		return nil, fmt.Errorf("lap side_a %q: want below or above", l.SideA)
	}

	switch strings.ToLower(l.Kind) {
	case "", "line":
		ext, err := ParseExtremum(strings.ToLower(l.Bound))
		if err != nil {
			return nil, fmt.Errorf("lap bound: %w", err)
		}
		return LineRule{Line: line, Bound: Bound{Extremum: ext, Threshold: l.Threshold}}, nil
	case "checkpoint":
		if len(l.Checkpoints) == 0 {
			return nil, fmt.Errorf("checkpoint rule needs at least one checkpoint")
		}
		return CheckpointRule{Line: line, Checkpoints: vec2s(l.Checkpoints)}, nil
	}
	return nil, fmt.Errorf("lap kind %q: want line or checkpoint", l.Kind)
}

// LoadMapFile reads one TOML circuit definition
func LoadMapFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	m, err := DecodeMap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// LoadDir registers every *.toml map in dir, in file name order
// Returns the ids loaded; the first error stops loading
func (r *Registry) LoadDir(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("scan maps dir: %w", err)
	}
	sort.Strings(paths)

	var ids []string
	for _, p := range paths {
		m, err := LoadMapFile(p)
		if err != nil {
			return ids, err
		}
		r.Register(m)
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func vec2s(in [][2]float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(in))
	for i, p := range in {
		out[i] = mgl64.Vec2{p[0], p[1]}
	}
	return out
}
