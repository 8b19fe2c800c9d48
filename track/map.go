// Package track holds the circuit definitions: centerline geometry, spawn,
// lap count and the per-map lap rule, plus the registry the race selects from.
package track

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Map is an immutable circuit definition
type Map struct {
	ID   string
	Name string

	// Points is the closed centerline (x, z), in race direction
	Points        []mgl64.Vec2
	RoadWidth     float64 // full road width
	WallHeight    float64
	WallThickness float64

	Lap LapRule

	Spawn        mgl64.Vec3
	SpawnHeading float64 // yaw, 0 along +Z
	TotalLaps    int     // 0 means parameter.DefaultTotalLaps
}

// HalfWidth is the distance from the centerline to the road edge
func (m *Map) HalfWidth() float64 { return m.RoadWidth / 2 }

// Laps returns the race length, defaulted when unset
func (m *Map) Laps() int {
	if m.TotalLaps <= 0 {
		return parameter.DefaultTotalLaps
	}
	return m.TotalLaps
}

// WallDims returns wall height and thickness with defaults applied
func (m *Map) WallDims() (height, thickness float64) {
	height, thickness = m.WallHeight, m.WallThickness
	if height <= 0 {
		height = parameter.DefaultWallHeight
	}
	if thickness <= 0 {
		thickness = parameter.DefaultWallThick
	}
	return height, thickness
}

// Validate reports definition errors, used for maps loaded from files
func (m *Map) Validate() error {
	var errs []error
	if m.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if len(m.Points) < 3 {
		errs = append(errs, fmt.Errorf("need at least 3 centerline points, got %d", len(m.Points)))
	}
	if m.RoadWidth <= 0 {
		errs = append(errs, fmt.Errorf("road width must be positive, got %g", m.RoadWidth))
	}
	if m.Lap == nil {
		errs = append(errs, errors.New("missing lap rule"))
	}
	if m.TotalLaps < 0 {
		errs = append(errs, fmt.Errorf("total laps must not be negative, got %d", m.TotalLaps))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("map %q: %w", m.ID, err)
	}
	return nil
}
