package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/track"
)

func TestParseScript(t *testing.T) {
	got, err := ParseScript("F:2, fl:1.5 ,N:0.25,BR:1")
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		{core.Input{Forward: true}, 2},
		{core.Input{Forward: true, Left: true}, 1.5},
		{core.Input{}, 0.25},
		{core.Input{Backward: true, Right: true}, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"", "F", "F:x", "F:-1", "Q:1", ",,"} {
		if _, err := ParseScript(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestRunRecordsTicks(t *testing.T) {
	sim := engine.NewSimulation(track.GP1(), 0)
	samples := Run(sim, []Segment{{core.Input{Forward: true}, 1}, {core.Input{}, 0.5}}, 1.0/60)

	if len(samples) != 90 {
		t.Fatalf("Expected 90 samples, got %d", len(samples))
	}
	if samples[59].Speed <= samples[0].Speed {
		t.Error("Expected speed to build while throttling")
	}
	if samples[89].Speed >= samples[59].Speed {
		t.Error("Expected speed to drop while coasting")
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, samples[:2]); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != "t,x,z,speed,heading,steer,lap,state" {
		t.Errorf("unexpected csv:\n%s", buf.String())
	}
	if !strings.HasSuffix(lines[1], ",0,racing") {
		t.Errorf("Expected lap and state columns, got %s", lines[1])
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "trace.csv")
	pngPath := filepath.Join(dir, "trace.png")

	if err := run("sprint", "", "F:1,FL:0.5", 1.0/60, 0, csvPath, pngPath); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{csvPath, pngPath} {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("Expected non-empty %s, got %v", p, err)
		}
	}

	if err := run("sprint", "", "F:1", 0.5, 0, csvPath, ""); err == nil {
		t.Error("Expected error for dt above the clamp")
	}
}

func TestOpenMapFallsBack(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"oval", "oval"},
		{"sprint", "sprint"},
		{"nope", "gp1"},
	}
	for _, tt := range tests {
		m, err := openMap("", tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.ID; got != tt.want {
			t.Errorf("%s: Expected %s, got %s", tt.id, tt.want, got)
		}
	}
}
