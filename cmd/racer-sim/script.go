package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-racer/core"
)

// Segment holds a key set for a duration
type Segment struct {
	Input    core.Input
	Duration float64 // seconds
}

// ParseScript reads "F:2,FL:1.5,N:0.5": letters F B L R select held keys,
// N or an empty set holds nothing
func ParseScript(s string) ([]Segment, error) {
	var segs []Segment
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys, dur, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("segment %d %q: want KEYS:SECONDS", i+1, part)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(dur), 64)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("segment %d %q: bad duration", i+1, part)
		}
		var in core.Input
		for _, r := range strings.ToUpper(strings.TrimSpace(keys)) {
			switch r {
			case 'F':
				in.Forward = true
			case 'B':
				in.Backward = true
			case 'L':
				in.Left = true
			case 'R':
				in.Right = true
			case 'N':
			default:
				return nil, fmt.Errorf("segment %d %q: unknown key %q", i+1, part, r)
			}
		}
		segs = append(segs, Segment{Input: in, Duration: d})
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return segs, nil
}
