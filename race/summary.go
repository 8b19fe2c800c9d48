package race

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates lap times of one race
type Summary struct {
	RaceID   string
	Finished bool
	Laps     int
	Total    float64 // race clock, includes the unfinished lap
	Best     float64
	BestLap  int // 1-based, 0 when no lap completed
	Mean     float64
	StdDev   float64 // sample deviation, 0 below two laps
}

// Summarize computes best, mean and deviation of lap times
func Summarize(lapTimes []float64) Summary {
	s := Summary{Laps: len(lapTimes)}
	if len(lapTimes) == 0 {
		return s
	}
	i := floats.MinIdx(lapTimes)
	s.Best = lapTimes[i]
	s.BestLap = i + 1
	if len(lapTimes) < 2 {
		s.Mean = lapTimes[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(lapTimes, nil)
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	return s
}

// FormatLapTime renders seconds as m:ss.mmm
func FormatLapTime(sec float64) string {
	if sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return "-:--.---"
	}
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
