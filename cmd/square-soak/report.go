package main

import (
	"fmt"
	"image"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/square/world"
)

type Violation struct {
	Frame int
	Rect  image.Rectangle
}

type Report struct {
	// Configuration
	Duration time.Duration
	FPSCap   int
	Seed     uint64

	// Results
	Frames         int
	TotalTime      time.Duration
	LastFPS        float64
	FrameTime      Stats
	Systems        []world.SystemStats
	Violations     []Violation
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P95     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = percentile(sorted, 50)
	s.P95 = percentile(sorted, 95)
	s.P99 = percentile(sorted, 99)
}

// percentile uses the nearest-rank method on already sorted samples.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Square Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **FPS Cap:** {{.FPSCap}}
- **Input Seed:** {{.Seed}}

## Loop Results
- **Frames:** {{.Frames}}
- **Total Time:** {{.TotalTime}}
- **Average FPS:** {{fps .Frames .TotalTime}}
- **Last Sampled FPS:** {{printf "%.1f" .LastFPS}}
- **Frame Time (work before sleep):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
  - **p50:** {{.FrameTime.P50}}
  - **p95:** {{.FrameTime.P95}}
  - **p99:** {{.FrameTime.P99}}

## Systems
| System | Runs | Avg | Min | Max | Total |
|---|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} | {{.TotalDuration}} |
{{end}}
## Bounds
{{if .Violations}}{{range .Violations}}- frame {{.Frame}}: {{.Rect}}
{{end}}{{else}}- square stayed inside the display
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"fps": func(frames int, total time.Duration) string {
			if total <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(frames)/total.Seconds())
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
