package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Matches   int
	Simulated time.Duration
	TickRate  int

	// Results
	TotalTicks     uint64
	TotalFrames    int
	Mismatches     int
	Diverged       []uint64
	TotalTime      time.Duration
	FrameTime      Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	for _, sample := range s.Samples {
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) add(result MatchResult, frameTimes []time.Duration) {
	r.TotalTicks += result.Ticks
	r.TotalFrames += result.Frames
	r.FrameTime.Samples = append(r.FrameTime.Samples, frameTimes...)
	if !result.Reproduced() {
		r.Mismatches++
		r.Diverged = append(r.Diverged, result.Seed)
		slices.Sort(r.Diverged)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Arena Soak Report

## Configuration
- **Matches:** {{.Matches}}
- **Simulated Time per Match:** {{.Simulated}}
- **Tick Rate:** {{.TickRate}} Hz

## Determinism
- **Replays Diverged:** {{.Mismatches}}{{if .Diverged}}
- **Diverged Seeds:** {{range $i, $s := .Diverged}}{{if $i}}, {{end}}{{$s}}{{end}}{{end}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Frames:** {{.TotalFrames}}
- **Wall Time:** {{.TotalTime}}
- **Advance Time (Frame):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
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
