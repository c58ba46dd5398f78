package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Frames   int
	Duration time.Duration
	FrameDT  time.Duration
	Width    int
	Height   int

	// Results
	TotalTime  time.Duration
	UpdateTime Stats
	Commits    int
	Filled     int
	Systems    []game.SystemStats
	TotalExecs int64
	SimFrames  int64
	Grid       string
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
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the end-of-run state of world and scheduler into the report.
func (r *Report) Collect(world *game.World, scheduler *game.Scheduler) {
	stats := scheduler.GetStats()
	r.Commits = world.Commits()
	r.Filled = world.Grid.Count()
	r.Systems = stats.Systems
	r.TotalExecs = stats.TotalExecutions
	r.SimFrames = stats.Frames
	r.Grid = world.Grid.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Board:** {{.Width}}x{{.Height}}
- **Frames:** {{if .Frames}}{{.Frames}}{{else}}until {{.Duration}}{{end}}
- **Simulated Frame Time:** {{.FrameDT}}

## Results
- **Frames Run:** {{.SimFrames}}
- **Simulated Time:** {{simtime .SimFrames .FrameDT}}
- **Wall Time:** {{.TotalTime}}
- **Pieces Committed:** {{.Commits}}
- **Cells Filled:** {{.Filled}} of {{mul .Width .Height}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems ({{.TotalExecs}} executions)
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Final Board
` + "```" + `
{{.Grid}}` + "```" + `
`

	fm := template.FuncMap{
		"mul": func(a, b int) int {
			return a * b
		},
		"simtime": func(frames int64, dt time.Duration) time.Duration {
			return time.Duration(frames) * dt
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
