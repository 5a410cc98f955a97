package runner

import (
	"time"

	"github.com/lance6716/aoc-circuits/pkg/solve"
)

// Config is a static struct for a run's configuration.
type Config struct {
	TaskName string

	// Days to solve. Empty means every day that has a solver.
	Days        []int
	InputDir    string
	Connections int
	// ReportFile is the path of the text report. Empty disables the report.
	ReportFile  string
	SaveAnswers bool
	Log         Log
}

type Log struct {
	Filename string
}

const defaultInputDir = "inputs"

func (c *Config) ensureDefaults() {
	if c.TaskName == "" {
		c.TaskName = time.Now().Format(time.RFC3339)
	}
	if c.InputDir == "" {
		c.InputDir = defaultInputDir
	}
	if c.Connections <= 0 {
		c.Connections = solve.DefaultConnections
	}
	if len(c.Days) == 0 {
		c.Days = solve.Days()
	}
}
