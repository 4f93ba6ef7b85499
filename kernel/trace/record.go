// Package trace provides structured execution-trace recording for the simulator.
// This package has no dependencies on kernel/ — it stores pure data types.
package trace

import "fmt"

// Record captures a single timed simulation event.
type Record struct {
	Time        int64  // simulation time when the event started (in ticks)
	Duration    int64  // how long the event took (in ticks, may be 0)
	Description string // human-readable event text, e.g. "switch to kernel mode"
}

// Line renders the record in the canonical output format:
// "<time>, <duration>, <description>\n"
func (r Record) Line() string {
	return fmt.Sprintf("%d, %d, %s\n", r.Time, r.Duration, r.Description)
}

// PartitionLine is one row of the final-state partition table.
type PartitionLine struct {
	ID       int
	SizeMB   int
	Occupant string
}

// ProcessLine is one row of the final-state PCB table.
type ProcessLine struct {
	PID         int
	PPID        int // -1 when the process has no parent (init)
	ProgramName string
	PartitionID int
	SizeMB      int
	State       string
}
