package trace

import (
	"fmt"
	"strings"
)

// RenderFinalState materializes the end-of-run snapshot block.
// Field order and wording must stay byte-for-byte stable: downstream trace
// consumers diff this output against reference runs.
func RenderFinalState(partitions []PartitionLine, processes []ProcessLine) string {
	var sb strings.Builder
	sb.WriteString("\n\n=== FINAL SYSTEM STATE ===\n")
	sb.WriteString("Partition Table:\n")
	for _, p := range partitions {
		sb.WriteString(fmt.Sprintf("Partition %d: %d MB - Code: %s\n", p.ID, p.SizeMB, p.Occupant))
	}
	sb.WriteString("\nPCB Table:\n")
	for _, p := range processes {
		sb.WriteString(processLine(p))
	}
	return sb.String()
}

// processLine renders one PCB row. The parent clause appears only for
// processes that have one; init (ppid -1) is printed without it.
func processLine(p ProcessLine) string {
	if p.PPID >= 0 {
		return fmt.Sprintf("PID %d (Parent: %d): %s (Partition %d, %d MB, State: %s)\n",
			p.PID, p.PPID, p.ProgramName, p.PartitionID, p.SizeMB, p.State)
	}
	return fmt.Sprintf("PID %d: %s (Partition %d, %d MB, State: %s)\n",
		p.PID, p.ProgramName, p.PartitionID, p.SizeMB, p.State)
}

// Snapshot is a PCB-table snapshot taken mid-run, after a process
// management call (fork or exec).
type Snapshot struct {
	Time      int64
	Activity  string // the trace-script line that triggered the snapshot
	Processes []ProcessLine
}

// AddSnapshot records a mid-run PCB snapshot.
func (et *ExecutionTrace) AddSnapshot(s Snapshot) {
	et.snapshots = append(et.snapshots, s)
}

// Snapshots returns the recorded mid-run snapshots in order.
func (et *ExecutionTrace) Snapshots() []Snapshot {
	return et.snapshots
}

// RenderSnapshots materializes the system-status side channel: one PCB table
// per fork/exec call, stamped with the simulation time it was taken at.
func (et *ExecutionTrace) RenderSnapshots() string {
	var sb strings.Builder
	for _, s := range et.snapshots {
		sb.WriteString(fmt.Sprintf("Save Time: %d, Trace: %s\n", s.Time, s.Activity))
		for _, p := range s.Processes {
			sb.WriteString(processLine(p))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
