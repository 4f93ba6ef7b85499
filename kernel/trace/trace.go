package trace

import "strings"

// ExecutionTrace collects timed records during a simulation run.
// Records are append-only; text is materialized only at the output boundary
// via Render, so tests can assert on structured fields instead of substrings.
type ExecutionTrace struct {
	records    []Record
	partitions []PartitionLine
	processes  []ProcessLine
	snapshots  []Snapshot
}

// NewExecutionTrace creates an ExecutionTrace ready for recording.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{
		records: make([]Record, 0),
	}
}

// Append adds one timed record to the trace.
func (et *ExecutionTrace) Append(r Record) {
	et.records = append(et.records, r)
}

// AppendAll adds a sequence of timed records in order.
func (et *ExecutionTrace) AppendAll(rs []Record) {
	et.records = append(et.records, rs...)
}

// Records returns the recorded events for inspection.
// The returned slice is the trace's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it.
func (et *ExecutionTrace) Records() []Record {
	return et.records
}

// Len returns the number of timed records in the trace.
func (et *ExecutionTrace) Len() int {
	return len(et.records)
}

// SetFinalState records the end-of-run partition and PCB tables, in table order.
func (et *ExecutionTrace) SetFinalState(partitions []PartitionLine, processes []ProcessLine) {
	et.partitions = partitions
	et.processes = processes
}

// FinalPartitions returns the recorded final partition table.
func (et *ExecutionTrace) FinalPartitions() []PartitionLine {
	return et.partitions
}

// FinalProcesses returns the recorded final PCB table.
func (et *ExecutionTrace) FinalProcesses() []ProcessLine {
	return et.processes
}

// Render materializes the full execution output: one line per record in
// recording order, followed by the final-state block when one was set.
func (et *ExecutionTrace) Render() string {
	var sb strings.Builder
	for _, r := range et.records {
		sb.WriteString(r.Line())
	}
	if et.partitions != nil || et.processes != nil {
		sb.WriteString(RenderFinalState(et.partitions, et.processes))
	}
	return sb.String()
}
