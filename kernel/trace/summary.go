package trace

import "strings"

// Summary aggregates statistics from an ExecutionTrace.
type Summary struct {
	TotalRecords int
	TotalTicks   int64 // sum of all record durations
	EndTime      int64 // time + duration of the last record
	ErrorCount   int   // records whose description carries the ERROR marker
	Snapshots    int
}

// Summarize computes aggregate statistics from an ExecutionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *ExecutionTrace) *Summary {
	summary := &Summary{}
	if et == nil {
		return summary
	}

	summary.TotalRecords = len(et.records)
	summary.Snapshots = len(et.snapshots)
	for _, r := range et.records {
		summary.TotalTicks += r.Duration
		if end := r.Time + r.Duration; end > summary.EndTime {
			summary.EndTime = end
		}
		if strings.HasPrefix(r.Description, "ERROR") {
			summary.ErrorCount++
		}
	}

	return summary
}
