package kernel

import (
	"fmt"

	"github.com/kernel-sim/kernel-sim/kernel/trace"
)

// OutOfRangeError reports an interrupt or device number beyond the loaded
// vector or delay table. Surfaced as an error trace line, never a panic.
type OutOfRangeError struct {
	Table string // "vector" or "delay"
	Index int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s table index %d out of range (table has %d entries)", e.Table, e.Index, e.Limit)
}

// The interrupt primitives below are pure: each takes the current time and
// returns the trace record it produced plus the advanced clock. No hidden
// global time exists, so ordering is provable from the call sequence.

// SwitchToKernelMode flips the mode bit to kernel. 1 tick.
func SwitchToKernelMode(now int64) (trace.Record, int64) {
	r := trace.Record{Time: now, Duration: 1, Description: "switch to kernel mode"}
	return r, now + 1
}

// SaveContext stores CPU registers and process state. Cost is the configured
// context-save duration (10 ticks by default).
func SaveContext(now, cost int64) (trace.Record, int64) {
	r := trace.Record{Time: now, Duration: cost, Description: "context saved"}
	return r, now + cost
}

// RestoreContext restores CPU registers and process state to their
// pre-interrupt values. Same cost as SaveContext.
func RestoreContext(now, cost int64) (trace.Record, int64) {
	r := trace.Record{Time: now, Duration: cost, Description: "context restored"}
	return r, now + cost
}

// LocateVector computes the vector table address for interrupt n. The
// address is display-only (AddrBase + n*VectorEntrySize); no simulated
// memory is indexed. 1 tick.
func LocateVector(now int64, n int) (trace.Record, int64) {
	addr := AddrBase + n*VectorEntrySize
	r := trace.Record{
		Time:        now,
		Duration:    1,
		Description: fmt.Sprintf("find vector %d in memory position 0x%04X", n, addr),
	}
	return r, now + 1
}

// LoadHandlerAddress loads vectors[n] into the PC. 1 tick. Fails with
// OutOfRangeError when n is beyond the loaded vector table.
func LoadHandlerAddress(now int64, n int, vectors []string) (trace.Record, int64, error) {
	if n < 0 || n >= len(vectors) {
		return trace.Record{}, now, &OutOfRangeError{Table: "vector", Index: n, Limit: len(vectors)}
	}
	r := trace.Record{
		Time:        now,
		Duration:    1,
		Description: fmt.Sprintf("load address %s into the PC", vectors[n]),
	}
	return r, now + 1, nil
}

// RunISR executes the interrupt service routine for device. Cost comes
// from the delay table. kind is "SYSCALL" or "END_IO". Fails with
// OutOfRangeError when device is beyond the loaded delay table.
func RunISR(now int64, device int, delays []int64, kind string) (trace.Record, int64, error) {
	if device < 0 || device >= len(delays) {
		return trace.Record{}, now, &OutOfRangeError{Table: "delay", Index: device, Limit: len(delays)}
	}
	cost := delays[device]
	r := trace.Record{
		Time:        now,
		Duration:    cost,
		Description: fmt.Sprintf("%s: run the ISR", kind),
	}
	return r, now + cost, nil
}

// ReturnFromInterrupt executes the IRET instruction. 1 tick.
func ReturnFromInterrupt(now int64) (trace.Record, int64) {
	r := trace.Record{Time: now, Duration: 1, Description: "IRET"}
	return r, now + 1
}

// SwitchToUserMode flips the mode bit back to user. 1 tick.
func SwitchToUserMode(now int64) (trace.Record, int64) {
	r := trace.Record{Time: now, Duration: 1, Description: "switch to user mode"}
	return r, now + 1
}

// Boilerplate runs the fixed interrupt entry sequence for interrupt n:
// kernel-mode switch, context save, vector lookup, handler-address load.
// 13 ticks with the default context-save cost. On an out-of-range vector the
// records emitted so far are returned alongside the error; the caller is
// responsible for logging the error line and running the exit sequence.
func Boilerplate(now int64, n int, cfg Config, vectors []string) ([]trace.Record, int64, error) {
	records := make([]trace.Record, 0, 4)

	r, now := SwitchToKernelMode(now)
	records = append(records, r)
	r, now = SaveContext(now, cfg.ContextSaveTicks)
	records = append(records, r)
	r, now = LocateVector(now, n)
	records = append(records, r)

	r, now, err := LoadHandlerAddress(now, n, vectors)
	if err != nil {
		return records, now, err
	}
	records = append(records, r)
	return records, now, nil
}

// ExitSequence runs the fixed handler exit: IRET, context restore, switch to
// user mode. 12 ticks with the default context-save cost.
func ExitSequence(now int64, cfg Config) ([]trace.Record, int64) {
	records := make([]trace.Record, 0, 3)

	r, now := ReturnFromInterrupt(now)
	records = append(records, r)
	r, now = RestoreContext(now, cfg.ContextSaveTicks)
	records = append(records, r)
	r, now = SwitchToUserMode(now)
	records = append(records, r)
	return records, now
}
