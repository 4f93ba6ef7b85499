package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ClockNonDecreasingAcrossRecords(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		CPUBurst{Duration: 50},
		ForkCall{},
		ExecCall{Program: "prog2"},
		DeviceInterrupt{Kind: "SYSCALL", Device: 0},
		DeviceInterrupt{Kind: "END_IO", Device: 1},
	})

	last := int64(0)
	for i, r := range s.Trace.Records() {
		require.GreaterOrEqualf(t, r.Time, last, "record %d goes back in time", i)
		last = r.Time + r.Duration
	}
	assert.Equal(t, last, s.Clock)
}

func TestRun_IfChildRunsAsLatestChild(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		ForkCall{},
		IfChild{PID: 0},
		ExecCall{Program: "prog1"},
		EndIf{},
	})

	// The exec rebinds the child (pid 1), not the parent.
	assert.Equal(t, "prog1", s.Processes.Get(1).ProgramName)
	assert.Equal(t, "init", s.Processes.Get(0).ProgramName)
	assert.Equal(t, 0, s.CurrentPID, "ENDIF restores the pre-block process")
}

func TestRun_IfParentRunsAsNamedPID(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		ForkCall{},
		IfParent{PID: 0},
		ExecCall{Program: "prog1"},
		EndIf{},
	})

	assert.Equal(t, "prog1", s.Processes.Get(0).ProgramName)
	assert.Equal(t, "init", s.Processes.Get(1).ProgramName)
}

func TestRun_IfChildWithoutChildren_SkipsBlock(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		IfChild{PID: 0}, // pid 0 never forked
		CPUBurst{Duration: 500},
		ExecCall{Program: "prog1"},
		EndIf{},
		CPUBurst{Duration: 7},
	})

	// The skipped block consumed no clock and mutated nothing.
	assert.Equal(t, int64(7), s.Clock)
	assert.Equal(t, "init", s.Processes.Get(0).ProgramName)
}

func TestRun_IfParentUnknownPID_SkipsBlock(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		IfParent{PID: 42},
		CPUBurst{Duration: 500},
		EndIf{},
	})

	assert.Equal(t, int64(0), s.Clock)
}

func TestRun_StrayEndIf_IsNoOp(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		EndIf{},
		CPUBurst{Duration: 3},
	})

	assert.Equal(t, int64(3), s.Clock)
	assert.Equal(t, 0, s.CurrentPID)
}

func TestRun_MalformedRecord_ConsumesNoClock(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		Noop{Line: "BOGUS"},
		CPUBurst{Duration: 10},
	})

	assert.Equal(t, int64(10), s.Clock)
	require.Equal(t, 1, s.Trace.Len())
}

func TestRun_AppendsFinalState(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{ForkCall{}, ExecCall{Program: "prog1"}})

	partitions := s.Trace.FinalPartitions()
	require.Len(t, partitions, 6)
	assert.Equal(t, "prog1", partitions[0].Occupant)
	assert.Equal(t, "init", partitions[5].Occupant)

	processes := s.Trace.FinalProcesses()
	require.Len(t, processes, 2)
	assert.Equal(t, 0, processes[0].PID)
	assert.Equal(t, -1, processes[0].PPID)
	assert.Equal(t, 0, processes[1].PPID)
	assert.Equal(t, "ready", processes[1].State)
}

func TestRun_SnapshotsAfterForkAndExec(t *testing.T) {
	s := newTestSimulator(nil)

	s.Run([]Activity{
		CPUBurst{Duration: 5},
		ForkCall{},
		ExecCall{Program: "prog1"},
	})

	snaps := s.Trace.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, "FORK", snaps[0].Activity)
	assert.Len(t, snaps[0].Processes, 2)
	assert.Equal(t, "EXEC prog1", snaps[1].Activity)
}

func TestNewSimulator_InitOnReadyQueue(t *testing.T) {
	s := newTestSimulator(nil)

	assert.Equal(t, []int{0}, s.ReadyQ.Items())
	assert.Equal(t, 0, s.CurrentPID)
	assert.Equal(t, int64(0), s.Clock)
}

func TestNextProcess_FIFODespitePriority(t *testing.T) {
	// Children carry the child-priority marker, but dispatch order is
	// plain insertion order.
	s := newTestSimulator(nil)
	s.HandleFork(0)
	s.HandleFork(0)

	assert.Equal(t, 0, s.NextProcess())
	assert.Equal(t, 1, s.NextProcess())
	assert.Equal(t, StateRunning, s.Processes.Get(1).State)
	assert.Equal(t, 2, s.NextProcess())
	assert.Equal(t, -1, s.NextProcess())
}

func TestTerminateProcess_RemovesFromReadyQueue(t *testing.T) {
	s := newTestSimulator(nil)
	s.HandleFork(0)

	s.TerminateProcess(1)

	assert.Equal(t, []int{0}, s.ReadyQ.Items())
	assert.Equal(t, StateTerminated, s.Processes.Get(1).State)
	assert.Equal(t, 2, s.Processes.Len(), "terminated PCBs stay in the table")
}

func TestRun_IsolatedSimulators_DoNotInteract(t *testing.T) {
	a := newTestSimulator(nil)
	b := newTestSimulator(nil)

	a.Run([]Activity{ForkCall{}, ForkCall{}})
	b.Run([]Activity{CPUBurst{Duration: 9}})

	assert.Equal(t, 3, a.Processes.Len())
	assert.Equal(t, 1, b.Processes.Len())
	assert.Equal(t, int64(9), b.Clock)
}
