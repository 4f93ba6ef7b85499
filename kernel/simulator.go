// kernel/simulator.go
package kernel

import (
	"github.com/sirupsen/logrus"

	"github.com/kernel-sim/kernel-sim/kernel/trace"
)

// Simulator is the core object that holds simulation time, kernel state, and
// the script-execution loop. All tables are owned by one Simulator value;
// there is no package-level state, so independent simulations never interact.
type Simulator struct {
	Clock  int64
	Config Config

	// Immutable input tables, loaded once before the run starts.
	Vectors []string       // index = interrupt number, value = handler address
	Delays  []int64        // index = device number, value = ISR ticks
	Catalog []ExternalFile // programs available to EXEC

	Partitions *PartitionTable
	Processes  *ProcessTable
	ReadyQ     *ReadyQueue
	Trace      *trace.ExecutionTrace

	// CurrentPID is the process on whose behalf FORK/EXEC records run.
	// It changes only through IF_CHILD/IF_PARENT bracketing, never through
	// the ready queue: scheduling is logged, not enacted.
	CurrentPID int

	// Branch guard state for IF_CHILD / IF_PARENT / ENDIF.
	guardActive bool
	skipping    bool
	savedPID    int
}

// NewSimulator builds a simulator with the given input tables and timing
// config. A nil partition layout selects the default fixed layout. The root
// ("init") process occupies the reserved partition and starts on the ready
// queue; PIDs assigned by fork start at 1.
func NewSimulator(vectors []string, delays []int64, catalog []ExternalFile, layout []Partition, cfg Config) *Simulator {
	partitions := NewPartitionTable(layout)

	initPartition := partitions.InitPartition()
	initSize := 0
	if p, ok := partitions.Get(initPartition); ok {
		initSize = p.SizeMB
	}

	s := &Simulator{
		Clock:      0,
		Config:     cfg,
		Vectors:    vectors,
		Delays:     delays,
		Catalog:    catalog,
		Partitions: partitions,
		Processes:  NewProcessTable(initPartition, initSize),
		ReadyQ:     &ReadyQueue{},
		Trace:      trace.NewExecutionTrace(),
		CurrentPID: 0,
	}
	s.ReadyQ.Enqueue(0)
	return s
}

// Run executes the script records strictly in order on the single logical
// timeline, then appends the final-state snapshot to the trace. Records
// inside a skipped IF block are not executed and consume no clock.
func (s *Simulator) Run(script []Activity) {
	for _, a := range script {
		if s.skipping {
			if _, ok := a.(EndIf); !ok {
				logrus.Debugf("[tick %07d] skipping %T in inactive branch", s.Clock, a)
				continue
			}
		}
		logrus.Debugf("[tick %07d] executing %T", s.Clock, a)
		a.Execute(s)
	}
	s.finalize()
	logrus.Infof("[tick %07d] simulation ended: %d processes, %d trace records",
		s.Clock, s.Processes.Len(), s.Trace.Len())
}

// NextProcess dequeues the next runnable PID, marking it running.
// Dequeue order is plain FIFO insertion order; the child-priority marker in
// the PCB is recorded but does not reorder the queue.
// Returns -1 when the ready queue is empty.
func (s *Simulator) NextProcess() int {
	pid := s.ReadyQ.Dequeue()
	if pid == -1 {
		return -1
	}
	if pcb := s.Processes.Get(pid); pcb != nil {
		pcb.State = StateRunning
	}
	return pid
}

// TerminateProcess flags pid as terminated and drops it from the ready
// queue. The PCB stays in the process table for the final snapshot.
func (s *Simulator) TerminateProcess(pid int) {
	s.Processes.Terminate(pid)
	s.ReadyQ.Remove(pid)
}

// beginChildBranch enters an IF_CHILD block: the current process becomes the
// most recently forked child of pid. With no such child the whole block is
// skipped.
func (s *Simulator) beginChildBranch(pid int) {
	s.savedPID = s.CurrentPID
	s.guardActive = true

	child := s.Processes.LatestChild(pid)
	if child == -1 {
		logrus.Debugf("[tick %07d] IF_CHILD %d: no child, skipping block", s.Clock, pid)
		s.skipping = true
		return
	}
	s.CurrentPID = child
}

// beginParentBranch enters an IF_PARENT block: the current process becomes
// pid itself. An unknown pid skips the block.
func (s *Simulator) beginParentBranch(pid int) {
	s.savedPID = s.CurrentPID
	s.guardActive = true

	if s.Processes.Get(pid) == nil {
		logrus.Debugf("[tick %07d] IF_PARENT %d: unknown pid, skipping block", s.Clock, pid)
		s.skipping = true
		return
	}
	s.CurrentPID = pid
}

// endBranch closes the active IF block and restores the pre-block process.
// A stray ENDIF with no open block is a no-op.
func (s *Simulator) endBranch() {
	if s.guardActive {
		s.CurrentPID = s.savedPID
	}
	s.guardActive = false
	s.skipping = false
}

// snapshotStatus records a PCB-table snapshot after a process-management
// call, for the system-status side channel.
func (s *Simulator) snapshotStatus(activity string) {
	s.Trace.AddSnapshot(trace.Snapshot{
		Time:      s.Clock,
		Activity:  activity,
		Processes: s.processLines(),
	})
}

// finalize appends the end-of-run partition and PCB tables to the trace.
func (s *Simulator) finalize() {
	partitions := make([]trace.PartitionLine, 0, s.Partitions.Len())
	for _, p := range s.Partitions.Items() {
		partitions = append(partitions, trace.PartitionLine{ID: p.ID, SizeMB: p.SizeMB, Occupant: p.Code})
	}
	s.Trace.SetFinalState(partitions, s.processLines())
}

func (s *Simulator) processLines() []trace.ProcessLine {
	lines := make([]trace.ProcessLine, 0, s.Processes.Len())
	for _, p := range s.Processes.Items() {
		lines = append(lines, trace.ProcessLine{
			PID:         p.PID,
			PPID:        p.PPID,
			ProgramName: p.ProgramName,
			PartitionID: p.PartitionID,
			SizeMB:      p.SizeMB,
			State:       string(p.State),
		})
	}
	return lines
}
