package kernel

// ProcState is the lifecycle state of a simulated process.
type ProcState string

const (
	StateRunning    ProcState = "running"
	StateReady      ProcState = "ready"
	StateWaiting    ProcState = "waiting"
	StateTerminated ProcState = "terminated"
)

// Process priority markers. A forked child is marked distinct from its
// parent; dequeue order remains plain FIFO regardless (see ReadyQueue).
const (
	PriorityNormal = 0
	PriorityChild  = 1
)

// NoParent is the PPID of the root process, which has no parent.
const NoParent = -1

// PCB is the process control block: the record of one simulated process's
// identity, memory binding, and state.
type PCB struct {
	PID         int
	PPID        int // NoParent for init
	ProgramName string
	PartitionID int
	SizeMB      int
	State       ProcState
	Priority    int
}

// ExternalFile is one entry of the read-only program catalog: a program
// available on simulated disk for EXEC to load.
type ExternalFile struct {
	ProgramName string
	SizeMB      int
}

// ProcessTable maps PIDs to PCBs and assigns new PIDs monotonically.
// Entries are never removed; termination is a state flag, so historical
// processes remain inspectable in the final snapshot.
type ProcessTable struct {
	procs    []*PCB
	byPID    map[int]*PCB
	children map[int][]int // parent PID -> child PIDs in creation order
	nextPID  int
}

// NewProcessTable creates a table holding only the root ("init") process:
// PID 0, no parent, bound to initPartition. The next assigned PID is 1.
func NewProcessTable(initPartition, initSizeMB int) *ProcessTable {
	pt := &ProcessTable{
		byPID:    make(map[int]*PCB),
		children: make(map[int][]int),
		nextPID:  1,
	}
	root := &PCB{
		PID:         0,
		PPID:        NoParent,
		ProgramName: PartitionInit,
		PartitionID: initPartition,
		SizeMB:      initSizeMB,
		State:       StateRunning,
		Priority:    PriorityNormal,
	}
	pt.procs = append(pt.procs, root)
	pt.byPID[root.PID] = root
	return pt
}

// Get returns the PCB for pid, or nil when no such process exists.
func (pt *ProcessTable) Get(pid int) *PCB {
	return pt.byPID[pid]
}

// Clone copies the parent's PCB into a new process with the next unused PID.
// The child keeps the parent's program, partition, and size; its PPID points
// at the parent, its priority is the child marker, and it starts ready.
// Returns nil when the parent does not exist.
func (pt *ProcessTable) Clone(parentPID int) *PCB {
	parent := pt.byPID[parentPID]
	if parent == nil {
		return nil
	}
	child := *parent
	child.PID = pt.nextPID
	child.PPID = parentPID
	child.Priority = PriorityChild
	child.State = StateReady
	pt.nextPID++

	pt.procs = append(pt.procs, &child)
	pt.byPID[child.PID] = &child
	pt.children[parentPID] = append(pt.children[parentPID], child.PID)
	return &child
}

// Children returns the PIDs forked by parentPID, in creation order.
func (pt *ProcessTable) Children(parentPID int) []int {
	return pt.children[parentPID]
}

// LatestChild returns the most recently forked child of parentPID,
// or -1 when it has none.
func (pt *ProcessTable) LatestChild(parentPID int) int {
	kids := pt.children[parentPID]
	if len(kids) == 0 {
		return -1
	}
	return kids[len(kids)-1]
}

// IsChildOf reports whether pid's parent is parentPID.
func (pt *ProcessTable) IsChildOf(pid, parentPID int) bool {
	p := pt.byPID[pid]
	return p != nil && p.PPID == parentPID
}

// Terminate marks pid as terminated. The PCB stays in the table.
func (pt *ProcessTable) Terminate(pid int) {
	if p := pt.byPID[pid]; p != nil {
		p.State = StateTerminated
	}
}

// Items returns the PCBs in creation order for iteration.
// Callers MUST NOT append to or reslice the returned slice.
func (pt *ProcessTable) Items() []*PCB {
	return pt.procs
}

// Len returns the number of processes ever created, including terminated ones.
func (pt *ProcessTable) Len() int {
	return len(pt.procs)
}
