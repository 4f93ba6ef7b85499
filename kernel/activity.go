package kernel

import "github.com/sirupsen/logrus"

// Activity is one record of the trace script. Each record advances the
// simulation when executed; branch-control records only steer which process
// is considered current.
type Activity interface {
	Execute(*Simulator)
}

// CPUBurst is a user-mode CPU execution of fixed duration.
type CPUBurst struct {
	Duration int64
}

func (a CPUBurst) Execute(s *Simulator) {
	s.SimulateCPU(a.Duration)
}

// ForkCall invokes the FORK syscall on behalf of the current process.
type ForkCall struct{}

func (a ForkCall) Execute(s *Simulator) {
	s.HandleFork(s.CurrentPID)
}

// ExecCall invokes the EXEC syscall for a named program on behalf of the
// current process.
type ExecCall struct {
	Program string
}

func (a ExecCall) Execute(s *Simulator) {
	s.HandleExec(s.CurrentPID, a.Program)
}

// DeviceInterrupt is a generic SYSCALL or END_IO interrupt for a device.
type DeviceInterrupt struct {
	Kind   string // "SYSCALL" or "END_IO"
	Device int
}

func (a DeviceInterrupt) Execute(s *Simulator) {
	s.HandleInterrupt(a.Device, a.Kind)
}

// IfChild starts a block that runs only as the most recently forked child
// of PID. When PID has no children the block is skipped.
type IfChild struct {
	PID int
}

func (a IfChild) Execute(s *Simulator) {
	s.beginChildBranch(a.PID)
}

// IfParent starts a block that runs as process PID itself.
type IfParent struct {
	PID int
}

func (a IfParent) Execute(s *Simulator) {
	s.beginParentBranch(a.PID)
}

// EndIf closes the innermost IF_CHILD/IF_PARENT block and restores the
// previously current process.
type EndIf struct{}

func (a EndIf) Execute(s *Simulator) {
	s.endBranch()
}

// Noop is a malformed script record: reported once, then ignored.
type Noop struct {
	Line string
}

func (a Noop) Execute(s *Simulator) {
	logrus.Warnf("skipping malformed trace record: %q", a.Line)
}
