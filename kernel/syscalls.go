package kernel

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kernel-sim/kernel-sim/kernel/trace"
)

// Recoverable error line wording. These appear verbatim in the execution
// trace, so they must stay stable.
const (
	errProcessNotFound    = "ERROR: Process not found"
	errProgramNotFound    = "ERROR: Program not found"
	errNoPartition        = "ERROR: No partition available"
	schedulerCalled       = "scheduler called"
	pcbClonedForChild     = "PCB cloned for child process"
	pcbUpdatedWithNewInfo = "PCB updated with new program information"
)

// errorLine appends a 1-tick error record at the current time. Recoverable
// failures are logged into the trace and the simulation moves on (the caller
// still runs the exit sequence so the clock stays consistent).
func (s *Simulator) errorLine(desc string) {
	logrus.Warnf("[tick %07d] %s", s.Clock, desc)
	s.Trace.Append(trace.Record{Time: s.Clock, Duration: 1, Description: desc})
	s.Clock++
}

// enterHandler runs the interrupt boilerplate for vector n and appends its
// records. On an out-of-range vector it logs the error line; the returned
// bool reports whether the handler body may proceed.
func (s *Simulator) enterHandler(n int) bool {
	records, now, err := Boilerplate(s.Clock, n, s.Config, s.Vectors)
	s.Trace.AppendAll(records)
	s.Clock = now
	if err != nil {
		s.errorLine("ERROR: " + err.Error())
		return false
	}
	return true
}

// exitHandler runs the common IRET / restore / user-mode exit sequence.
func (s *Simulator) exitHandler() {
	records, now := ExitSequence(s.Clock, s.Config)
	s.Trace.AppendAll(records)
	s.Clock = now
}

// HandleFork services the FORK system call (vector 2) on behalf of callerPID.
// The caller's PCB is cloned verbatim under the next unused PID, marked as a
// child, set ready, and enqueued. Scheduling is logged at zero cost: the
// decision is recorded but does not change which process is current.
func (s *Simulator) HandleFork(callerPID int) {
	logrus.Debugf("[tick %07d] FORK from pid %d", s.Clock, callerPID)

	ok := s.enterHandler(ForkVector)
	if !ok {
		s.exitHandler()
		return
	}

	if s.Processes.Get(callerPID) == nil {
		s.errorLine(errProcessNotFound)
		s.exitHandler()
		return
	}

	child := s.Processes.Clone(callerPID)
	s.ReadyQ.Enqueue(child.PID)

	s.Trace.Append(trace.Record{Time: s.Clock, Duration: 1, Description: pcbClonedForChild})
	s.Clock++
	s.Trace.Append(trace.Record{Time: s.Clock, Duration: 0, Description: schedulerCalled})

	s.exitHandler()
	s.snapshotStatus("FORK")
}

// HandleExec services the EXEC system call (vector 3): look the program up
// on simulated disk, allocate a partition first-fit, charge the loader, and
// rebind the calling process's PCB in place. The PID and parent are
// preserved; only program identity and memory binding change. Failure paths
// mutate nothing.
func (s *Simulator) HandleExec(callerPID int, program string) {
	logrus.Debugf("[tick %07d] EXEC %q from pid %d", s.Clock, program, callerPID)

	ok := s.enterHandler(ExecVector)
	if !ok {
		s.exitHandler()
		return
	}

	pcb := s.Processes.Get(callerPID)
	if pcb == nil {
		s.errorLine(errProcessNotFound)
		s.exitHandler()
		return
	}

	sizeMB, found := s.lookupProgram(program)
	if !found {
		s.errorLine(errProgramNotFound)
		s.exitHandler()
		return
	}

	partitionID := s.Partitions.FirstFit(sizeMB)
	if partitionID == -1 {
		s.errorLine(errNoPartition)
		s.exitHandler()
		return
	}
	s.Partitions.Occupy(partitionID, program)

	loaderTicks := int64(sizeMB) * s.Config.LoaderTicksPerMB
	s.Trace.Append(trace.Record{
		Time:        s.Clock,
		Duration:    loaderTicks,
		Description: fmt.Sprintf("loading %s from disk to partition %d", program, partitionID),
	})
	s.Clock += loaderTicks

	s.Trace.Append(trace.Record{
		Time:        s.Clock,
		Duration:    1,
		Description: fmt.Sprintf("partition %d marked as occupied", partitionID),
	})
	s.Clock++

	s.Trace.Append(trace.Record{Time: s.Clock, Duration: 3, Description: pcbUpdatedWithNewInfo})
	s.Clock += 3
	pcb.ProgramName = program
	pcb.PartitionID = partitionID
	pcb.SizeMB = sizeMB

	s.Trace.Append(trace.Record{Time: s.Clock, Duration: 0, Description: schedulerCalled})

	s.exitHandler()
	s.snapshotStatus("EXEC " + program)
}

// HandleInterrupt services a generic SYSCALL or END_IO for a device:
// boilerplate, the device's ISR, then the exit sequence.
func (s *Simulator) HandleInterrupt(device int, kind string) {
	logrus.Debugf("[tick %07d] %s device %d", s.Clock, kind, device)

	ok := s.enterHandler(device)
	if !ok {
		s.exitHandler()
		return
	}

	record, now, err := RunISR(s.Clock, device, s.Delays, kind)
	if err != nil {
		s.errorLine("ERROR: " + err.Error())
		s.exitHandler()
		return
	}
	s.Trace.Append(record)
	s.Clock = now

	s.exitHandler()
}

// SimulateCPU charges a user-mode CPU burst of the given duration.
func (s *Simulator) SimulateCPU(duration int64) {
	s.Trace.Append(trace.Record{Time: s.Clock, Duration: duration, Description: "CPU execution"})
	s.Clock += duration
}

// lookupProgram finds a program in the external-file catalog.
func (s *Simulator) lookupProgram(name string) (sizeMB int, found bool) {
	for _, f := range s.Catalog {
		if f.ProgramName == name {
			return f.SizeMB, true
		}
	}
	return 0, false
}
