// Package kernel provides the core discrete-event simulation engine for the
// OS interrupt and system-call simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation core:
//   - pcb.go: the process control block, process table, and parent/child index
//   - interrupt.go: the timed interrupt primitives (boilerplate, ISR, IRET)
//   - simulator.go: the engine that walks a trace script and owns all state
//
// # Architecture
//
// The kernel package owns every piece of mutable simulation state (partition
// table, process table, ready queue) inside a single Simulator value; there
// is no package-level state, so engines can be built and run in parallel
// tests. Supporting concerns live in sub-packages:
//   - kernel/trace/: structured execution-trace records and rendering
//   - kernel/script/: input loading and trace-script parsing
//
// All timed primitives are pure functions of (now, inputs) returning a trace
// record and the advanced clock, so event ordering is provable from the call
// sequence alone.
package kernel
