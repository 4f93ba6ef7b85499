package kernel

// Timing and addressing constants shared by every run. Context-save cost and
// loader cost are tunable through Config; the rest never vary.
const (
	AddrBase        = 0 // base address of the vector table in simulated memory
	VectorEntrySize = 2 // bytes per vector table entry

	DefaultContextSaveTicks = 10 // context save/restore duration
	DefaultLoaderTicksPerMB = 15 // program load cost per megabyte

	// Interrupt vectors claimed by the process-management syscalls.
	ForkVector = 2
	ExecVector = 3
)

// Config groups the tunable timing parameters of a simulation.
type Config struct {
	ContextSaveTicks int64 // ticks spent saving or restoring CPU context
	LoaderTicksPerMB int64 // ticks per MB when loading a program from disk
}

// NewConfig builds a Config from explicit values.
func NewConfig(contextSaveTicks, loaderTicksPerMB int64) Config {
	return Config{
		ContextSaveTicks: contextSaveTicks,
		LoaderTicksPerMB: loaderTicksPerMB,
	}
}

// DefaultConfig returns the standard timing parameters (10-tick context
// save/restore, 15 ticks per MB of program load).
func DefaultConfig() Config {
	return NewConfig(DefaultContextSaveTicks, DefaultLoaderTicksPerMB)
}
