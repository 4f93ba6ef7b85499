package kernel

// Shared helpers for engine tests.

// defaultTestCatalog lists the programs available on simulated disk in tests.
var defaultTestCatalog = []ExternalFile{
	{ProgramName: "prog1", SizeMB: 10},
	{ProgramName: "prog2", SizeMB: 25},
	{ProgramName: "huge", SizeMB: 99},
}

// newTestSimulator builds a simulator with the shared test vector table,
// two devices (delays 5 and 100), the default test catalog, and the given
// partition layout (nil = default layout).
func newTestSimulator(layout []Partition) *Simulator {
	return NewSimulator(testVectors, []int64{5, 100}, defaultTestCatalog, layout, DefaultConfig())
}

// descriptions extracts the description field of every trace record, in order.
func descriptions(s *Simulator) []string {
	records := s.Trace.Records()
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Description)
	}
	return out
}
