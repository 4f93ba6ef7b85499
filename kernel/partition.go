package kernel

import "sort"

// Occupant markers for partitions that do not hold a loaded program.
const (
	PartitionFree = "free"
	PartitionInit = "init"
)

// Partition is one fixed memory slot. Code holds "free", "init" (reserved
// for the root process), or the name of the program loaded into it.
type Partition struct {
	ID     int
	SizeMB int
	Code   string
}

// DefaultPartitions returns the standard fixed layout: five general-purpose
// partitions plus the small partition reserved for init.
func DefaultPartitions() []Partition {
	return []Partition{
		{ID: 1, SizeMB: 40, Code: PartitionFree},
		{ID: 2, SizeMB: 25, Code: PartitionFree},
		{ID: 3, SizeMB: 15, Code: PartitionFree},
		{ID: 4, SizeMB: 10, Code: PartitionFree},
		{ID: 5, SizeMB: 8, Code: PartitionFree},
		{ID: 6, SizeMB: 2, Code: PartitionInit},
	}
}

// PartitionTable is the fixed set of memory partitions. The set never grows
// or shrinks after construction; only occupancy changes.
type PartitionTable struct {
	partitions []Partition
}

// NewPartitionTable builds a table from an explicit layout. Passing nil
// selects the default layout. The table is kept in ascending ID order no
// matter how the layout was written, so first-fit scan order is stable.
func NewPartitionTable(layout []Partition) *PartitionTable {
	if layout == nil {
		layout = DefaultPartitions()
	}
	partitions := make([]Partition, len(layout))
	copy(partitions, layout)
	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].ID < partitions[j].ID
	})
	return &PartitionTable{partitions: partitions}
}

// FirstFit scans partitions in ascending ID order and returns the ID of
// the first free partition whose capacity is at least sizeMB, or -1 when
// none qualifies. Pure query: occupancy is mutated only via Occupy.
// Ties always break toward the lowest ID so traces stay reproducible.
func (pt *PartitionTable) FirstFit(sizeMB int) int {
	for _, p := range pt.partitions {
		if p.Code == PartitionFree && p.SizeMB >= sizeMB {
			return p.ID
		}
	}
	return -1
}

// Occupy marks the partition with the given ID as holding program.
// Occupancy is never reclaimed in this model, so the transition is
// one-way: free -> program name.
func (pt *PartitionTable) Occupy(id int, program string) {
	for i := range pt.partitions {
		if pt.partitions[i].ID == id {
			pt.partitions[i].Code = program
			return
		}
	}
}

// Get returns a copy of the partition with the given ID and whether it exists.
func (pt *PartitionTable) Get(id int) (Partition, bool) {
	for _, p := range pt.partitions {
		if p.ID == id {
			return p, true
		}
	}
	return Partition{}, false
}

// InitPartition returns the ID of the partition reserved for init, or -1
// when the layout has none.
func (pt *PartitionTable) InitPartition() int {
	for _, p := range pt.partitions {
		if p.Code == PartitionInit {
			return p.ID
		}
	}
	return -1
}

// Items returns the partitions in table order for iteration.
// The returned slice is the table's internal storage -- callers may iterate
// over it but MUST NOT mutate it; use Occupy for occupancy changes.
func (pt *PartitionTable) Items() []Partition {
	return pt.partitions
}

// Len returns the number of partitions in the table.
func (pt *PartitionTable) Len() int {
	return len(pt.partitions)
}
