package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kernel-sim/kernel-sim/kernel"
)

// Scenario is the top-level simulation input bundle, loaded from YAML via
// LoadScenario(path). It replaces the four separate text files with one
// self-describing document; the trace script itself stays a separate file
// referenced by path.
type Scenario struct {
	Vectors       []string           `yaml:"vectors"`
	Delays        []int64            `yaml:"delays"`
	ExternalFiles []ExternalFileSpec `yaml:"external_files"`
	Partitions    []PartitionSpec    `yaml:"partitions,omitempty"`
	Trace         string             `yaml:"trace"`
}

// ExternalFileSpec is one catalog entry of the scenario.
type ExternalFileSpec struct {
	Program string `yaml:"program"`
	SizeMB  int    `yaml:"size_mb"`
}

// PartitionSpec is one memory partition of the scenario layout. An empty
// code means free; exactly one partition should carry code "init".
type PartitionSpec struct {
	ID     int    `yaml:"id"`
	SizeMB int    `yaml:"size_mb"`
	Code   string `yaml:"code,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks scenario-level invariants that would otherwise surface as
// confusing mid-run behavior.
func (sc *Scenario) Validate() error {
	if len(sc.Vectors) == 0 {
		return fmt.Errorf("vector table is empty")
	}
	for i, d := range sc.Delays {
		if d < 0 {
			return fmt.Errorf("delay %d is negative (%d)", i, d)
		}
	}
	for i, p := range sc.Partitions {
		if p.SizeMB <= 0 {
			return fmt.Errorf("partition %d has non-positive size %d MB", p.ID, p.SizeMB)
		}
		for _, q := range sc.Partitions[:i] {
			if q.ID == p.ID {
				return fmt.Errorf("duplicate partition id %d", p.ID)
			}
		}
	}
	if sc.Trace == "" {
		return fmt.Errorf("trace script path is empty")
	}
	return nil
}

// Catalog converts the scenario's external files into kernel catalog entries.
func (sc *Scenario) Catalog() []kernel.ExternalFile {
	catalog := make([]kernel.ExternalFile, 0, len(sc.ExternalFiles))
	for _, f := range sc.ExternalFiles {
		catalog = append(catalog, kernel.ExternalFile{ProgramName: f.Program, SizeMB: f.SizeMB})
	}
	return catalog
}

// Layout converts the scenario's partitions into a kernel layout.
// Returns nil when the scenario omits partitions, selecting the default.
func (sc *Scenario) Layout() []kernel.Partition {
	if len(sc.Partitions) == 0 {
		return nil
	}
	layout := make([]kernel.Partition, 0, len(sc.Partitions))
	for _, p := range sc.Partitions {
		code := p.Code
		if code == "" {
			code = kernel.PartitionFree
		}
		layout = append(layout, kernel.Partition{ID: p.ID, SizeMB: p.SizeMB, Code: code})
	}
	return layout
}
