package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel-sim/kernel-sim/kernel"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVectorTable(t *testing.T) {
	path := writeFile(t, "vectors.txt", "0x01E3\n0x029C\n\n0x0695\n")

	vectors, err := LoadVectorTable(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"0x01E3", "0x029C", "0x0695"}, vectors)
}

func TestLoadVectorTable_MissingFile(t *testing.T) {
	_, err := LoadVectorTable(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestLoadDelayTable(t *testing.T) {
	path := writeFile(t, "delays.txt", "100\n250\n0\n")

	delays, err := LoadDelayTable(path)

	require.NoError(t, err)
	assert.Equal(t, []int64{100, 250, 0}, delays)
}

func TestLoadDelayTable_RejectsNonInteger(t *testing.T) {
	path := writeFile(t, "delays.txt", "100\nfast\n")

	_, err := LoadDelayTable(path)

	assert.ErrorContains(t, err, "not an integer")
}

func TestLoadDelayTable_RejectsNegative(t *testing.T) {
	path := writeFile(t, "delays.txt", "100\n-5\n")

	_, err := LoadDelayTable(path)

	assert.ErrorContains(t, err, "negative delay")
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "external_files.txt", "prog1,10\nprog2, 25\n")

	catalog, err := LoadCatalog(path)

	require.NoError(t, err)
	assert.Equal(t, []kernel.ExternalFile{
		{ProgramName: "prog1", SizeMB: 10},
		{ProgramName: "prog2", SizeMB: 25},
	}, catalog)
}

func TestLoadCatalog_RejectsMissingSize(t *testing.T) {
	path := writeFile(t, "external_files.txt", "prog1\n")

	_, err := LoadCatalog(path)

	assert.ErrorContains(t, err, "expected name,size_mb")
}

func TestReadScript_KeepsLineOrder(t *testing.T) {
	path := writeFile(t, "trace.txt", "CPU,50\nFORK,0\nEXEC prog1,0\n")

	lines, err := ReadScript(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"CPU,50", "FORK,0", "EXEC prog1,0"}, lines)
}

func TestLoadScenario(t *testing.T) {
	content := `
vectors: ["0x01E3", "0x029C", "0x0695", "0x042B"]
delays: [100, 250]
external_files:
  - program: prog1
    size_mb: 10
partitions:
  - id: 1
    size_mb: 15
  - id: 2
    size_mb: 2
    code: init
trace: trace.txt
`
	path := writeFile(t, "scenario.yaml", content)

	sc, err := LoadScenario(path)

	require.NoError(t, err)
	assert.Len(t, sc.Vectors, 4)
	assert.Equal(t, []int64{100, 250}, sc.Delays)
	assert.Equal(t, []kernel.ExternalFile{{ProgramName: "prog1", SizeMB: 10}}, sc.Catalog())
	assert.Equal(t, []kernel.Partition{
		{ID: 1, SizeMB: 15, Code: kernel.PartitionFree},
		{ID: 2, SizeMB: 2, Code: kernel.PartitionInit},
	}, sc.Layout())
	assert.Equal(t, "trace.txt", sc.Trace)
}

func TestLoadScenario_DefaultLayoutWhenOmitted(t *testing.T) {
	content := "vectors: [\"0x01E3\"]\ntrace: trace.txt\n"
	path := writeFile(t, "scenario.yaml", content)

	sc, err := LoadScenario(path)

	require.NoError(t, err)
	assert.Nil(t, sc.Layout())
}

func TestScenarioValidate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		sc      Scenario
		wantErr string
	}{
		{"empty vectors", Scenario{Trace: "t"}, "vector table is empty"},
		{"negative delay", Scenario{Vectors: []string{"a"}, Delays: []int64{-1}, Trace: "t"}, "negative"},
		{"bad partition size", Scenario{Vectors: []string{"a"}, Partitions: []PartitionSpec{{ID: 1, SizeMB: 0}}, Trace: "t"}, "non-positive size"},
		{"duplicate partition id", Scenario{Vectors: []string{"a"}, Partitions: []PartitionSpec{{ID: 1, SizeMB: 5}, {ID: 1, SizeMB: 6}}, Trace: "t"}, "duplicate partition id"},
		{"missing trace", Scenario{Vectors: []string{"a"}}, "trace script path is empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorContains(t, tc.sc.Validate(), tc.wantErr)
		})
	}
}
