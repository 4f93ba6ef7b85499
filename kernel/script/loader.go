// Package script loads simulation inputs (vector table, device delays,
// external-file catalog, trace script) and parses script lines into
// executable activities. Missing or unreadable files are startup errors;
// the caller aborts before any kernel state exists.
package script

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kernel-sim/kernel-sim/kernel"
)

// readLines returns the non-empty lines of a text file in order.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// LoadVectorTable reads the interrupt vector table: one symbolic handler
// address per line, index = interrupt number.
func LoadVectorTable(path string) ([]string, error) {
	return readLines(path)
}

// LoadDelayTable reads the device delay table: one non-negative ISR
// duration per line, index = device number.
func LoadDelayTable(path string) ([]int64, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	delays := make([]int64, 0, len(lines))
	for i, line := range lines {
		d, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("delay table %s line %d: %q is not an integer", path, i+1, line)
		}
		if d < 0 {
			return nil, fmt.Errorf("delay table %s line %d: negative delay %d", path, i+1, d)
		}
		delays = append(delays, d)
	}
	return delays, nil
}

// LoadCatalog reads the external-file catalog: "program_name,size_in_mb"
// per line, the programs available to EXEC.
func LoadCatalog(path string) ([]kernel.ExternalFile, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	catalog := make([]kernel.ExternalFile, 0, len(lines))
	for i, line := range lines {
		name, sizeField, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("catalog %s line %d: expected name,size_mb, got %q", path, i+1, line)
		}
		size, err := strconv.Atoi(strings.TrimSpace(sizeField))
		if err != nil {
			return nil, fmt.Errorf("catalog %s line %d: size %q is not an integer", path, i+1, sizeField)
		}
		catalog = append(catalog, kernel.ExternalFile{
			ProgramName: strings.TrimSpace(name),
			SizeMB:      size,
		})
	}
	return catalog, nil
}

// ReadScript reads the raw trace-script lines, in order. Parsing into
// activities happens later, record by record, so malformed lines surface
// as warnings during the run instead of startup failures.
func ReadScript(path string) ([]string, error) {
	return readLines(path)
}
