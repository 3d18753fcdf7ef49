package cpu

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoFetch/internal/source"
)

// Linux sources read by ProcReader.
const (
	CPUInfoPath        = "/proc/cpuinfo"
	ScalingCurFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"
	TopologyRoot       = "/sys/devices/system/cpu"
)

// ProcReader builds Info from /proc/cpuinfo and sysfs.
type ProcReader struct {
	src          *source.Source
	logicalCores func() int
}

// NewProcReader creates a ProcReader reading through src.
func NewProcReader(src *source.Source) *ProcReader {
	return &ProcReader{
		src:          src,
		logicalCores: runtime.NumCPU,
	}
}

// GetInfo returns CPU information. Both /proc/cpuinfo and the cpu0 scaling
// frequency must be readable, otherwise nothing is returned.
func (r *ProcReader) GetInfo(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	cpuinfo, err := r.src.Text(CPUInfoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}
	scalingCurFreq, err := r.src.Text(ScalingCurFreqPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	fields := source.ScanFields(cpuinfo, ":")

	brand, err := ParseBrand(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	logical, err := countLogical(r.logicalCores)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	frequency, err := ParseFrequency(scalingCurFreq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	return &Info{
		Brand: brand,
		PhysicalCores: PhysicalCores(
			TopologyCoreCounter(r.src),
			CPUInfoCoreCounter(fields),
		),
		LogicalCores: logical,
		Frequency:    frequency,
	}, nil
}

// ParseBrand returns the first "model name" value with any " with ..."
// suffix removed.
func ParseBrand(fields source.Fields) (string, error) {
	brand, ok := fields.First("model name")
	if !ok {
		return "", fmt.Errorf("%w: no model name field", source.ErrParse)
	}
	return TrimBrand(brand), nil
}

// ParseFrequency parses a scaling_cur_freq value in KHz.
func ParseFrequency(text string) (Frequency, error) {
	value := strings.TrimSpace(text)
	khz, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: scaling frequency %q: %w", source.ErrParse, value, err)
	}
	return Frequency(khz), nil
}

// CoreCounter is one method of counting physical cores. It reports false
// when the method has no answer on this host.
type CoreCounter func() (int, bool)

// PhysicalCores tries each counter in order and returns the first positive
// count. When every counter fails the result is 1, never 0.
func PhysicalCores(counters ...CoreCounter) int {
	for _, count := range counters {
		if n, ok := count(); ok && n > 0 {
			return n
		}
	}
	return 1
}

// TopologyCoreCounter counts distinct core_id values under
// /sys/devices/system/cpu/cpuN/topology. CPUs without a topology directory
// are skipped.
func TopologyCoreCounter(src *source.Source) CoreCounter {
	return func() (int, bool) {
		entries, err := src.Dir(TopologyRoot)
		if err != nil {
			return 0, false
		}

		coreIDs := make(map[string]struct{})
		for _, entry := range entries {
			if !isCPUDir(entry.Name()) {
				continue
			}
			coreID, err := src.Text(path.Join(TopologyRoot, entry.Name(), "topology", "core_id"))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return 0, false
			}
			coreIDs[strings.TrimSpace(coreID)] = struct{}{}
		}

		return len(coreIDs), len(coreIDs) > 0
	}
}

// CPUInfoCoreCounter reads the first "cpu cores" field of /proc/cpuinfo.
func CPUInfoCoreCounter(fields source.Fields) CoreCounter {
	return func() (int, bool) {
		value, ok := fields.First("cpu cores")
		if !ok {
			return 0, false
		}
		cores, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return cores, true
	}
}

// isCPUDir matches cpu0, cpu1, ... and rejects cpufreq, cpuidle and friends.
func isCPUDir(name string) bool {
	suffix, ok := strings.CutPrefix(name, "cpu")
	if !ok || suffix == "" {
		return false
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// countLogical asks the runtime how many CPUs this process may run on. This
// honours affinity masks and cpusets, unlike counting processor records.
func countLogical(numCPU func() int) (int, error) {
	n := numCPU()
	if n < 1 {
		return 0, fmt.Errorf("host reported %d logical cores", n)
	}
	return n, nil
}
