package cpu

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// HostReader implements Reader with gopsutil, for systems without procfs
type HostReader struct {
	logicalCores func() int
}

// NewHostReader creates a new gopsutil backed CPU reader
func NewHostReader() *HostReader {
	return &HostReader{logicalCores: runtime.NumCPU}
}

// GetInfo returns CPU information
func (r *HostReader) GetInfo(ctx context.Context) (*Info, error) {
	cpuInfo, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	if len(cpuInfo) == 0 {
		return nil, fmt.Errorf("%w: no processors reported", ErrAcquisition)
	}

	brand := TrimBrand(cpuInfo[0].ModelName)
	if brand == "" {
		return nil, fmt.Errorf("%w: empty model name", ErrAcquisition)
	}

	logical, err := countLogical(r.logicalCores)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	// Apple Silicon and some VMs do not report a clock
	if cpuInfo[0].Mhz <= 0 {
		return nil, fmt.Errorf("%w: frequency not reported", ErrAcquisition)
	}

	physicalCores := PhysicalCores(func() (int, bool) {
		n, err := cpu.CountsWithContext(ctx, false)
		return n, err == nil
	})

	info := &Info{
		Brand:         brand,
		PhysicalCores: physicalCores,
		LogicalCores:  logical,
		Frequency:     Frequency(math.Round(cpuInfo[0].Mhz * 1000)),
	}

	return info, nil
}
