package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// HostReader implements Reader with gopsutil
type HostReader struct{}

// NewHostReader creates a new gopsutil backed memory reader
func NewHostReader() *HostReader {
	return &HostReader{}
}

// GetInfo returns memory information
func (r *HostReader) GetInfo(ctx context.Context) (*Info, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	if memInfo.Total == 0 {
		return nil, fmt.Errorf("%w: total memory not reported", ErrAcquisition)
	}

	return &Info{
		Total:     memInfo.Total,
		Available: memInfo.Available,
	}, nil
}
