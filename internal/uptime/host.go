package uptime

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// HostReader implements Reader with gopsutil, for systems without procfs
type HostReader struct{}

// NewHostReader creates a new gopsutil backed uptime reader
func NewHostReader() *HostReader {
	return &HostReader{}
}

// GetInfo returns uptime information. Idle time is the idle CPU time summed
// over all cores, matching what /proc/uptime reports on Linux.
func (r *HostReader) GetInfo(ctx context.Context) (*Uptime, error) {
	seconds, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	var idle float64
	for _, t := range times {
		idle += t.Idle
	}

	return &Uptime{
		Seconds:     seconds,
		IdleSeconds: uint64(idle),
	}, nil
}
