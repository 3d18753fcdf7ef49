package disk

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// HostReader reports usage of the filesystem holding one path
type HostReader struct {
	path string
}

// NewHostReader creates a reader for the filesystem holding path. An empty
// path yields a reader that always fails.
func NewHostReader(path string) *HostReader {
	return &HostReader{path: path}
}

// GetInfo returns disk information
func (r *HostReader) GetInfo(ctx context.Context) (*Info, error) {
	if r.path == "" {
		return nil, fmt.Errorf("%w: no path to inspect", ErrAcquisition)
	}

	usage, err := disk.UsageWithContext(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	if usage.Total == 0 {
		return nil, fmt.Errorf("%w: %s reports no capacity", ErrAcquisition, r.path)
	}

	return &Info{
		Mountpoint: usage.Path,
		Filesystem: usage.Fstype,
		Total:      usage.Total,
		Used:       usage.Used,
		Free:       usage.Free,
	}, nil
}
