package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoFetch/internal/source"
)

const MemInfoPath = "/proc/meminfo"

// ProcReader reads /proc/meminfo.
type ProcReader struct {
	src *source.Source
}

func NewProcReader(src *source.Source) *ProcReader {
	return &ProcReader{src: src}
}

// GetInfo returns memory information
func (r *ProcReader) GetInfo(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	content, err := r.src.Text(MemInfoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	info, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}
	return &info, nil
}

// Parse reads MemTotal and MemAvailable. Kernels older than 3.14 lack
// MemAvailable; MemFree + Buffers + Cached stands in for it there.
func Parse(content string) (Info, error) {
	values := source.ScanFields(content, ":").Map()

	total, err := kilobytes(values, "MemTotal")
	if err != nil {
		return Info{}, err
	}

	if _, ok := values["MemAvailable"]; ok {
		available, err := kilobytes(values, "MemAvailable")
		if err != nil {
			return Info{}, err
		}
		return Info{Total: total, Available: available}, nil
	}

	free, err := kilobytes(values, "MemFree")
	if err != nil {
		return Info{}, err
	}
	available := free
	for _, key := range []string{"Buffers", "Cached"} {
		if _, ok := values[key]; !ok {
			continue
		}
		n, err := kilobytes(values, key)
		if err != nil {
			return Info{}, err
		}
		available += n
	}
	return Info{Total: total, Available: min(available, total)}, nil
}

// kilobytes parses a "1234 kB" value into bytes.
func kilobytes(values map[string]string, key string) (uint64, error) {
	value, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", source.ErrParse, key)
	}
	number, unit, _ := strings.Cut(value, " ")
	n, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", source.ErrParse, key, value, err)
	}
	if strings.TrimSpace(unit) == "kB" {
		n *= 1024
	}
	return n, nil
}
