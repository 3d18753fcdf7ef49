package uptime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoFetch/internal/source"
)

// ProcUptimePath is the Linux uptime pseudo-file.
const ProcUptimePath = "/proc/uptime"

// ProcReader reads uptime statistics from /proc/uptime.
type ProcReader struct {
	src *source.Source
}

// NewProcReader creates a ProcReader reading through src.
func NewProcReader(src *source.Source) *ProcReader {
	return &ProcReader{src: src}
}

// GetInfo reads current uptime statistics.
func (r *ProcReader) GetInfo(ctx context.Context) (*Uptime, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	content, err := r.src.Text(ProcUptimePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	u, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}
	return &u, nil
}

// Parse reads "<uptime> <idle>" where both values are decimal seconds.
// Fractions are dropped, not rounded.
func Parse(content string) (Uptime, error) {
	fields := strings.Fields(content)
	if len(fields) < 2 {
		return Uptime{}, fmt.Errorf("%w: expected 2 fields in %s, got %d", source.ErrParse, ProcUptimePath, len(fields))
	}

	seconds, err := wholeSeconds(fields[0])
	if err != nil {
		return Uptime{}, fmt.Errorf("parsing uptime value: %w", err)
	}

	idle, err := wholeSeconds(fields[1])
	if err != nil {
		return Uptime{}, fmt.Errorf("parsing idle value: %w", err)
	}

	return Uptime{Seconds: seconds, IdleSeconds: idle}, nil
}

func wholeSeconds(value string) (uint64, error) {
	whole, _, _ := strings.Cut(value, ".")
	n, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", source.ErrParse, value, err)
	}
	return n, nil
}
