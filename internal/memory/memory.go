package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrAcquisition is wrapped by every error a Reader returns.
var ErrAcquisition = errors.New("memory info acquisition failed")

// Info represents memory information in bytes
type Info struct {
	Total     uint64 `json:"total_bytes"`
	Available uint64 `json:"available_bytes"`
}

// Reader interface for memory information
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// Used returns memory not available for new allocations.
func (i Info) Used() uint64 {
	if i.Available >= i.Total {
		return 0
	}
	return i.Total - i.Available
}

// UsedPercent returns Used as a percentage of Total.
func (i Info) UsedPercent() float64 {
	if i.Total == 0 {
		return 0
	}
	return float64(i.Used()) / float64(i.Total) * 100
}

// String renders "used / total (percent%)" with binary units.
func (i Info) String() string {
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.IBytes(i.Used()), humanize.IBytes(i.Total), i.UsedPercent())
}
