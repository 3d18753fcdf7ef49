package uptime

import (
	"context"
	"errors"

	"github.com/CristiGvl/picoFetch/internal/duration"
)

// ErrAcquisition is wrapped by every error a Reader returns.
var ErrAcquisition = errors.New("uptime acquisition failed")

// Uptime holds whole seconds since boot and cumulative idle seconds.
// IdleSeconds is summed across all cores and can exceed Seconds.
type Uptime struct {
	Seconds     uint64 `json:"uptime_seconds"`
	IdleSeconds uint64 `json:"idle_seconds"`
}

// Reader interface for uptime information
type Reader interface {
	GetInfo(ctx context.Context) (*Uptime, error)
}

func (u Uptime) Minutes() uint64 { return u.Seconds / duration.Minute }
func (u Uptime) Hours() uint64   { return u.Seconds / duration.Hour }
func (u Uptime) Days() uint64    { return u.Seconds / duration.Day }
func (u Uptime) Months() uint64  { return u.Seconds / duration.Month }
func (u Uptime) Years() uint64   { return u.Seconds / duration.Year }

func (u Uptime) IdleMinutes() uint64 { return u.IdleSeconds / duration.Minute }
func (u Uptime) IdleHours() uint64   { return u.IdleSeconds / duration.Hour }
func (u Uptime) IdleDays() uint64    { return u.IdleSeconds / duration.Day }
func (u Uptime) IdleMonths() uint64  { return u.IdleSeconds / duration.Month }
func (u Uptime) IdleYears() uint64   { return u.IdleSeconds / duration.Year }

// Format renders the uptime with at most maxUnits units.
func (u Uptime) Format(maxUnits int) string {
	return duration.Format(u.Seconds, maxUnits)
}

// IdleFormat renders the idle time with at most maxUnits units.
func (u Uptime) IdleFormat(maxUnits int) string {
	return duration.Format(u.IdleSeconds, maxUnits)
}
