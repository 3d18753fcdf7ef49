package osrelease

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// HostReader implements Reader with gopsutil, for systems without os-release
type HostReader struct{}

// NewHostReader creates a new gopsutil backed release reader
func NewHostReader() *HostReader {
	return &HostReader{}
}

// GetInfo returns release information
func (r *HostReader) GetInfo(ctx context.Context) (*Release, error) {
	platform, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	if platform == "" {
		return nil, fmt.Errorf("%w: platform not reported", ErrAcquisition)
	}

	return FromPlatform(platform, family, version), nil
}

// FromPlatform builds a Release from gopsutil's platform triple.
func FromPlatform(platform, family, version string) *Release {
	release := &Release{
		Name:       platform,
		PrettyName: strings.TrimSpace(platform + " " + version),
		ID:         strings.ToLower(platform),
		VersionID:  optional(version),
	}
	if family != "" && !strings.EqualFold(family, platform) {
		release.IDLike = []string{strings.ToLower(family)}
	}
	return release
}
