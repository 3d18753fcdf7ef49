// Package osrelease identifies the running operating system release.
//
// On Linux the identity comes from os-release(5). Optional fields are
// pointers: a nil Version means the key was absent, which is how rolling
// distributions such as Arch present themselves, while a non-nil empty
// string means the key was present but blank.
package osrelease

import (
	"context"
	"errors"
)

// ErrAcquisition is wrapped by every error a Reader returns.
var ErrAcquisition = errors.New("os release acquisition failed")

// Release represents operating system release information
type Release struct {
	Name            string   `json:"name"`
	PrettyName      string   `json:"pretty_name"`
	ID              string   `json:"id"`
	IDLike          []string `json:"id_like,omitempty"`
	Version         *string  `json:"version,omitempty"`
	VersionID       *string  `json:"version_id,omitempty"`
	VersionCodename *string  `json:"version_codename,omitempty"`
	HomeURL         *string  `json:"home_url,omitempty"`
}

// Reader interface for OS release information
type Reader interface {
	GetInfo(ctx context.Context) (*Release, error)
}

// Rolling reports whether the release carries no version at all.
func (r Release) Rolling() bool {
	return r.Version == nil && r.VersionID == nil
}

// optional returns a pointer to value, or nil when value is empty. Used by
// readers whose backends cannot tell an empty value from a missing one.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
