package osrelease

import (
	"context"
	"fmt"
	"strings"

	"github.com/CristiGvl/picoFetch/internal/source"
)

// Paths lists os-release locations in os-release(5) lookup order.
var Paths = []string{"/etc/os-release", "/usr/lib/os-release"}

// FileReader reads the os-release file.
type FileReader struct {
	src   *source.Source
	paths []string
}

// NewFileReader creates a FileReader reading through src.
func NewFileReader(src *source.Source) *FileReader {
	return &FileReader{src: src, paths: Paths}
}

// GetInfo returns release information from the first readable os-release
// file.
func (r *FileReader) GetInfo(ctx context.Context) (*Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	content, err := r.src.First(r.paths...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	release, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}
	return &release, nil
}

// Parse reads KEY=value lines. NAME and PRETTY_NAME are required.
func Parse(content string) (Release, error) {
	values := make(map[string]string)
	for _, field := range source.ScanFields(content, "=") {
		if _, seen := values[field.Key]; seen {
			continue
		}
		values[field.Key] = source.Unquote(field.Value)
	}

	required := func(key string) (string, error) {
		value, ok := values[key]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: missing %s", source.ErrParse, key)
		}
		return value, nil
	}
	lookup := func(key string) *string {
		if value, ok := values[key]; ok {
			return &value
		}
		return nil
	}

	name, err := required("NAME")
	if err != nil {
		return Release{}, err
	}
	prettyName, err := required("PRETTY_NAME")
	if err != nil {
		return Release{}, err
	}

	release := Release{
		Name:            name,
		PrettyName:      prettyName,
		ID:              "linux",
		Version:         lookup("VERSION"),
		VersionID:       lookup("VERSION_ID"),
		VersionCodename: lookup("VERSION_CODENAME"),
		HomeURL:         lookup("HOME_URL"),
	}
	if id := values["ID"]; id != "" {
		release.ID = id
	}
	if idLike := strings.Fields(values["ID_LIKE"]); len(idLike) > 0 {
		release.IDLike = idLike
	}

	return release, nil
}
