package source

import (
	"strconv"
	"strings"
)

// Field is one key/value line of a record-oriented pseudo-file.
// Block counts the blank-line separated records seen before the field.
type Field struct {
	Block int
	Key   string
	Value string
}

// Fields is the result of scanning a source.
type Fields []Field

// ScanFields splits text into fields. Each non-blank line is split at the
// first sep; key and value are trimmed. Blank lines start a new block.
// Lines without sep and lines starting with '#' are skipped.
func ScanFields(text, sep string) Fields {
	var (
		fields Fields
		block  int
		inside bool
	)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if inside {
				block++
				inside = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, sep)
		if !ok {
			continue
		}
		inside = true
		fields = append(fields, Field{
			Block: block,
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return fields
}

// First returns the value of the first field named key.
func (f Fields) First(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Blocks returns the number of records seen.
func (f Fields) Blocks() int {
	if len(f) == 0 {
		return 0
	}
	return f[len(f)-1].Block + 1
}

// Map returns the fields as a map, keeping the first value of repeated keys.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		if _, seen := m[field.Key]; !seen {
			m[field.Key] = field.Value
		}
	}
	return m
}

// Unquote strips one level of shell-style quoting from an os-release value.
// Double-quoted values have their backslash escapes resolved; values that are
// not quoted are returned unchanged.
func Unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	switch first, last := value[0], value[len(value)-1]; {
	case first == '"' && last == '"':
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted
		}
		return unescape(value[1 : len(value)-1])
	case first == '\'' && last == '\'':
		return value[1 : len(value)-1]
	}
	return value
}

// unescape drops backslashes before the characters os-release(5) allows to
// be escaped.
func unescape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) && strings.IndexByte("\"\\`$", value[i+1]) >= 0 {
			i++
		}
		b.WriteByte(value[i])
	}
	return b.String()
}
