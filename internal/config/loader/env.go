package loader

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

// EnvLoader collects overrides from environment variables.
type EnvLoader struct {
	prefix  string            // e.g. "REBIND_"
	mapping map[string]string // env var -> config path
}

// NewEnvLoader creates a loader with the default mappings for prefix.
// The prefix should include the trailing underscore (e.g., "REBIND_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "NAME":            "name",
		prefix + "LOG_LEVEL":       "log.level",
		prefix + "VIEWPORT":        "viewport",
		prefix + "INVERT_X_MOTION": "mouse.invert_x_motion",
		prefix + "INVERT_Y_MOTION": "mouse.invert_y_motion",
		prefix + "INVERT_X_SCROLL": "mouse.invert_x_scroll",
		prefix + "INVERT_Y_SCROLL": "mouse.invert_y_scroll",
		prefix + "SENSITIVITY":     "mouse.sensitivity",
	}
}

// Load reads the mapped environment variables into a nested map keyed by
// config path. Empty values are kept; they are not treated as unset.
// Prefixed variables without a mapping are ignored.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range slices.Sorted(maps.Keys(l.mapping)) {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, l.mapping[env], parseValue(val))
		}
	}
	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// parseValue converts booleans and numbers and keeps everything else as
// a string.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
// A value already stored on the way down is never replaced by a section;
// the new value is dropped and false returned instead.
func setByPath(data map[string]any, path string, value any) bool {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		existing, found := current[part]
		next, ok := existing.(map[string]any)
		if !ok {
			if found {
				return false
			}
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	leaf := parts[len(parts)-1]
	if _, isSection := current[leaf].(map[string]any); isSection {
		return false
	}
	current[leaf] = value
	return true
}

// GetByPath returns the value at a dot-separated path.
func GetByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}
