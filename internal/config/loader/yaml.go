package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads profiles from YAML files.
type YAMLLoader struct {
	fs     FileSystem
	path   string
	strict bool
}

// NewYAMLLoader creates a new YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return NewYAMLLoaderWithFS(DefaultFS(), path)
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{
		fs:   fs,
		path: path,
	}
}

// SetStrict makes unknown keys a parse error.
func (l *YAMLLoader) SetStrict(strict bool) {
	l.strict = strict
}

// Load reads the configured path into v.
func (l *YAMLLoader) Load(v any) error {
	return l.LoadFrom(l.path, v)
}

// LoadFrom reads a specific path into v.
func (l *YAMLLoader) LoadFrom(path string, v any) error {
	data, err := readFile(l.fs, path)
	if err != nil {
		return err
	}
	return l.parse(path, data, v)
}

// LoadFromReader decodes r into v.
func (l *YAMLLoader) LoadFromReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data, v)
}

// parse decodes YAML data into v. An empty document leaves v untouched.
func (l *YAMLLoader) parse(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(l.strict)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
