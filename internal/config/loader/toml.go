package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads profiles from TOML files.
type TOMLLoader struct {
	fs     FileSystem
	path   string
	strict bool
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return NewTOMLLoaderWithFS(DefaultFS(), path)
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   fs,
		path: path,
	}
}

// SetStrict makes unknown keys a parse error.
func (l *TOMLLoader) SetStrict(strict bool) {
	l.strict = strict
}

// Load reads the configured path into v.
func (l *TOMLLoader) Load(v any) error {
	return l.LoadFrom(l.path, v)
}

// LoadFrom reads a specific path into v.
func (l *TOMLLoader) LoadFrom(path string, v any) error {
	data, err := readFile(l.fs, path)
	if err != nil {
		return err
	}
	return l.parse(path, data, v)
}

// LoadFromReader decodes r into v.
func (l *TOMLLoader) LoadFromReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data, v)
}

// parse decodes TOML data into v.
func (l *TOMLLoader) parse(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	if l.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}
