// Package loader reads binding profiles from disk.
//
// Files are decoded into a caller-supplied value by format: TOML through
// go-toml and YAML through yaml.v3. Environment variables are collected
// into a nested override map by EnvLoader.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by loaders.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat indicates the file extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Format identifies a profile file encoding.
type Format uint8

const (
	// FormatUnknown is returned for unrecognized extensions.
	FormatUnknown Format = iota
	// FormatTOML is a .toml file.
	FormatTOML
	// FormatYAML is a .yaml or .yml file.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Loader decodes a file into v.
type Loader interface {
	// Load reads the configured file into v.
	// Returns an error wrapping ErrNotFound if the file does not exist.
	Load(v any) error
}

// FileLoader is a Loader that can read from other paths.
type FileLoader interface {
	Loader
	// LoadFrom reads the file at path into v.
	LoadFrom(path string, v any) error
}

// ReaderLoader decodes from an io.Reader.
type ReaderLoader interface {
	// LoadFromReader decodes r into v.
	LoadFromReader(r io.Reader, v any) error
}

// FileSystem is an abstraction for file system operations.
// Tests use testing/fstest.MapFS.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// New returns the loader for the format implied by path.
func New(fsys FileSystem, path string) (FileLoader, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatTOML:
		return NewTOMLLoaderWithFS(fsys, path), nil
	default:
		return NewYAMLLoaderWithFS(fsys, path), nil
	}
}

// LoadFile decodes the file at path into v, picking the decoder by
// extension.
func LoadFile(fsys FileSystem, path string, v any) error {
	l, err := New(fsys, path)
	if err != nil {
		return err
	}
	return l.Load(v)
}

// readFile reads path, mapping a missing file to ErrNotFound.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
