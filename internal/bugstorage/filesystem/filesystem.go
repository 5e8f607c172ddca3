// Package filesystem implements bugstorage.RecordStore using a single
// structured file. The encoding is chosen from the file extension: YAML
// (the default), JSON or TOML.
package filesystem

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sdr/internal/bugstorage"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of the bug collection.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForPath returns the encoding used for path. Unknown extensions
// fall back to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// FileStore implements bugstorage.RecordStore on top of one file.
type FileStore struct {
	path   string
	format Format
	logger *slog.Logger
}

// Option configures a FileStore instance.
type Option func(*FileStore)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(fs *FileStore) {
		fs.logger = l
	}
}

// New creates a FileStore that reads from and writes to path.
// The file is not touched until Load or Save is called.
func New(path string, opts ...Option) *FileStore {
	fs := &FileStore{
		path:   path,
		format: FormatForPath(path),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

// Path returns the location of the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads and decodes the backing file. A missing or empty file yields an
// empty collection.
func (fs *FileStore) Load(ctx context.Context) ([]*bugstorage.Bug, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			fs.logger.Debug("bug database not found, starting empty", "path", fs.path)
			return []*bugstorage.Bug{}, nil
		}
		return nil, fmt.Errorf("reading bug database: %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []*bugstorage.Bug{}, nil
	}

	bugs, err := decode(fs.format, raw)
	if err != nil {
		return nil, fmt.Errorf("parsing bug database %s: %w", fs.path, err)
	}
	fs.logger.Debug("loaded bug database", "path", fs.path, "bugs", len(bugs))
	return bugs, nil
}

// Save encodes bugs and atomically replaces the backing file.
func (fs *FileStore) Save(ctx context.Context, bugs []*bugstorage.Bug) error {
	if bugs == nil {
		bugs = []*bugstorage.Bug{}
	}
	raw, err := encode(fs.format, bugs)
	if err != nil {
		return fmt.Errorf("encoding bug database: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	if err := atomicWrite(fs.path, raw); err != nil {
		return fmt.Errorf("writing bug database: %w", err)
	}
	fs.logger.Debug("saved bug database", "path", fs.path, "bugs", len(bugs))
	return nil
}

// tomlDocument wraps the collection because TOML has no top-level arrays.
type tomlDocument struct {
	Bugs []*bugstorage.Bug `toml:"bug"`
}

func encode(format Format, bugs []*bugstorage.Bug) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(bugs, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument{Bugs: bugs}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return yaml.Marshal(bugs)
	}
}

func decode(format Format, raw []byte) ([]*bugstorage.Bug, error) {
	var bugs []*bugstorage.Bug
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(raw, &bugs); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.Decode(string(raw), &doc); err != nil {
			return nil, err
		}
		bugs = doc.Bugs
	default:
		if err := yaml.Unmarshal(raw, &bugs); err != nil {
			return nil, err
		}
	}

	// Drop null entries so callers never see a nil *Bug.
	out := make([]*bugstorage.Bug, 0, len(bugs))
	for _, b := range bugs {
		if b != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

// Compile-time check that FileStore implements bugstorage.RecordStore.
var _ bugstorage.RecordStore = (*FileStore)(nil)
