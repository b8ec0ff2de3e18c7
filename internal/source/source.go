// Package source provides a uniform read handle over plain and
// gzip-compressed sequence files.
//
// A Handle behaves the same for reading regardless of variant. Seeking is
// only available on plain files: gzip streams decode front to back and any
// attempt to seek into one fails with ErrUnseekable instead of silently
// degrading. Multi-member gzip files decode as one logical stream.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// ErrUnseekable is returned when a seek is attempted on a compressed handle.
var ErrUnseekable = errors.New("source is not seekable")

// Kind identifies the handle variant.
type Kind int

const (
	Plain Kind = iota
	Compressed
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Compressed:
		return "compressed"
	default:
		return "unknown"
	}
}

// Handle is an open sequence file. It is exclusively owned by the operation
// that opened it: open a fresh handle per scan or fetch, close it when done.
type Handle struct {
	kind Kind
	path string
	file *os.File
	gz   *gzip.Reader
}

// Open opens path for reading. A ".gz" extension selects the compressed
// variant; anything else is treated as plain text.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", path, err)
	}
	if filepath.Ext(path) != ".gz" {
		return &Handle{kind: Plain, path: path, file: f}, nil
	}

	// gzip.Reader is in multistream mode by default, so concatenated
	// members come out as one logical stream.
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open gzip source %s: %w", path, err)
	}
	return &Handle{kind: Compressed, path: path, file: f, gz: gz}, nil
}

// Kind returns the handle variant.
func (h *Handle) Kind() Kind { return h.kind }

// Path returns the path the handle was opened from.
func (h *Handle) Path() string { return h.path }

// Seekable reports whether Seek is usable on this handle.
func (h *Handle) Seekable() bool { return h.kind == Plain }

func (h *Handle) Read(p []byte) (int, error) {
	if h.kind == Compressed {
		return h.gz.Read(p)
	}
	return h.file.Read(p)
}

// Seek repositions a plain handle. Compressed handles fail with
// ErrUnseekable.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if !h.Seekable() {
		return 0, fmt.Errorf("seek in %s: %w", h.path, ErrUnseekable)
	}
	return h.file.Seek(offset, whence)
}

func (h *Handle) Close() error {
	var errs []error

	if h.gz != nil {
		if err := h.gz.Close(); err != nil {
			errs = append(errs, err)
		}
		h.gz = nil
	}
	if h.file != nil {
		if err := h.file.Close(); err != nil {
			errs = append(errs, err)
		}
		h.file = nil
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

var _ io.ReadSeekCloser = (*Handle)(nil)
