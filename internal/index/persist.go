package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformedIndexFile is returned when a persisted index does not parse
// or lacks the id_to_offset mapping.
var ErrMalformedIndexFile = errors.New("malformed index file")

// Save writes the index to path as a single JSON object:
//
//	{"id_to_offset": {"P93158": 359, ...}}
//
// The format is self-describing and human-inspectable.
func (idx *OffsetIndex) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index file %s: %w", path, err)
	}
	if err := json.NewEncoder(f).Encode(idx); err != nil {
		_ = f.Close()
		return fmt.Errorf("write index file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("flush index file %s: %w", path, err)
	}
	return nil
}

// Load reads an index previously written by Save. Unreadable files fail
// with the wrapped OS error; files that parse into anything other than the
// Save layout fail with ErrMalformedIndexFile.
func Load(path string) (*OffsetIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index file %s: %w", path, err)
	}

	var idx OffsetIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse index file %s: %v: %w", path, err, ErrMalformedIndexFile)
	}
	if idx.IDToOffset == nil {
		return nil, fmt.Errorf("index file %s has no id_to_offset mapping: %w", path, ErrMalformedIndexFile)
	}
	return &idx, nil
}
