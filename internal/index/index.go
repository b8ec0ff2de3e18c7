// Package index builds, persists, and loads the accession-to-byte-offset
// index that makes random access into plain FASTA files possible.
//
// Offsets point at the first byte of a record's description line in the
// uncompressed byte stream. Compressed sources cannot be indexed: a later
// fetch could not seek into them, so Build refuses them up front.
package index

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"fastadex/internal/fasta"
	"fastadex/internal/source"
)

var ErrDuplicateAccession = errors.New("duplicate accession")

// OffsetIndex maps accessions to the byte offset of their description line.
// It is read-only once built or loaded, and may be shared by concurrent
// fetches as long as each opens its own source handle.
type OffsetIndex struct {
	IDToOffset map[string]uint64 `json:"id_to_offset"`
}

// Build scans path front to back and records the offset of every
// description line, keyed by the accession extracted with separator and
// idIndex. A repeated accession fails with ErrDuplicateAccession; a
// compressed source fails with source.ErrUnseekable.
func Build(path, separator string, idIndex int) (*OffsetIndex, error) {
	h, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = h.Close() }()

	if !h.Seekable() {
		return nil, fmt.Errorf("index %s: %w", path, source.ErrUnseekable)
	}

	idx := &OffsetIndex{IDToOffset: make(map[string]uint64)}
	br := bufio.NewReader(h)
	var offset uint64
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if len(line) > 0 {
			trimmed := fasta.TrimEOL(line)
			if fasta.IsDescription(trimmed) {
				id, idErr := fasta.ExtractID(trimmed, separator, idIndex)
				if idErr != nil {
					return nil, fmt.Errorf("index %s at offset %d: %w", path, offset, idErr)
				}
				if _, ok := idx.IDToOffset[id]; ok {
					return nil, fmt.Errorf("index %s: accession %q: %w", path, id, ErrDuplicateAccession)
				}
				idx.IDToOffset[id] = offset
			}
			// Advance by the on-disk byte length, terminator included, so
			// recorded offsets stay valid for a later seek.
			offset += uint64(len(line))
		}

		if err == io.EOF {
			return idx, nil
		}
	}
}

// Offset returns the recorded offset for id.
func (idx *OffsetIndex) Offset(id string) (uint64, bool) {
	off, ok := idx.IDToOffset[id]
	return off, ok
}

// Len returns the number of indexed accessions.
func (idx *OffsetIndex) Len() int {
	return len(idx.IDToOffset)
}
