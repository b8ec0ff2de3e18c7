// Package store materializes accession-to-sequence maps from FASTA files,
// either eagerly via a full streaming scan or on demand through an offset
// index.
//
// Random access follows the same record-boundary convention the index
// builder used when computing offsets: a fetched record's sequence ends at
// the first blank line or the next description line, whichever comes first.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"fastadex/internal/fasta"
	"fastadex/internal/index"
	"fastadex/internal/source"
)

var ErrMissingAccession = errors.New("accession not in index")
var ErrNotAtDescription = errors.New("index offset does not point at a description line")

// Store maps accessions to sequences.
type Store struct {
	IDToSeq map[string]string
}

// FromFasta streams every record in path into a new Store, keyed by full
// description.
func FromFasta(path string) (*Store, error) {
	h, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = h.Close() }()

	st := &Store{IDToSeq: make(map[string]string)}
	r := fasta.NewReader(h)
	for {
		rec, err := r.Next()
		if errors.Is(err, fasta.ErrNoMoreRecords) {
			return st, nil
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		st.IDToSeq[rec.Description] = rec.Sequence
	}
}

// FromIndexWithIDs fetches the requested accessions from path through idx.
// Failures are attributed per accession and do not abort the batch: the
// returned Store holds every entry that succeeded, and the returned error
// joins one wrapped error per accession that did not (ErrMissingAccession
// for ids absent from idx).
func FromIndexWithIDs(path string, idx *index.OffsetIndex, ids []string) (*Store, error) {
	st := &Store{IDToSeq: make(map[string]string, len(ids))}
	var errs []error
	for _, id := range ids {
		off, ok := idx.Offset(id)
		if !ok {
			errs = append(errs, fmt.Errorf("accession %q: %w", id, ErrMissingAccession))
			continue
		}
		rec, err := FetchOne(path, off)
		if err != nil {
			errs = append(errs, fmt.Errorf("accession %q: %w", id, err))
			continue
		}
		st.IDToSeq[id] = rec.Sequence
	}
	return st, errors.Join(errs...)
}

// FetchOne opens path, seeks to offset, and re-scans a single record. The
// line at offset must be a description line; anything else means the index
// and the file disagree, reported as ErrNotAtDescription. Compressed
// sources fail with source.ErrUnseekable.
func FetchOne(path string, offset uint64) (fasta.Record, error) {
	h, err := source.Open(path)
	if err != nil {
		return fasta.Record{}, err
	}
	defer func() { _ = h.Close() }()

	if !h.Seekable() {
		return fasta.Record{}, fmt.Errorf("fetch from %s: %w", path, source.ErrUnseekable)
	}
	if _, err := h.Seek(int64(offset), io.SeekStart); err != nil {
		return fasta.Record{}, fmt.Errorf("seek %s to %d: %w", path, offset, err)
	}

	br := bufio.NewReader(h)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return fasta.Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	first := fasta.TrimEOL(line)
	if !fasta.IsDescription(first) {
		return fasta.Record{}, fmt.Errorf("offset %d in %s: %w", offset, path, ErrNotAtDescription)
	}

	rec := fasta.Record{Description: fasta.StripMarker(first)}
	var seq []byte
	for err != io.EOF {
		line, err = br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fasta.Record{}, fmt.Errorf("read %s: %w", path, err)
		}
		trimmed := fasta.TrimEOL(line)
		if fasta.IsBlank(trimmed) || fasta.IsDescription(trimmed) {
			break
		}
		seq = append(seq, trimmed...)
	}
	rec.Sequence = string(seq)
	return rec, nil
}
