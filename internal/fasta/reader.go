package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var ErrNoMoreRecords = errors.New("no more records")
var ErrNoDescription = errors.New("no description line in input")

type state int

const (
	seekingFirstDescription state = iota
	inRecord
)

// Reader decodes FASTA records one at a time from an underlying stream.
//
// The decode is a single forward pass and is not restartable; resuming
// requires reopening the source. The internal sequence buffer is reused
// between records — each returned Record owns its strings, so callers may
// hold records across Next calls.
type Reader struct {
	br      *bufio.Reader
	state   state
	pending string // description waiting for its record boundary, marker stripped
	seqBuf  []byte // reused accumulation buffer
	done    bool
	err     error
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next record. After the final record it returns
// ErrNoMoreRecords. A stream that ends before any description line is found
// fails with ErrNoDescription.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.done {
		return Record{}, ErrNoMoreRecords
	}

	r.seqBuf = r.seqBuf[:0]
	for {
		line, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			r.err = fmt.Errorf("read source: %w", err)
			return Record{}, r.err
		}

		if len(line) > 0 {
			trimmed := TrimEOL(line)
			if IsDescription(trimmed) {
				desc := StripMarker(trimmed)
				if r.state == seekingFirstDescription {
					r.state = inRecord
					r.pending = desc
				} else {
					rec := Record{Description: r.pending, Sequence: string(r.seqBuf)}
					r.pending = desc
					// On EOF the next call re-reads io.EOF from the
					// bufio.Reader and emits the final pending record.
					return rec, nil
				}
			} else if r.state == inRecord {
				r.seqBuf = append(r.seqBuf, trimmed...)
			}
		}

		if err == io.EOF {
			r.done = true
			if r.state == seekingFirstDescription {
				r.err = ErrNoDescription
				return Record{}, r.err
			}
			// Final pending record, even if its sequence is empty.
			return Record{Description: r.pending, Sequence: string(r.seqBuf)}, nil
		}
	}
}
