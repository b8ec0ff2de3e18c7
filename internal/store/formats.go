package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"fastadex/internal/fasta"
	"fastadex/internal/source"
)

// Accessions returns every accession in path, in file order, extracted with
// separator and idIndex.
func Accessions(path, separator string, idIndex int) ([]string, error) {
	var ids []string
	err := eachRecord(path, func(rec fasta.Record) error {
		id, err := fasta.ExtractID(rec.Description, separator, idIndex)
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Lengths returns an accession-to-sequence-length map for path.
func Lengths(path, separator string, idIndex int) (map[string]int, error) {
	lengths := make(map[string]int)
	err := eachRecord(path, func(rec fasta.Record) error {
		id, err := fasta.ExtractID(rec.Description, separator, idIndex)
		if err != nil {
			return err
		}
		lengths[id] = len(rec.Sequence)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lengths, nil
}

// eachRecord streams path through the decoder, calling fn per record.
func eachRecord(path string, fn func(fasta.Record) error) error {
	h, err := source.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	r := fasta.NewReader(h)
	for {
		rec, err := r.Next()
		if errors.Is(err, fasta.ErrNoMoreRecords) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scan %s: %w", path, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// WriteFasta writes the store as FASTA, sorted by accession for
// deterministic output, one blank line after each sequence.
func (s *Store) WriteFasta(w io.Writer) error {
	ids := make([]string, 0, len(s.IDToSeq))
	for id := range s.IDToSeq {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		fmt.Fprintf(bw, "%s%s\n%s\n\n", fasta.Marker, id, s.IDToSeq[id])
	}
	return bw.Flush()
}

// SaveFasta writes the store as FASTA to path.
func (s *Store) SaveFasta(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.WriteFasta(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteLines writes one value per line.
func WriteLines(w io.Writer, values []string) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		fmt.Fprintln(bw, v)
	}
	return bw.Flush()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
