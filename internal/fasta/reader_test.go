package fasta

import (
	"errors"
	"strings"
	"testing"
)

func decodeAll(t *testing.T, input string) []Record {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var records []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, ErrNoMoreRecords) {
			return records
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		records = append(records, rec)
	}
}

func TestReaderThreeRecords(t *testing.T) {
	input := ">A|acc1\nSEQ1\n\n>A|acc2\nSEQ2\n\n>A|acc3\nSEQ3\n"

	records := decodeAll(t, input)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	want := []Record{
		{Description: "A|acc1", Sequence: "SEQ1"},
		{Description: "A|acc2", Sequence: "SEQ2"},
		{Description: "A|acc3", Sequence: "SEQ3"},
	}
	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestReaderCountMatchesDescriptionLines(t *testing.T) {
	input := ">one\nAC\nGT\n>two\nTTTT\n>three\nG\n"
	if n := strings.Count(input, ">"); n != 3 {
		t.Fatalf("fixture broken: %d markers", n)
	}

	records := decodeAll(t, input)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
}

func TestReaderJoinsMultilineSequences(t *testing.T) {
	input := ">id\nAAAA\nCCCC\nGGGG\n"

	records := decodeAll(t, input)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Sequence != "AAAACCCCGGGG" {
		t.Fatalf("sequence = %q", records[0].Sequence)
	}
}

func TestReaderSkipsJunkBeforeFirstDescription(t *testing.T) {
	input := "; comment\n\n>id\nACGT\n"

	records := decodeAll(t, input)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Description != "id" || records[0].Sequence != "ACGT" {
		t.Fatalf("record = %+v", records[0])
	}
}

func TestReaderFinalRecordWithoutTrailingNewline(t *testing.T) {
	records := decodeAll(t, ">a\nAC\n>b\nGT")

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Sequence != "GT" {
		t.Fatalf("final sequence = %q", records[1].Sequence)
	}
}

func TestReaderEmptyFinalSequence(t *testing.T) {
	records := decodeAll(t, ">a\nAC\n>empty\n")

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Description != "empty" || records[1].Sequence != "" {
		t.Fatalf("final record = %+v", records[1])
	}
}

func TestReaderCRLFInput(t *testing.T) {
	records := decodeAll(t, ">id\r\nAC\r\nGT\r\n")

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Description != "id" || records[0].Sequence != "ACGT" {
		t.Fatalf("record = %+v", records[0])
	}
}

func TestReaderNoDescription(t *testing.T) {
	r := NewReader(strings.NewReader("ACGT\nGGGG\n"))

	_, err := r.Next()
	if !errors.Is(err, ErrNoDescription) {
		t.Fatalf("error = %v, want ErrNoDescription", err)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	_, err := r.Next()
	if !errors.Is(err, ErrNoDescription) {
		t.Fatalf("error = %v, want ErrNoDescription", err)
	}
}

func TestReaderExhaustedStaysExhausted(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nAC\n"))

	if _, err := r.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := r.Next(); !errors.Is(err, ErrNoMoreRecords) {
			t.Fatalf("Next after end = %v, want ErrNoMoreRecords", err)
		}
	}
}

func TestReaderRecordsAreOwned(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nAAAA\n>b\nBBBB\n"))

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	// The internal buffer was reused for the second record; the first must
	// be unaffected.
	if first.Sequence != "AAAA" {
		t.Fatalf("first record mutated: %q", first.Sequence)
	}
}
