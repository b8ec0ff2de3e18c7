package store

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"
)

func TestAccessionsInFileOrder(t *testing.T) {
	path := writeFasta(t, t.TempDir(), "test.fasta", threeRecords)

	ids, err := Accessions(path, "|", 1)
	if err != nil {
		t.Fatalf("accessions: %v", err)
	}
	want := []string{"acc1", "acc2", "acc3"}
	if !slices.Equal(ids, want) {
		t.Fatalf("accessions = %v, want %v", ids, want)
	}
}

func TestAccessionsCompressedSource(t *testing.T) {
	path := writeFastaGzip(t, t.TempDir(), "test.fasta.gz", threeRecords)

	ids, err := Accessions(path, "|", 1)
	if err != nil {
		t.Fatalf("accessions: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("got %d accessions, want 3", len(ids))
	}
}

func TestLengths(t *testing.T) {
	content := ">x|short\nAC\n>x|long\nACGTACGT\nACGT\n"
	path := writeFasta(t, t.TempDir(), "test.fasta", content)

	lengths, err := Lengths(path, "|", 1)
	if err != nil {
		t.Fatalf("lengths: %v", err)
	}
	if lengths["short"] != 2 || lengths["long"] != 12 {
		t.Fatalf("lengths = %v", lengths)
	}
}

func TestWriteFasta(t *testing.T) {
	st := &Store{IDToSeq: map[string]string{
		"b": "GGGG",
		"a": "ACGT",
	}}

	var buf bytes.Buffer
	if err := st.WriteFasta(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := ">a\nACGT\n\n>b\nGGGG\n\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestSaveFastaRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := &Store{IDToSeq: map[string]string{
		"one": "ACGT",
		"two": "GGGG",
	}}

	path := dir + "/out.fasta"
	if err := st.SaveFasta(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := FromFasta(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded.IDToSeq) != 2 {
		t.Fatalf("reloaded %d entries, want 2", len(loaded.IDToSeq))
	}
	if loaded.IDToSeq["one"] != "ACGT" || loaded.IDToSeq["two"] != "GGGG" {
		t.Fatalf("reloaded = %v", loaded.IDToSeq)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"acc1", "acc2"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "acc1\nacc2\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"acc1": 4}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if decoded["acc1"] != 4 {
		t.Fatalf("decoded = %v", decoded)
	}
}
