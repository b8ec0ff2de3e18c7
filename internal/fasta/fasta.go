// Package fasta implements streaming decode of FASTA flat-text records and
// the accession-extraction convention used to key them.
//
// A record is one description line followed by zero or more sequence-data
// lines. The record-boundary predicates here (IsDescription, IsBlank) are
// the single definition of where a record starts and ends; the offset index
// builder and the random-access fetch path both go through them so their
// boundary accounting cannot drift apart.
package fasta

import "strings"

// Marker is the character introducing a description line.
const Marker = ">"

// Record is one decoded FASTA entry. Description holds the header text with
// the leading marker stripped; Sequence is the concatenation of every
// sequence-data line, with no embedded line breaks.
type Record struct {
	Description string
	Sequence    string
}

// IsDescription reports whether a line (already stripped of its terminator)
// is a description line.
func IsDescription(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// IsBlank reports whether a line is empty after stripping its terminator.
func IsBlank(line string) bool {
	return len(line) == 0
}

// TrimEOL strips a trailing LF or CRLF from a raw line.
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// StripMarker removes the leading record marker, if present.
func StripMarker(line string) string {
	return strings.TrimPrefix(line, Marker)
}
