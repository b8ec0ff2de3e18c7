package fasta

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldOutOfRange is returned when the configured id field index does not
// exist in a description line.
var ErrFieldOutOfRange = errors.New("accession field index out of range")

// ExtractID derives the accession from a description line. If the line
// contains separator it is split and field idIndex is taken; field 0
// additionally has the record marker stripped. Lines without the separator
// yield the whole description, marker stripped. Works on descriptions with
// or without the leading marker.
//
// UniProt headers like ">tr|P93158|P93158_GOSHI ..." yield "P93158" with
// separator "|" and idIndex 1.
func ExtractID(description, separator string, idIndex int) (string, error) {
	if idIndex < 0 {
		return "", fmt.Errorf("id index %d: %w", idIndex, ErrFieldOutOfRange)
	}
	if separator == "" || !strings.Contains(description, separator) {
		return StripMarker(description), nil
	}

	fields := strings.Split(description, separator)
	if idIndex >= len(fields) {
		return "", fmt.Errorf("id index %d, description %q has %d fields (separator %q): %w",
			idIndex, description, len(fields), separator, ErrFieldOutOfRange)
	}
	if idIndex == 0 {
		return StripMarker(fields[0]), nil
	}
	return fields[idIndex], nil
}
