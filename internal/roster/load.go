package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter matches the semicolon-separated exports the roster
// files come in.
const DefaultDelimiter = ';'

// decoderFor resolves a configured source encoding. A byte-order mark in
// the data overrides the configured fallback, so UTF-8 files with a BOM
// decode correctly even when the config says Windows-1252.
func decoderFor(name string) (transform.Transformer, error) {
	var enc encoding.Encoding
	switch name {
	case "", "windows-1252", "cp1252":
		enc = charmap.Windows1252
	case "latin-1", "iso-8859-1":
		enc = charmap.ISO8859_1
	case "utf-8":
		enc = encoding.Nop
	default:
		return nil, fmt.Errorf("unsupported roster encoding %q", name)
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}

// Parse reads a delimited roster table from r and runs the full
// normalization pipeline: cell sanitization, header deduplication and
// canonical mapping, then identifier reconstruction. Ragged data rows are
// tolerated — short rows read as empty cells, extra cells are ignored.
func Parse(r io.Reader, delimiter rune, sourceEncoding string) ([]Record, error) {
	dec, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster file has no header row")
		}
		return nil, fmt.Errorf("read roster header: %w", err)
	}
	for i, h := range header {
		header[i] = CleanCell(h)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row %d: %w", len(rows)+2, err)
		}
		cleaned := make([]string, len(row))
		empty := true
		for i, cell := range row {
			cleaned[i] = CleanCell(cell)
			if cleaned[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, cleaned)
	}

	records := NormalizeTable(header, rows)
	for i := range records {
		records[i] = ReconstructIdentifiers(records[i])
	}
	return records, nil
}

// LoadFile loads and normalizes the roster at path. A missing or
// unreadable file is the one fatal condition of the pipeline; the caller
// is expected to fall back to an empty roster so manual entry keeps
// working.
func LoadFile(path string, delimiter rune, sourceEncoding string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f, delimiter, sourceEncoding)
	if err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	return records, nil
}
