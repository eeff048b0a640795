// Package tabular reads header-addressed CSV sources into typed records.
//
// Both pipeline inputs (the line list and the station coordinates) share the
// same loading shape: open the file, read the header, map each row through a
// record function, skip rows the function rejects, and fail hard only on
// structural problems. This package implements that shape once, so the two
// loaders differ only in their row mapping.
//
// Files are decoded with BOM tolerance: a leading UTF-8 (or UTF-16) byte
// order mark is stripped transparently, since the reference exports carry
// one.
package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	stkerrors "github.com/stationrank/stationrank/pkg/errors"
)

// Row is a single data row with access to fields by header name.
type Row struct {
	index  map[string]int
	fields []string
}

// Field returns the value of the named column, or "" if the column is
// missing from the header or the row is too short to contain it.
func (r Row) Field(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Load reads a CSV file and maps every data row through fn.
// Rows for which fn returns false are skipped silently; this is the
// deliberate best-effort strategy for per-row issues (missing fields,
// unparseable numbers).
//
// Load returns INPUT_NOT_FOUND if the file cannot be opened and PARSE_ERROR
// for structural CSV failures (bad quoting, encoding corruption). An empty
// file yields an empty slice, not an error; callers decide whether zero
// records is fatal for their stage.
func Load[T any](path string, fn func(Row) (T, bool)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stkerrors.New(stkerrors.ErrCodeInputNotFound, "input file %q not found", path)
		}
		return nil, stkerrors.Wrap(stkerrors.ErrCodeInputNotFound, err, "open %s", path)
	}
	defer f.Close()

	return load(f, path, fn)
}

func load[T any](r io.Reader, path string, fn func(Row) (T, bool)) ([]T, error) {
	// BOMOverride switches to UTF-16 when a UTF-16 BOM is present and
	// otherwise strips a UTF-8 BOM, leaving BOM-less input untouched.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1 // ragged rows are a per-row issue, not structural

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, stkerrors.Wrap(stkerrors.ErrCodeParse, err, "read header of %s", path)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var out []T
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				continue
			}
			return nil, stkerrors.Wrap(stkerrors.ErrCodeParse, err, "read %s", path)
		}
		rec, ok := fn(Row{index: index, fields: fields})
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
