package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaling-ai/data-insights/internal/logging"
)

// forEachRow streams the CSV file at path and invokes fn once per data
// row. The first record is the header; rows are addressed by header
// name, so column order never matters. Records with quoting problems
// are skipped like any other malformed row. A file that cannot be
// opened or read is an error; an empty file simply yields no rows.
func forEachRow(path string, fn func(row)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1 // ragged rows are handled per field

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				logging.Logger.Debugf("dataset: skipping unreadable record in %s: %v", filepath.Base(path), err)
				continue
			}
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		fn(row{columns: columns, fields: rec})
	}
	return nil
}
