package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedRow marks a CSV row that cannot yield a record because a
// required field is missing or unparsable. Such rows are skipped; the
// error never aborts a load.
var ErrMalformedRow = errors.New("malformed row")

// row is one CSV record addressed by header name. Missing columns and
// short records read as the empty string.
type row struct {
	columns map[string]int
	fields  []string
}

func (r row) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// requiredUUID parses a column that must hold a valid UUID.
func requiredUUID(r row, col string) (uuid.UUID, error) {
	v := r.get(col)
	if v == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", ErrMalformedRow, col)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", ErrMalformedRow, col, v)
	}
	return id, nil
}

// requiredInt parses a column that must hold a valid integer.
func requiredInt(r row, col string) (int, error) {
	v := r.get(col)
	if v == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedRow, col)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedRow, col, v)
	}
	return n, nil
}

// optionalUUID returns nil for empty or invalid values.
func optionalUUID(r row, col string) *uuid.UUID {
	v := r.get(col)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

// Accepted timestamp shapes. Fractional seconds are optional in every
// layout; zoneless values are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// optionalTime returns nil for empty or unrecognized values.
func optionalTime(r row, col string) *time.Time {
	v := r.get(col)
	if v == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, v, time.UTC)
		if err == nil {
			return &t
		}
	}
	return nil
}

// intOr returns def for empty or non-integer values.
func intOr(r row, col string, def int) int {
	v := r.get(col)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// floatOr returns def for empty or non-numeric values.
func floatOr(r row, col string, def float64) float64 {
	v := r.get(col)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// boolOr understands true/1/yes and false/0/no in any case; anything
// else yields def.
func boolOr(r row, col string, def bool) bool {
	v := r.get(col)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return def
}
