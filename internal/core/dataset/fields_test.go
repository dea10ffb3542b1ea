package dataset

import (
	"errors"
	"testing"
	"time"
)

// testRow builds a row from column name to value pairs.
func testRow(cols map[string]string) row {
	columns := make(map[string]int, len(cols))
	fields := make([]string, 0, len(cols))
	for name, v := range cols {
		columns[name] = len(fields)
		fields = append(fields, v)
	}
	return row{columns: columns, fields: fields}
}

func TestRowGetMissingColumn(t *testing.T) {
	r := testRow(map[string]string{"uuid": "x"})

	if got := r.get("nick_name"); got != "" {
		t.Errorf("get(nick_name) = %q, want empty", got)
	}
}

func TestRowGetShortRecord(t *testing.T) {
	// Header has three columns but the record only carries one field.
	r := row{
		columns: map[string]int{"a": 0, "b": 1, "c": 2},
		fields:  []string{"only"},
	}

	if got := r.get("a"); got != "only" {
		t.Errorf("get(a) = %q, want %q", got, "only")
	}
	if got := r.get("c"); got != "" {
		t.Errorf("get(c) = %q, want empty", got)
	}
}

func TestOptionalTimeLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-01T10:30:00Z", time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-03-01T10:30:00.250Z", time.Date(2025, 3, 1, 10, 30, 0, 250000000, time.UTC)},
		{"2025-03-01T10:30:00+02:00", time.Date(2025, 3, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600))},
		{"2025-03-01T10:30:00", time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-03-01T10:30:00.5", time.Date(2025, 3, 1, 10, 30, 0, 500000000, time.UTC)},
		{"2025-03-01 10:30:00", time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-03-01 10:30:00.125", time.Date(2025, 3, 1, 10, 30, 0, 125000000, time.UTC)},
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		r := testRow(map[string]string{"ts": tc.in})
		got := optionalTime(r, "ts")
		if got == nil {
			t.Errorf("optionalTime(%q) = nil, want %v", tc.in, tc.want)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("optionalTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOptionalTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2025-13-45", "12345"} {
		r := testRow(map[string]string{"ts": in})
		if got := optionalTime(r, "ts"); got != nil {
			t.Errorf("optionalTime(%q) = %v, want nil", in, got)
		}
	}
}

func TestBoolOr(t *testing.T) {
	cases := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"NO", true, false},
		{"", false, false},
		{"", true, true},
		{"maybe", false, false},
		{"maybe", true, true},
	}

	for _, tc := range cases {
		r := testRow(map[string]string{"flag": tc.in})
		if got := boolOr(r, "flag", tc.def); got != tc.want {
			t.Errorf("boolOr(%q, def=%v) = %v, want %v", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestIntOr(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"-12", -12},
		{"", 7},
		{"3.5", 7},
		{"abc", 7},
	}

	for _, tc := range cases {
		r := testRow(map[string]string{"n": tc.in})
		if got := intOr(r, "n", 7); got != tc.want {
			t.Errorf("intOr(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloatOr(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3.5", 3.5},
		{"120", 120},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
	}

	for _, tc := range cases {
		r := testRow(map[string]string{"f": tc.in})
		if got := floatOr(r, "f", 0); got != tc.want {
			t.Errorf("floatOr(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRequiredUUID(t *testing.T) {
	r := testRow(map[string]string{"uuid": "11111111-1111-1111-1111-111111111111"})
	id, err := requiredUUID(r, "uuid")
	if err != nil {
		t.Fatalf("requiredUUID: %v", err)
	}
	if id.String() != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("uuid = %s", id)
	}

	for _, in := range []string{"", "not-a-uuid"} {
		r := testRow(map[string]string{"uuid": in})
		if _, err := requiredUUID(r, "uuid"); !errors.Is(err, ErrMalformedRow) {
			t.Errorf("requiredUUID(%q) err = %v, want ErrMalformedRow", in, err)
		}
	}
}

func TestRequiredInt(t *testing.T) {
	r := testRow(map[string]string{"id": "42"})
	n, err := requiredInt(r, "id")
	if err != nil {
		t.Fatalf("requiredInt: %v", err)
	}
	if n != 42 {
		t.Errorf("id = %d, want 42", n)
	}

	for _, in := range []string{"", "4.2", "x"} {
		r := testRow(map[string]string{"id": in})
		if _, err := requiredInt(r, "id"); !errors.Is(err, ErrMalformedRow) {
			t.Errorf("requiredInt(%q) err = %v, want ErrMalformedRow", in, err)
		}
	}
}

func TestOptionalUUID(t *testing.T) {
	r := testRow(map[string]string{"ref": "22222222-2222-2222-2222-222222222222"})
	if got := optionalUUID(r, "ref"); got == nil || got.String() != "22222222-2222-2222-2222-222222222222" {
		t.Errorf("optionalUUID = %v", got)
	}

	for _, in := range []string{"", "garbage"} {
		r := testRow(map[string]string{"ref": in})
		if got := optionalUUID(r, "ref"); got != nil {
			t.Errorf("optionalUUID(%q) = %v, want nil", in, got)
		}
	}
}
