package palette

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mmuldo/colorpick/colorspace"
)

var (
	// ErrMissingColumn means the header lacks a name or channel column.
	ErrMissingColumn = errors.New("palette: missing column")
	// ErrBadRow is wrapped by every RowError.
	ErrBadRow = errors.New("palette: malformed row")
)

// header names accepted for each field, in order of preference
var (
	nameColumns  = []string{"color_name", "name", "color"}
	redColumns   = []string{"r", "red"}
	greenColumns = []string{"g", "green"}
	blueColumns  = []string{"b", "blue"}
)

// RowError describes a row that was skipped while loading.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Is makes every RowError match ErrBadRow.
func (e *RowError) Is(target error) bool { return target == ErrBadRow }

// Report summarizes a load.
type Report struct {
	Source  string
	Loaded  int
	Skipped []*RowError
}

type columns struct {
	name, r, g, b int
}

// Load reads a CSV table with a header row naming a display name column and
// R, G, B columns in any order. Rows that cannot be used are skipped and
// listed in the report; they never abort the load.
//
// The returned palette is never nil. On error it is empty.
func Load(r io.Reader) (*Palette, *Report, error) {
	report := &Report{}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return New(nil), report, fmt.Errorf("%w: empty table", ErrMissingColumn)
	}
	if err != nil {
		return New(nil), report, fmt.Errorf("reading header: %w", err)
	}

	cols, err := findColumns(header)
	if err != nil {
		return New(nil), report, err
	}

	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				report.Skipped = append(report.Skipped, &RowError{Line: perr.Line, Err: perr.Err})
				continue
			}
			return New(nil), report, fmt.Errorf("reading palette: %w", err)
		}

		line, _ := cr.FieldPos(0)
		e, err := parseRow(record, cols)
		if err != nil {
			report.Skipped = append(report.Skipped, &RowError{Line: line, Err: err})
			continue
		}
		entries = append(entries, e)
	}

	report.Loaded = len(entries)
	return New(entries), report, nil
}

// LoadFile opens path and calls Load. A missing or unreadable file yields an
// empty palette and an error.
func LoadFile(path string) (*Palette, *Report, error) {
	f, e := os.Open(path)
	if e != nil {
		return New(nil), &Report{Source: path}, e
	}
	defer f.Close()

	p, report, e := Load(f)
	report.Source = path
	if e != nil {
		return p, report, fmt.Errorf("%s: %w", path, e)
	}
	return p, report, nil
}

func findColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	lookup := func(field string, names []string) (int, error) {
		for _, n := range names {
			if i, ok := index[n]; ok {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %s (one of %s)", ErrMissingColumn, field, strings.Join(names, ", "))
	}

	var cols columns
	var err error
	if cols.name, err = lookup("name", nameColumns); err != nil {
		return cols, err
	}
	if cols.r, err = lookup("red", redColumns); err != nil {
		return cols, err
	}
	if cols.g, err = lookup("green", greenColumns); err != nil {
		return cols, err
	}
	if cols.b, err = lookup("blue", blueColumns); err != nil {
		return cols, err
	}
	return cols, nil
}

func parseRow(record []string, cols columns) (Entry, error) {
	field := func(i int) (string, error) {
		if i >= len(record) {
			return "", fmt.Errorf("%d fields, need at least %d", len(record), i+1)
		}
		return strings.TrimSpace(record[i]), nil
	}

	name, err := field(cols.name)
	if err != nil {
		return Entry{}, err
	}
	if name == "" {
		return Entry{}, errors.New("empty name")
	}

	var ch [3]uint8
	for i, c := range []int{cols.r, cols.g, cols.b} {
		s, err := field(c)
		if err != nil {
			return Entry{}, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return Entry{}, fmt.Errorf("channel %q: not an integer", s)
		}
		if v < 0 || v > 255 {
			return Entry{}, fmt.Errorf("channel %d outside [0,255]", v)
		}
		ch[i] = uint8(v)
	}

	return Entry{Name: name, RGB: colorspace.RGB{R: ch[0], G: ch[1], B: ch[2]}}, nil
}
