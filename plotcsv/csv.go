package plotcsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lmika/gopkgs/fp/slices"
)

const maxRecordSize = 1024 * 1024

type record struct {
	line int
	text string
}

// ExtractColumn reads comma separated records from r and returns the value of
// the zero-based column col of each record, in file order.
//
// Blank lines are not records. Fields are split on every comma; there is no
// quoting. A field that does not parse as a number is read as 0.
func ExtractColumn(r io.Reader, col int) ([]float64, error) {
	if col < 0 {
		return nil, fmt.Errorf("%w: column %d", ErrColumnOutOfRange, col)
	}

	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	records = slices.Filter(records, func(r record) bool { return strings.TrimSpace(r.text) != "" })
	values, err := slices.MapWithError(records, func(r record) (float64, error) {
		fields := strings.Split(r.text, ",")
		if col >= len(fields) {
			return 0, &ColumnOutOfRangeError{Line: r.line, Column: col, Fields: len(fields)}
		}
		return ParseField(fields[col]), nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ParseField converts the text of a single field to a number. Surrounding
// whitespace is ignored. Text that is not a number is read as 0, and numbers
// too large for a float64 saturate to ±Inf.
func ParseField(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}

func readRecords(r io.Reader) ([]record, error) {
	records := make([]record, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	line := 0
	for scanner.Scan() {
		line++
		records = append(records, record{line: line, text: strings.TrimSuffix(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadColumn extracts a column from the CSV file at path.
func (s *Session) ReadColumn(path string, col int) ([]float64, error) {
	f, err := s.openFile(path)
	if err != nil {
		return nil, fileNotFound(err)
	}
	defer f.Close()

	values, err := ExtractColumn(f, col)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}
