package io

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/TIVerse/gophercoreset/core"
	"gonum.org/v1/gonum/mat"
)

// CensusCSVParser reads delimited numeric survey data: a header line is
// skipped, and the first SkipColumns columns of every remaining row are
// dropped before the rest are parsed as float64. Transparently decompresses
// a .gz-suffixed path.
//
// Grounded on original_source/source/data/census_parser.cpp, which skips
// a header line, splits on commas, and drops the leading "caseid" column
// before parsing the remaining 68 fields as floats.
type CensusCSVParser struct {
	Delimiter   rune
	SkipColumns int
}

// CensusOption configures a CensusCSVParser, mirroring the teacher's
// io/csv functional-option style.
type CensusOption func(*CensusCSVParser)

// WithCensusDelimiter overrides the default comma delimiter.
func WithCensusDelimiter(delim rune) CensusOption {
	return func(p *CensusCSVParser) { p.Delimiter = delim }
}

// WithSkipColumns sets how many leading columns (such as a record ID) to
// drop from every row before parsing the rest as floats. Default 1.
func WithSkipColumns(n int) CensusOption {
	return func(p *CensusCSVParser) { p.SkipColumns = n }
}

// NewCensusCSVParser builds a CensusCSVParser with the original's
// defaults: comma-delimited, one leading ID column skipped.
func NewCensusCSVParser(opts ...CensusOption) *CensusCSVParser {
	p := &CensusCSVParser{Delimiter: ',', SkipColumns: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads path, skipping its header line, and returns every
// remaining well-formed row as a matrix row.
func (p *CensusCSVParser) Parse(path string) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("io: failed to open %s: %w", path, err)
	}
	defer file.Close()

	var reader *csv.Reader
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("io: failed to decompress %s: %w", path, err)
		}
		defer gz.Close()
		reader = csv.NewReader(gz)
	} else {
		reader = csv.NewReader(file)
	}
	reader.Comma = p.Delimiter
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("io: failed to read header of %s: %w", path, err)
	}

	var rows [][]float64
	dims := -1
	lineNo := 1
	for {
		record, err := reader.Read()
		if err == goio.EOF {
			break
		}
		lineNo++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("io: failed to read %s at record %d: %w", path, lineNo, err)
		}

		if len(record) <= p.SkipColumns {
			continue
		}
		fields := record[p.SkipColumns:]
		if dims == -1 {
			dims = len(fields)
		}
		if len(fields) != dims {
			continue
		}

		row := make([]float64, dims)
		ok := true
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				ok = false
				break
			}
			row[j] = v
		}
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("io: no parseable rows in %s: %w", path, core.ErrDegenerateData)
	}

	out := mat.NewDense(len(rows), dims, nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}
	return out, nil
}
