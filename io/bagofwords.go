package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/TIVerse/gophercoreset/core"
	"gonum.org/v1/gonum/mat"
)

// BagOfWordsParser reads the UCI "bag of words" sparse triple format:
// a header of three counts (documents, vocabulary size, non-zero
// entries) followed by one "docID wordID count" triple per line,
// 1-indexed. Parse expands the triples into a dense documents-by-
// vocabulary matrix.
//
// Grounded on original_source/include/data/bow_parser.hpp's
// BagOfWordsParser::parse signature; the header declares the method
// but ships no .cpp body in the retrieved source, so the sparse-triple
// layout follows the well-known UCI bag-of-words dataset format the
// class name and project domain (document clustering) both imply.
type BagOfWordsParser struct{}

// NewBagOfWordsParser returns a ready-to-use parser; the format has no
// configurable options.
func NewBagOfWordsParser() *BagOfWordsParser {
	return &BagOfWordsParser{}
}

// Parse reads path and returns the expanded dense matrix.
func (p *BagOfWordsParser) Parse(path string) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("io: failed to open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	numDocs, err := readHeaderInt(scanner, path)
	if err != nil {
		return nil, err
	}
	numWords, err := readHeaderInt(scanner, path)
	if err != nil {
		return nil, err
	}
	nnz, err := readHeaderInt(scanner, path)
	if err != nil {
		return nil, err
	}
	if numDocs <= 0 || numWords <= 0 {
		return nil, fmt.Errorf("io: %s declares non-positive dimensions (%d docs, %d words): %w", path, numDocs, numWords, core.ErrDegenerateData)
	}

	out := mat.NewDense(numDocs, numWords, nil)

	read := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("io: %s line %d: expected 3 fields, got %d: %w", path, read+4, len(fields), core.ErrInvalidArgument)
		}

		docID, err1 := strconv.Atoi(fields[0])
		wordID, err2 := strconv.Atoi(fields[1])
		count, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("io: %s line %d: malformed triple %q: %w", path, read+4, line, core.ErrInvalidArgument)
		}
		if docID < 1 || docID > numDocs || wordID < 1 || wordID > numWords {
			return nil, fmt.Errorf("io: %s line %d: triple (%d,%d) out of declared bounds: %w", path, read+4, docID, wordID, core.ErrIndexOutOfBounds)
		}

		out.Set(docID-1, wordID-1, count)
		read++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("io: failed to read %s: %w", path, err)
	}
	if nnz > 0 && read != nnz {
		return nil, fmt.Errorf("io: %s declared %d non-zero entries but found %d: %w", path, nnz, read, core.ErrInvariantViolation)
	}

	return out, nil
}

func readHeaderInt(scanner *bufio.Scanner, path string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("io: %s ended before its 3-line header completed: %w", path, core.ErrDegenerateData)
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("io: %s header line %q is not an integer: %w", path, scanner.Text(), core.ErrInvalidArgument)
	}
	return v, nil
}
