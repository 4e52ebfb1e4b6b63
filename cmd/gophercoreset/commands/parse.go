package commands

import (
	"fmt"
	"strings"

	gopio "github.com/TIVerse/gophercoreset/io"
	"gonum.org/v1/gonum/mat"
)

// resolveParser picks a Parser by explicit format name, falling back to a
// guess from the file extension: ".bow"/".txt" implies bag-of-words,
// anything else implies census-style CSV.
func resolveParser(format, path string) gopio.Parser {
	switch format {
	case "bow":
		return gopio.NewBagOfWordsParser()
	case "census":
		return gopio.NewCensusCSVParser()
	default:
		if strings.HasSuffix(path, ".bow") || strings.HasSuffix(path, ".txt") {
			return gopio.NewBagOfWordsParser()
		}
		return gopio.NewCensusCSVParser()
	}
}

func parseInput(format, path string) (*mat.Dense, error) {
	parser := resolveParser(format, path)
	points, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return points, nil
}
