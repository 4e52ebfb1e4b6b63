package io

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestCensusCSVParserSkipsHeaderAndID(t *testing.T) {
	path := writeTempFile(t, "census.csv", "caseid,a,b\n1,1.5,2.5\n2,3.5,4.5\n")

	parser := NewCensusCSVParser()
	m, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rows, cols := m.Dims()
	if rows != 2 || cols != 2 {
		t.Fatalf("got %dx%d, want 2x2", rows, cols)
	}
	if m.At(0, 0) != 1.5 || m.At(0, 1) != 2.5 {
		t.Errorf("row 0 = %v, %v; want 1.5, 2.5", m.At(0, 0), m.At(0, 1))
	}
}

func TestCensusCSVParserSkipsMalformedRows(t *testing.T) {
	path := writeTempFile(t, "census.csv", "caseid,a,b\n1,1.0,2.0\n2,not-a-number,4.0\n3,5.0,6.0\n")

	parser := NewCensusCSVParser()
	m, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rows, _ := m.Dims()
	if rows != 2 {
		t.Errorf("expected 2 well-formed rows, got %d", rows)
	}
}

func TestCensusCSVParserRejectsEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "caseid,a,b\n")

	parser := NewCensusCSVParser()
	if _, err := parser.Parse(path); err == nil {
		t.Error("expected an error for a header-only file")
	}
}
