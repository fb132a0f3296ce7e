package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goaci/internal/beam"
)

func TestGenerate(t *testing.T) {
	input := beam.DefaultInput(beam.Imperial)
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	var buf bytes.Buffer
	if err := Generate(&buf, input, *result); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (starts with %q)", buf.Bytes()[:8])
	}
	if buf.Len() < 1000 {
		t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
	}
}

func TestGenerateDegenerate(t *testing.T) {
	input := beam.DefaultInput(beam.SI)
	input.NumBars = 0
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	var buf bytes.Buffer
	if err := Generate(&buf, input, *result); err != nil {
		t.Fatalf("Generate error for degenerate result: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("degenerate report is not a PDF")
	}
}

func TestGenerateFile(t *testing.T) {
	input := beam.DefaultInput(beam.SI)
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := GenerateFile(path, input, *result); err != nil {
		t.Fatalf("GenerateFile error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}
