package resultfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_MetadataAndSamples(t *testing.T) {
	input := "# tolerance: 1e-8\n1 0.5 -0.5\nbadline\n2 1.0 2.0\n"

	meta, samples, skipped, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := meta.Get("tolerance"); !ok || v != "1e-8" {
		t.Errorf("expected tolerance=1e-8, got %q (present=%v)", v, ok)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0] != (Sample{Index: 1, Value: complex(0.5, -0.5)}) {
		t.Errorf("unexpected first sample: %+v", samples[0])
	}
	if samples[1] != (Sample{Index: 2, Value: complex(1.0, 2.0)}) {
		t.Errorf("unexpected second sample: %+v", samples[1])
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped line, got %d", skipped)
	}
}

func TestRead_MetadataRules(t *testing.T) {
	input := strings.Join([]string{
		"# just a comment without separator",
		"#key:value",
		"# cuda version : 11.8 : rc2",
		"# key: overwritten",
		"",
	}, "\n")

	meta, samples, skipped, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 0 {
		t.Errorf("expected no samples, got %d", len(samples))
	}
	if skipped != 0 {
		t.Errorf("comments are not malformed lines, got skipped=%d", skipped)
	}
	// Split on the first separator only; both sides trimmed.
	if v, _ := meta.Get("cuda version"); v != "11.8 : rc2" {
		t.Errorf("expected split on first separator, got %q", v)
	}
	// Later duplicate overwrites, key keeps its position.
	if v, _ := meta.Get("key"); v != "overwritten" {
		t.Errorf("expected duplicate key overwritten, got %q", v)
	}
	want := []string{"key", "cuda version"}
	got := meta.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key order: expected %v, got %v", want, got)
			break
		}
	}
}

func TestRead_MalformedDataLinesSkipped(t *testing.T) {
	input := strings.Join([]string{
		"1 0.5 0.5",
		"2 0.5",          // too few tokens
		"3 0.5 0.5 0.5",  // too many tokens
		"x 0.5 0.5",      // bad index
		"4 nope 0.5",     // bad real part
		"5 0.5 nope",     // bad imaginary part
		"6 1e-3 -2.5e+4", // valid scientific notation
	}, "\n")

	_, samples, skipped, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[1] != (Sample{Index: 6, Value: complex(1e-3, -2.5e+4)}) {
		t.Errorf("unexpected sample: %+v", samples[1])
	}
	if skipped != 5 {
		t.Errorf("expected 5 skipped lines, got %d", skipped)
	}
}

func TestRead_PreservesFileOrder(t *testing.T) {
	// No sorting or de-duplication by index.
	input := "3 1 1\n1 2 2\n3 3 3\n"

	_, samples, _, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	indices := make([]int, len(samples))
	for i, s := range samples {
		indices[i] = s.Index
	}
	want := []int{3, 1, 3}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("expected indices %v, got %v", want, indices)
		}
	}
}

func TestRead_BlankAndWhitespaceLines(t *testing.T) {
	input := "\n   \n\t\n1 0.0 0.0\n\n"

	_, samples, skipped, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 1 {
		t.Errorf("expected 1 sample, got %d", len(samples))
	}
	if skipped != 0 {
		t.Errorf("blank lines are not malformed, got skipped=%d", skipped)
	}
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	content := "# texture: 1d\n0 1.25 -0.75\n1 2.0 0.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Path != path {
		t.Errorf("expected path %q, got %q", path, ds.Path)
	}
	if len(ds.Samples) != 2 {
		t.Errorf("expected 2 samples, got %d", len(ds.Samples))
	}
	if v, _ := ds.Meta.Get("texture"); v != "1d" {
		t.Errorf("expected texture=1d, got %q", v)
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
