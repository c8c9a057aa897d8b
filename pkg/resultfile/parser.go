package resultfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Marker and separator for metadata lines: `# key: value`.
const (
	commentMarker = "#"
	metaSeparator = ":"
)

// Parse reads the result file at path. It fails only if the path does not
// resolve to a readable file; malformed content degrades to fewer samples.
func Parse(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result file: %w", err)
	}
	defer f.Close()

	meta, samples, skipped, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Dataset{Path: path, Meta: meta, Samples: samples, Skipped: skipped}, nil
}

// Read parses result-file content from r, line by line. Returns the metadata,
// the samples in input order, and the number of lines skipped as malformed.
// The only error condition is a failure of the underlying reader.
func Read(r io.Reader) (Metadata, []Sample, int, error) {
	meta := NewMetadata()
	var samples []Sample
	var skipped int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := classify(strings.TrimSpace(scanner.Text()))
		switch line.kind {
		case lineMeta:
			meta.Set(line.key, line.value)
		case lineSample:
			samples = append(samples, line.sample)
		case lineMalformed:
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return Metadata{}, nil, skipped, fmt.Errorf("scanning result file: %w", err)
	}
	return meta, samples, skipped, nil
}

// lineKind classifies one trimmed input line.
type lineKind int

const (
	lineBlank     lineKind = iota
	lineComment            // comment without a key/value separator; ignored
	lineMeta               // `# key: value`
	lineSample             // `index real imag`
	lineMalformed          // wrong token count or unparsable number
)

type parsedLine struct {
	kind   lineKind
	key    string
	value  string
	sample Sample
}

// classify applies the per-line format rules. Each line yields exactly one
// outcome; a malformed line is dropped, never an error.
func classify(line string) parsedLine {
	if line == "" {
		return parsedLine{kind: lineBlank}
	}

	if strings.HasPrefix(line, commentMarker) {
		rest := strings.TrimPrefix(line, commentMarker)
		key, value, found := strings.Cut(rest, metaSeparator)
		if !found {
			return parsedLine{kind: lineComment}
		}
		return parsedLine{
			kind:  lineMeta,
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
		}
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return parsedLine{kind: lineMalformed}
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return parsedLine{kind: lineMalformed}
	}
	re, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return parsedLine{kind: lineMalformed}
	}
	im, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return parsedLine{kind: lineMalformed}
	}
	return parsedLine{kind: lineSample, sample: Sample{Index: index, Value: complex(re, im)}}
}
