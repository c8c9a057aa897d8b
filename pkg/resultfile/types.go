// Package resultfile reads numerical result files: a header of `# key: value`
// metadata lines followed by data lines of indexed complex-valued samples.
package resultfile

// Metadata holds the key/value header of a result file. Keys iterate in
// insertion order; comparison between files ignores order.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata creates an empty Metadata.
func NewMetadata() Metadata {
	return Metadata{values: make(map[string]string)}
}

// Set stores key→value. A duplicate key overwrites the value but keeps the
// key's original position.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m Metadata) Len() int {
	return len(m.keys)
}

// Sample is one data point: an integer index and a complex value.
type Sample struct {
	Index int
	Value complex128
}

// Dataset is the parsed content of one result file. It is read-only after
// parsing; samples keep file order, with no de-duplication or sorting.
type Dataset struct {
	Path    string
	Meta    Metadata
	Samples []Sample
	// Skipped counts non-blank, non-comment lines that matched no rule.
	// Informational only; a malformed file just yields fewer samples.
	Skipped int
}
