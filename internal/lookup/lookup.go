package lookup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ConfigurationError reports that the lookup table could not be loaded.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("player lookup table %q: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Table maps player identifiers to display names and back.
// It is never mutated after Load returns.
type Table struct {
	names map[int]string
	ids   map[string]int
}

// Load reads a two column CSV file (id, name) with a header row.
// Rows whose id is not an integer or that have fewer than two columns are skipped.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	return table, nil
}

// Parse builds a Table from CSV content.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	t := &Table{
		names: make(map[int]string),
		ids:   make(map[string]int),
	}

	header := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(row) < 2 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(row[1])
		t.names[id] = name
		t.ids[name] = id
	}
	return t, nil
}

// LookupName returns the display name for id.
func (t *Table) LookupName(id int) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[id]
	return name, ok
}

// LookupID returns the identifier for an exact display name.
func (t *Table) LookupID(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.ids[name]
	return id, ok
}

// Len returns the number of loaded rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// IDs returns every loaded identifier in no particular order.
func (t *Table) IDs() []int {
	if t == nil {
		return nil
	}
	ids := make([]int, 0, len(t.names))
	for id := range t.names {
		ids = append(ids, id)
	}
	return ids
}
