// Package mmap provides read-only memory mapping of whole files for the
// local blob store, with a plain-read fallback on platforms without mmap
// support.
package mmap

import "os"

// Mapping is a read-only view of a file's content.
type Mapping struct {
	data   []byte
	mapped bool
}

// Open maps the file at path. Empty files yield a valid empty mapping.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return &Mapping{}, nil
	}
	return openMapping(f, info.Size())
}

// Bytes returns the mapped content. The slice is valid until Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Close releases the mapping.
func (m *Mapping) Close() error {
	if !m.mapped {
		m.data = nil
		return nil
	}
	data := m.data
	m.data = nil
	m.mapped = false
	return unmap(data)
}
