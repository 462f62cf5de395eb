// Package mmap provides minimal read-only memory mapping of files.
//
// On unix platforms the file is mapped directly; elsewhere the contents
// are read into memory so callers see the same interface.
package mmap

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data   []byte
	mapped bool
}

// Bytes returns the mapped contents. The slice is valid until Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}
