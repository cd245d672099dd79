package mmap

import (
	"io"
	"math"
	"os"
	"sync/atomic"
)

// Mapping represents a memory-mapped file or anonymous region.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data     []byte
	writable bool
	file     bool
	closed   atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// Open maps the file at path into memory as read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size < 0 || size > math.MaxInt {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{file: true}, nil
	}

	data, unmap, err := osMap(f, int(size), false)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, file: true, unmap: unmap}, nil
}

// OpenWritable maps the file at path read-write, creating it if needed.
// The file is grown to size bytes if shorter; a longer file is mapped only up
// to size. Writes reach the file no later than Close, or earlier via Sync.
func OpenWritable(path string, size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			return nil, err
		}
	}
	if size == 0 {
		return &Mapping{writable: true, file: true}, nil
	}

	data, unmap, err := osMap(f, size, true)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, writable: true, file: true, unmap: unmap}, nil
}

// MapAnon creates a zeroed read-write mapping not backed by any file.
func MapAnon(size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{writable: true}, nil
	}
	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, writable: true, unmap: unmap}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Writable reports whether the mapping may be written.
func (m *Mapping) Writable() bool {
	return m.writable
}

// Sync flushes a writable file mapping to its file. Anonymous mappings have
// nothing to flush.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if !m.writable {
		return ErrReadOnly
	}
	if !m.file || len(m.data) == 0 {
		return nil
	}
	return osSync(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
