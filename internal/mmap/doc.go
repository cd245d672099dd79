// Package mmap provides memory-mapped files and anonymous mappings.
//
// # Overview
//
// A Mapping owns a range of memory outside the Go heap. Read-only file
// mappings back local blob reads; writable file mappings and anonymous
// mappings hold the cells of off-heap bit regions.
//
// # Usage
//
//	m, err := mmap.Open("flags.snap")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
//	w, err := mmap.OpenWritable("flags.cells", 4096)
//	w.Bytes()[0] = 0xff
//	_ = w.Sync()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), msync(2) and madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile and VirtualAlloc (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// no goroutine touches Bytes() after Close() returns.
package mmap
