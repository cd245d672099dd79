package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/bitvec/internal/hash"
)

const (
	// MagicNumber identifies snapshot blobs (ASCII: "BVS1").
	MagicNumber = 0x31535642
	// Version is the current envelope version.
	Version = 1

	headerSize = 24
)

var (
	ErrInvalidMagic     = errors.New("snapshot: invalid magic number")
	ErrInvalidVersion   = errors.New("snapshot: unsupported version")
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	ErrTruncated        = errors.New("snapshot: truncated blob")
)

// ErrUnknownCodec indicates a snapshot written with a codec this build does
// not know.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("snapshot: unknown codec %q", e.Name)
}

// ErrCellWidth indicates a snapshot loaded with a different cell type than
// it was saved with.
type ErrCellWidth struct {
	Want uint8
	Got  uint8
}

func (e *ErrCellWidth) Error() string {
	return fmt.Sprintf("snapshot: saved with %d-bit cells, loading as %d-bit", e.Got, e.Want)
}

// Header is the fixed part of the envelope.
type Header struct {
	Magic      uint32
	Version    uint16
	CellBits   uint8
	Codec      string
	PayloadLen uint64
	Checksum   uint32
}

func encode(cellBits uint8, codecName string, payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(envelopeSize(codecName, payload))
	if err := writeEnvelope(&buf, cellBits, codecName, payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func envelopeSize(codecName string, payload []byte) int {
	return headerSize + len(codecName) + len(payload)
}

// writeEnvelope writes the header and codec name, then the payload.
func writeEnvelope(w io.Writer, cellBits uint8, codecName string, payload []byte) error {
	if len(codecName) == 0 || len(codecName) > 255 {
		return fmt.Errorf("snapshot: codec name %q must be 1..255 bytes", codecName)
	}

	head := make([]byte, headerSize, headerSize+len(codecName))
	binary.LittleEndian.PutUint32(head[0:], MagicNumber)
	binary.LittleEndian.PutUint16(head[4:], Version)
	head[6] = cellBits
	head[7] = uint8(len(codecName))
	binary.LittleEndian.PutUint64(head[8:], uint64(len(payload)))
	binary.LittleEndian.PutUint32(head[16:], hash.CRC32C(payload))
	head = append(head, codecName...)

	if _, err := w.Write(head); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// parseHeader reads the fixed header and codec name from the start of data
// and returns the offset of the payload.
func parseHeader(data []byte) (Header, int, error) {
	if len(data) < headerSize {
		return Header{}, 0, ErrTruncated
	}

	h := Header{
		Magic:      binary.LittleEndian.Uint32(data[0:]),
		Version:    binary.LittleEndian.Uint16(data[4:]),
		CellBits:   data[6],
		PayloadLen: binary.LittleEndian.Uint64(data[8:]),
		Checksum:   binary.LittleEndian.Uint32(data[16:]),
	}
	if h.Magic != MagicNumber {
		return h, 0, ErrInvalidMagic
	}
	if h.Version != Version {
		return h, 0, ErrInvalidVersion
	}

	end := headerSize + int(data[7])
	if len(data) < end {
		return h, 0, ErrTruncated
	}
	h.Codec = string(data[headerSize:end])
	return h, end, nil
}

// decode validates the envelope and returns its header and payload. The
// payload aliases data.
func decode(data []byte) (Header, []byte, error) {
	h, off, err := parseHeader(data)
	if err != nil {
		return h, nil, err
	}

	payload := data[off:]
	if uint64(len(payload)) != h.PayloadLen {
		return h, nil, ErrTruncated
	}
	if hash.CRC32C(payload) != h.Checksum {
		return h, nil, ErrChecksumMismatch
	}
	return h, payload, nil
}
