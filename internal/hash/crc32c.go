package hash

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// AppendCRC32C appends the checksum of data to dst as four big-endian bytes,
// the form S3 expects in its checksum headers.
func AppendCRC32C(dst, data []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, CRC32C(data))
}

// NewCRC32C returns a streaming CRC32-Castagnoli hash.
func NewCRC32C() hash.Hash32 {
	return crc32.New(castagnoli)
}
