package rawPng

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Each chunk starts with a uint32 length (big endian), then 4 byte name,
// then data and finally the CRC32 over name and data.
type Chunk struct {
	Length uint32 // chunk data length
	CType  string // chunk type
	Data   []byte // chunk data
	Crc32  uint32 // CRC32 of chunk type and data
}

// Populate reads one chunk from the reader and validates its checksum.
// A clean end of stream before the first length byte is reported as io.EOF;
// running dry anywhere past that point is ErrTruncatedChunk. On any failure
// the reader is left at an unspecified position and must not be reused.
func (c *Chunk) Populate(r io.Reader) error {
	// 4 byte
	buf := make([]byte, 4)
	// Read first four bytes == chunk length.
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return errors.Wrap(ErrTruncatedChunk, "length")
	}
	c.Length = binary.BigEndian.Uint32(buf)

	// The type tag is 4 arbitrary bytes, conventionally ASCII but never
	// required to be.
	tag := make([]byte, 4)
	if _, err := io.ReadFull(r, tag); err != nil {
		return errors.Wrap(ErrTruncatedChunk, "type tag")
	}
	c.CType = string(tag)

	// Read chunk data.
	c.Data = make([]byte, c.Length)
	if _, err := io.ReadFull(r, c.Data); err != nil {
		return errors.Wrapf(ErrTruncatedChunk, "%q data", c.CType)
	}

	// Read CRC32 hash.
	if _, err := io.ReadFull(r, buf); err != nil {
		return errors.Wrapf(ErrTruncatedChunk, "%q checksum", c.CType)
	}
	c.Crc32 = binary.BigEndian.Uint32(buf)

	sum32 := UpdateCrc(UpdateCrc(0xffffffff, tag), c.Data) ^ 0xffffffff
	if c.Crc32 != sum32 {
		return errors.Wrapf(ErrCrcMismatch, "chunk %q: computed %08x, stored %08x", c.CType, sum32, c.Crc32)
	}
	return nil
}
