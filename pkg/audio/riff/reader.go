// ABOUTME: Byte cursor used by the WAV decoder
// ABOUTME: Bounds-checked little-endian reads that report truncation
package riff

import (
	"encoding/binary"
	"fmt"
)

type cursor struct {
	buf []byte
	off int
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// next consumes n bytes
func (c *cursor) next(n uint32) ([]byte, error) {
	if uint64(n) > uint64(c.remaining()) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.off, c.remaining())
	}
	b := c.buf[c.off : c.off+int(n)]
	c.off += int(n)
	return b, nil
}

func (c *cursor) skip(n uint32) error {
	_, err := c.next(n)
	return err
}

func (c *cursor) fourCC() ([4]byte, error) {
	var id [4]byte
	b, err := c.next(4)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
