// Package chunk implements the PNG-style chunk record: a length-prefixed,
// CRC-protected unit with a 4-byte case-encoded type tag.
//
// Wire layout (all integers big-endian):
//
//	length   uint32   payload byte count N
//	type     [4]byte  ASCII letters, case-encoded flags
//	payload  N bytes
//	crc      uint32   CRC-32/ISO-HDLC over (type || payload)
package chunk

import (
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/rawbytedev/pngwire/internal/common"
)

// headerSize is the length field plus the type tag; overhead is the full
// per-record framing cost.
const (
	headerSize = 8
	overhead   = 12
)

// Chunk is one immutable record. Construct with New or Decode.
type Chunk struct {
	length uint32
	typ    Type
	data   []byte
	crc    uint32
}

// New builds a Chunk from a type tag and payload. The crc is computed over
// (tag || data) with CRC-32/ISO-HDLC. Payloads past 1<<32-1 bytes truncate
// the length field; callers guard externally.
func New(t Type, data []byte) Chunk {
	b := t.Bytes()
	crc := crc32.Update(crc32.ChecksumIEEE(b[:]), crc32.IEEETable, data)
	return Chunk{
		length: uint32(len(data)),
		typ:    t,
		data:   data,
		crc:    crc,
	}
}

// Decode parses one serialized chunk from buf. The buffer must hold the full
// record: 4-byte length, 4-byte tag, length payload bytes, 4-byte crc. Any
// structural shortfall, an invalid tag, or a crc mismatch fails with
// ErrInvalidChunk; nothing partial is returned.
func Decode(buf []byte) (Chunk, error) {
	if len(buf) < 4 {
		return Chunk{}, fmt.Errorf("%w: short buffer", ErrInvalidChunk)
	}
	length := common.Uint32(buf)
	if len(buf) < headerSize {
		return Chunk{}, fmt.Errorf("%w: short buffer", ErrInvalidChunk)
	}

	var tag [4]byte
	copy(tag[:], buf[4:headerSize])
	typ, err := NewType(tag)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	end := headerSize + int(length)
	if len(buf) < end+4 {
		return Chunk{}, fmt.Errorf("%w: truncated", ErrInvalidChunk)
	}
	data := buf[headerSize:end]
	crc := common.Uint32(buf[end:])

	if crc32.ChecksumIEEE(buf[4:end]) != crc {
		return Chunk{}, fmt.Errorf("%w: crc mismatch", ErrInvalidChunk)
	}
	return Chunk{length: length, typ: typ, data: data, crc: crc}, nil
}

// Length is the payload byte count.
func (c Chunk) Length() uint32 { return c.length }

// Type is the chunk's type tag.
func (c Chunk) Type() Type { return c.typ }

// Data is the payload. The slice is not copied.
func (c Chunk) Data() []byte { return c.data }

// CRC is the checksum over (tag || payload).
func (c Chunk) CRC() uint32 { return c.crc }

// Bytes returns a copy of the payload only, not the wire encoding.
// Use Encode for the full record.
func (c Chunk) Bytes() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// DataString interprets the payload as UTF-8 text.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: payload is not UTF-8", ErrInvalidChunk)
	}
	return string(c.data), nil
}

// String renders the payload for display, substituting a placeholder for
// non-text bytes. It never fails.
func (c Chunk) String() string {
	if !utf8.Valid(c.data) {
		return invalidUTF8
	}
	return string(c.data)
}

// Encode emits the full wire record: length, tag, payload, crc.
func (c Chunk) Encode() []byte {
	return c.AppendEncode(make([]byte, 0, overhead+len(c.data)))
}

// AppendEncode appends the wire record to dst and returns the extended slice.
func (c Chunk) AppendEncode(dst []byte) []byte {
	dst = common.AppendUint32(dst, c.length)
	b := c.typ.Bytes()
	dst = append(dst, b[:]...)
	dst = append(dst, c.data...)
	return common.AppendUint32(dst, c.crc)
}
