// Package png assembles chunk records into a whole PNG container: the 8-byte
// file signature followed by a sequence of chunks. Pixel data is carried
// through untouched; this package never decodes image content.
package png

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/pngwire/internal/common"
	"github.com/rawbytedev/pngwire/pkg/chunk"
)

var (
	ErrSignature     = errors.New("bad png signature")
	ErrTruncated     = errors.New("truncated png")
	ErrChunkNotFound = errors.New("chunk not found")
)

// Signature is the fixed PNG file header.
var Signature = [8]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// File is an ordered chunk sequence.
type File struct {
	chunks []chunk.Chunk
}

// FromChunks builds a File from an existing chunk list. The slice is owned
// by the File afterwards.
func FromChunks(chunks []chunk.Chunk) *File {
	return &File{chunks: chunks}
}

// Decode parses a whole PNG buffer: signature gate, then a walk of
// length-prefixed records, each handed to chunk.Decode. A record that does
// not fit the remaining buffer is ErrTruncated.
func Decode(buf []byte) (*File, error) {
	if len(buf) < len(Signature) {
		return nil, ErrTruncated
	}
	for i, b := range Signature {
		if buf[i] != b {
			return nil, ErrSignature
		}
	}

	f := &File{}
	rest := buf[len(Signature):]
	for len(rest) > 0 {
		if len(rest) < 4 {
			return nil, ErrTruncated
		}
		total := 12 + int(common.Uint32(rest))
		if len(rest) < total {
			return nil, ErrTruncated
		}
		c, err := chunk.Decode(rest[:total])
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(f.chunks), err)
		}
		f.chunks = append(f.chunks, c)
		rest = rest[total:]
	}
	return f, nil
}

// Chunks returns the chunk list in file order.
func (f *File) Chunks() []chunk.Chunk { return f.chunks }

// AppendChunk pushes c at the end of the file.
func (f *File) AppendChunk(c chunk.Chunk) {
	f.chunks = append(f.chunks, c)
}

// InsertChunk places c immediately before a trailing IEND chunk; without
// one it appends.
func (f *File) InsertChunk(c chunk.Chunk) {
	if n := len(f.chunks); n > 0 && f.chunks[n-1].Type().String() == "IEND" {
		f.chunks = append(f.chunks[:n-1], c, f.chunks[n-1])
		return
	}
	f.chunks = append(f.chunks, c)
}

// ChunkByType returns the first chunk whose tag renders as tag, or nil.
func (f *File) ChunkByType(tag string) *chunk.Chunk {
	for i := range f.chunks {
		if f.chunks[i].Type().String() == tag {
			return &f.chunks[i]
		}
	}
	return nil
}

// RemoveChunk removes and returns the first chunk with the given tag.
func (f *File) RemoveChunk(tag string) (chunk.Chunk, error) {
	for i := range f.chunks {
		if f.chunks[i].Type().String() == tag {
			c := f.chunks[i]
			f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
			return c, nil
		}
	}
	return chunk.Chunk{}, ErrChunkNotFound
}

// Encode emits the signature followed by every chunk's wire record.
func (f *File) Encode() []byte {
	size := len(Signature)
	for i := range f.chunks {
		size += 12 + len(f.chunks[i].Data())
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for i := range f.chunks {
		out = f.chunks[i].AppendEncode(out)
	}
	return out
}

// Info is the image geometry carried by the IHDR chunk.
type Info struct {
	Width     uint32
	Height    uint32
	BitDepth  byte
	ColorType byte
}

// ihdrSize is the fixed IHDR payload length.
const ihdrSize = 13

// Info decodes the leading IHDR chunk. Files without one (bare chunk
// streams built by FromChunks) report ErrChunkNotFound.
func (f *File) Info() (Info, error) {
	c := f.ChunkByType("IHDR")
	if c == nil {
		return Info{}, ErrChunkNotFound
	}
	d := c.Data()
	if len(d) < ihdrSize {
		return Info{}, fmt.Errorf("IHDR: %w", ErrTruncated)
	}
	return Info{
		Width:     common.Uint32(d[0:4]),
		Height:    common.Uint32(d[4:8]),
		BitDepth:  d[8],
		ColorType: d[9],
	}, nil
}
