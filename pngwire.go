// Package pngwire hides and recovers byte payloads inside PNG files by
// carrying them in extra chunks. The chunk and container codecs live in
// pkg/chunk and pkg/png; this package is the high-level API the CLI uses.
package pngwire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/pngwire/pkg/chunk"
	"github.com/rawbytedev/pngwire/pkg/png"
)

// Options control payload handling.
type Options struct {
	Zstd bool // compress payloads before embedding, decompress on extract
}

// Stego embeds, extracts and removes hidden chunk payloads.
type Stego struct {
	Opts Options
}

func New(opts Options) *Stego {
	return &Stego{Opts: opts}
}

// Embed hides msg in img under a chunk with the given tag and returns the
// re-encoded image. The chunk is placed before a trailing IEND when the
// image has one. A tag already present is not an error; readers see the
// first occurrence.
func (s *Stego) Embed(img []byte, tag string, msg []byte) ([]byte, error) {
	typ, err := chunk.TypeFromString(tag)
	if err != nil {
		return nil, err
	}
	f, err := png.Decode(img)
	if err != nil {
		return nil, err
	}
	payload := msg
	if s.Opts.Zstd {
		payload, err = compress(msg)
		if err != nil {
			return nil, err
		}
	}
	f.InsertChunk(chunk.New(typ, payload))
	return f.Encode(), nil
}

// Extract returns the payload hidden under tag.
func (s *Stego) Extract(img []byte, tag string) ([]byte, error) {
	f, err := png.Decode(img)
	if err != nil {
		return nil, err
	}
	c := f.ChunkByType(tag)
	if c == nil {
		return nil, png.ErrChunkNotFound
	}
	if s.Opts.Zstd {
		return decompress(c.Data())
	}
	return c.Bytes(), nil
}

// Remove drops the first chunk with the given tag and returns the
// re-encoded image.
func (s *Stego) Remove(img []byte, tag string) ([]byte, error) {
	f, err := png.Decode(img)
	if err != nil {
		return nil, err
	}
	if _, err := f.RemoveChunk(tag); err != nil {
		return nil, err
	}
	return f.Encode(), nil
}

// ChunkSummary describes one chunk for listings.
type ChunkSummary struct {
	Type       string
	Length     uint32
	CRC        uint32
	Critical   bool
	Public     bool
	SafeToCopy bool
}

// List summarizes every chunk in img in file order.
func List(img []byte) ([]ChunkSummary, error) {
	f, err := png.Decode(img)
	if err != nil {
		return nil, err
	}
	chunks := f.Chunks()
	out := make([]ChunkSummary, 0, len(chunks))
	for _, c := range chunks {
		t := c.Type()
		out = append(out, ChunkSummary{
			Type:       t.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   t.IsCritical(),
			Public:     t.IsPublic(),
			SafeToCopy: t.IsSafeToCopy(),
		})
	}
	return out, nil
}

func compress(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

func decompress(raw []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("payload is not zstd: %w", err)
	}
	return out, nil
}
