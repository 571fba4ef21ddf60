package pngwire

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/pngwire/pkg/chunk"
	"github.com/rawbytedev/pngwire/pkg/png"
)

// testImage builds a minimal valid container: IHDR (1x1, 8-bit RGBA) + IEND.
func testImage(t testing.TB) []byte {
	t.Helper()
	ihdr, err := chunk.TypeFromString("IHDR")
	require.NoError(t, err)
	iend, err := chunk.TypeFromString("IEND")
	require.NoError(t, err)
	f := png.FromChunks([]chunk.Chunk{
		chunk.New(ihdr, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}),
		chunk.New(iend, nil),
	})
	return f.Encode()
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	s := New(Options{})
	img, err := s.Embed(testImage(t), "ruSt", []byte("secret message"))
	require.NoError(t, err)

	msg, err := s.Extract(img, "ruSt")
	require.NoError(t, err)
	require.Equal(t, []byte("secret message"), msg)
}

func TestEmbedKeepsIENDLast(t *testing.T) {
	s := New(Options{})
	img, err := s.Embed(testImage(t), "ruSt", []byte("x"))
	require.NoError(t, err)

	summaries, err := List(img)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "IHDR", summaries[0].Type)
	assert.Equal(t, "ruSt", summaries[1].Type)
	assert.Equal(t, "IEND", summaries[2].Type)
}

func TestEmbedBadTag(t *testing.T) {
	s := New(Options{})
	_, err := s.Embed(testImage(t), "ru1t", []byte("x"))
	require.ErrorIs(t, err, chunk.ErrInvalidType)
}

func TestEmbedBadImage(t *testing.T) {
	s := New(Options{})
	_, err := s.Embed([]byte("not a png"), "ruSt", []byte("x"))
	require.Error(t, err)
}

func TestExtractMissing(t *testing.T) {
	s := New(Options{})
	_, err := s.Extract(testImage(t), "ruSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestRemove(t *testing.T) {
	s := New(Options{})
	img, err := s.Embed(testImage(t), "ruSt", []byte("gone soon"))
	require.NoError(t, err)

	clean, err := s.Remove(img, "ruSt")
	require.NoError(t, err)
	_, err = s.Extract(clean, "ruSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)

	_, err = s.Remove(clean, "ruSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestZstdRoundTrip(t *testing.T) {
	s := New(Options{Zstd: true})
	msg := []byte("a message long enough that zstd has something to chew on, repeated: secret secret secret secret")
	img, err := s.Embed(testImage(t), "ruSt", msg)
	require.NoError(t, err)

	got, err := s.Extract(img, "ruSt")
	require.NoError(t, err)
	require.Equal(t, msg, got)

	// Reading a compressed payload without the option yields the raw bytes,
	// not the message.
	raw, err := New(Options{}).Extract(img, "ruSt")
	require.NoError(t, err)
	assert.NotEqual(t, msg, raw)
}

func TestExtractNotZstd(t *testing.T) {
	plain := New(Options{})
	img, err := plain.Embed(testImage(t), "ruSt", []byte("plain bytes"))
	require.NoError(t, err)

	_, err = New(Options{Zstd: true}).Extract(img, "ruSt")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	summaries, err := List(testImage(t))
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ihdr := summaries[0]
	assert.Equal(t, "IHDR", ihdr.Type)
	assert.Equal(t, uint32(13), ihdr.Length)
	assert.True(t, ihdr.Critical)
	assert.True(t, ihdr.Public)
	assert.False(t, ihdr.SafeToCopy)
}

func TestRoundTripProperty(t *testing.T) {
	s := New(Options{})
	base := testImage(t)
	condition := func(msg []byte) bool {
		img, err := s.Embed(base, "ruSt", msg)
		if err != nil {
			return false
		}
		got, err := s.Extract(img, "ruSt")
		if err != nil {
			return false
		}
		return assert.ObjectsAreEqual(msg, got)
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func FuzzEmbedExtract(f *testing.F) {
	f.Add([]byte("seed message"))
	f.Add([]byte{})
	f.Add([]byte{0xff, 0x00, 0xfe})
	base := testImage(f)
	f.Fuzz(func(t *testing.T, msg []byte) {
		s := New(Options{})
		img, err := s.Embed(base, "ruSt", msg)
		require.NoError(t, err)
		got, err := s.Extract(img, "ruSt")
		require.NoError(t, err)
		require.Equal(t, len(msg), len(got))
		require.Equal(t, msg, got)
	})
}
