package common

import "encoding/binary"

// AppendUint32 appends v to dst in big-endian order.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// Uint32 decodes a big-endian uint32 from the first 4 bytes of b.
// The caller guarantees len(b) >= 4.
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}
