package chunk

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrInvalidType  = errors.New("chunk type must be 4 ASCII letters")
	ErrInvalidChunk = errors.New("invalid chunk")
)

// invalidUTF8 is the placeholder rendered when bytes cannot be shown as text.
const invalidUTF8 = "Invalid UTF-8"

// Type is a 4-byte chunk type tag. The ASCII case of each byte encodes a
// property bit:
//
//	byte 0 uppercase -> critical
//	byte 1 uppercase -> public
//	byte 2 uppercase -> reserved bit valid
//	byte 3 lowercase -> safe to copy
//
// All flags are fixed at construction. The zero Type is invalid.
type Type struct {
	bytes            [4]byte
	valid            bool
	critical         bool
	public           bool
	reservedBitValid bool
	safeToCopy       bool
}

// NewType builds a Type from 4 raw bytes. All 4 must be ASCII letters,
// otherwise ErrInvalidType.
func NewType(b [4]byte) (Type, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return Type{}, ErrInvalidType
		}
	}
	return Type{
		bytes:            b,
		valid:            true,
		critical:         isASCIIUpper(b[0]),
		public:           isASCIIUpper(b[1]),
		reservedBitValid: isASCIIUpper(b[2]),
		safeToCopy:       !isASCIIUpper(b[3]),
	}, nil
}

// TypeFromString builds a Type from the first 4 bytes of s. Anything past
// the fourth byte is ignored; fewer than 4 bytes is ErrInvalidType.
func TypeFromString(s string) (Type, error) {
	if len(s) < 4 {
		return Type{}, ErrInvalidType
	}
	var b [4]byte
	copy(b[:], s[:4])
	return NewType(b)
}

// Bytes returns the raw 4 tag bytes.
func (t Type) Bytes() [4]byte { return t.bytes }

func (t Type) IsValid() bool            { return t.valid }
func (t Type) IsCritical() bool         { return t.critical }
func (t Type) IsPublic() bool           { return t.public }
func (t Type) IsReservedBitValid() bool { return t.reservedBitValid }
func (t Type) IsSafeToCopy() bool       { return t.safeToCopy }

func (t Type) String() string {
	if !utf8.Valid(t.bytes[:]) {
		return invalidUTF8
	}
	return string(t.bytes[:])
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
