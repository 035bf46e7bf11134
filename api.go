// Package sha256 implements the SHA-256 hash function as defined in FIPS 180-4.
package sha256

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/zeebo/sha256/internal/consts"
)

var (
	// ErrInvalidType is returned by Sum for inputs that are not bytes or text.
	ErrInvalidType = errors.New("sha256: message must be []byte, string or have a Bytes method")

	// ErrInvalidEncoding is returned when text is not valid in the requested
	// encoding.
	ErrInvalidEncoding = errors.New("sha256: invalid text encoding")

	// ErrMessageTooLong is returned when the bit length of a message does not
	// fit in 64 bits.
	ErrMessageTooLong = errors.New("sha256: message too long")
)

// Encoding selects how text is turned into bytes before hashing.
type Encoding int

const (
	// EncodingUTF8 hashes the UTF-8 bytes of the text. It is the default.
	EncodingUTF8 Encoding = iota

	// EncodingASCII only accepts 7-bit ASCII text.
	EncodingASCII
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf8"
	case EncodingASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding returns the Encoding with the given name.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "utf8", "utf-8", "UTF-8", "":
		return EncodingUTF8, nil
	case "ascii", "ASCII":
		return EncodingASCII, nil
	default:
		return 0, fmt.Errorf("unknown encoding: %q", name)
	}
}

// encode validates s against enc. No bytes are ever replaced or dropped.
func (e Encoding) encode(s string) ([]byte, error) {
	switch e {
	case EncodingUTF8:
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size <= 1 {
				return nil, fmt.Errorf("%w: %s: byte 0x%02x at offset %d", ErrInvalidEncoding, e, s[i], i)
			}
			i += size
		}
	case EncodingASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: %s: byte 0x%02x at offset %d", ErrInvalidEncoding, e, s[i], i)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, e)
	}
	return []byte(s), nil
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	out, err := hash(data)
	if err != nil {
		panic(err)
	}
	return out
}

// SumString returns the SHA-256 digest of s after checking that it is valid
// text in the given encoding.
func SumString(s string, enc Encoding) ([Size]byte, error) {
	data, err := enc.encode(s)
	if err != nil {
		return [Size]byte{}, err
	}
	return hash(data)
}

// Sum returns the SHA-256 digest of message, which must be a []byte, a UTF-8
// string, or a value with a Bytes() []byte method such as *bytes.Buffer.
// Anything else fails with ErrInvalidType before any hashing happens.
func Sum(message interface{}) ([Size]byte, error) {
	switch m := message.(type) {
	case []byte:
		return hash(m)
	case string:
		return SumString(m, EncodingUTF8)
	case interface{ Bytes() []byte }:
		if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
			return [Size]byte{}, fmt.Errorf("%w: got nil %T", ErrInvalidType, message)
		}
		return hash(m.Bytes())
	default:
		return [Size]byte{}, fmt.Errorf("%w: got %T", ErrInvalidType, message)
	}
}

// hash runs the pipeline: pad, split into blocks, then fold every block into
// the running state in order.
func hash(message []byte) ([Size]byte, error) {
	padded, err := pad(message)
	if err != nil {
		return [Size]byte{}, err
	}

	state := consts.IV
	var w [consts.Rounds]uint32
	for _, block := range parse(padded) {
		expand(block, &w)
		state = compress(&state, &w)
	}

	return assemble(&state), nil
}
