/*
Package lebin implements the primitive layer of the game's binary file formats.

Both .puzzle and .solution files are a flat stream of little-endian fixed-width integers,
single-byte booleans, 7-bit varint length-prefixed UTF-8 strings and int32 count-prefixed
lists. There is no framing around records: the caller drives the Reader field by field in
the order the format version prescribes.
*/
package lebin

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/rony4d/go-opus-magnum/utils/fast"
)

// Decode error kinds shared by every record decoder.
var (
	ErrUnexpectedEOF   = io.ErrUnexpectedEOF
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// MaxVarintLen64 is the longest legal varint: ceil(64/7) bytes.
const MaxVarintLen64 = 10

// Reader reads primitive values from an immutable byte buffer.
// Each decode owns its Reader; nothing is shared between decodes.
type Reader struct {
	BytesR *fast.Reader
}

// NewReader creates a Reader positioned at the start of raw.
func NewReader(raw []byte) *Reader {
	return &Reader{BytesR: fast.NewReader(raw)}
}

// fixed reads a little-endian integer of 'size' bytes.
// Conversion to a narrower signed T keeps the two's complement bit pattern.
func fixed[T constraints.Integer](r *Reader, size int) (T, error) {
	buf, err := r.BytesR.Read(size)
	if err != nil {
		return 0, ErrUnexpectedEOF
	}
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << uint(8*i)
	}
	return T(v), nil
}

func (r *Reader) U8() (uint8, error) {
	return fixed[uint8](r, 1)
}

func (r *Reader) I8() (int8, error) {
	return fixed[int8](r, 1)
}

// Bool reads one byte; any nonzero value is true.
func (r *Reader) Bool() (bool, error) {
	v, err := r.U8()
	return v != 0, err
}

func (r *Reader) I32() (int32, error) {
	return fixed[int32](r, 4)
}

func (r *Reader) I64() (int64, error) {
	return fixed[int64](r, 8)
}

func (r *Reader) U64() (uint64, error) {
	return fixed[uint64](r, 8)
}

// VarUint decodes a base-128 varint, least significant group first.
// The high bit (0x80) of each byte means "more bytes follow".
func (r *Reader) VarUint() (uint64, error) {
	var v uint64
	for i := 0; ; i++ {
		if i == MaxVarintLen64 {
			return 0, errors.Wrap(ErrInvalidEncoding, "varint exceeds 64 bits")
		}
		chunk, err := r.BytesR.ReadByte()
		if err != nil {
			return 0, ErrUnexpectedEOF
		}
		// the tenth byte only has room for bit 63
		if i == MaxVarintLen64-1 && chunk > 1 {
			return 0, errors.Wrap(ErrInvalidEncoding, "varint overflows 64 bits")
		}
		v |= uint64(chunk&0x7F) << uint(7*i)
		if chunk&0x80 == 0 {
			return v, nil
		}
	}
}

// String reads a varint byte length followed by that many bytes of UTF-8.
func (r *Reader) String() (string, error) {
	size, err := r.VarUint()
	if err != nil {
		return "", err
	}
	if size > uint64(r.BytesR.Remaining()) {
		return "", ErrUnexpectedEOF
	}
	buf, err := r.BytesR.Read(int(size))
	if err != nil {
		return "", ErrUnexpectedEOF
	}
	if !utf8.Valid(buf) {
		return "", errors.Wrap(ErrInvalidEncoding, "string is not valid UTF-8")
	}
	return string(buf), nil
}

// List reads an int32 element count and then calls elem that many times.
// A zero count yields an empty, non-nil slice without calling elem.
func List[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.I32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "negative list length %d", n)
	}
	// every element takes at least one byte, so the remaining input bounds the allocation
	capHint := int(n)
	if rem := r.BytesR.Remaining(); capHint > rem {
		capHint = rem
	}
	res := make([]T, 0, capHint)
	for i := 0; i < int(n); i++ {
		v, err := elem(r)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		res = append(res, v)
	}
	return res, nil
}
