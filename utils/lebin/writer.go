package lebin

import (
	"github.com/rony4d/go-opus-magnum/utils/fast"
)

// Writer emits the same primitives the Reader consumes. It is used to assemble sample
// files and test fixtures; the record types themselves are never encoded back.
type Writer struct {
	BytesW *fast.Writer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{BytesW: fast.NewWriter(make([]byte, 0, 64))}
}

func (w *Writer) Bytes() []byte {
	return w.BytesW.Bytes()
}

func (w *Writer) U8(v uint8) *Writer {
	w.BytesW.WriteByte(v)
	return w
}

func (w *Writer) I8(v int8) *Writer {
	return w.U8(uint8(v))
}

func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

func (w *Writer) fixed(v uint64, size int) *Writer {
	for i := 0; i < size; i++ {
		w.BytesW.WriteByte(byte(v >> uint(8*i)))
	}
	return w
}

func (w *Writer) I32(v int32) *Writer {
	return w.fixed(uint64(uint32(v)), 4)
}

func (w *Writer) I64(v int64) *Writer {
	return w.fixed(uint64(v), 8)
}

func (w *Writer) U64(v uint64) *Writer {
	return w.fixed(v, 8)
}

func (w *Writer) VarUint(v uint64) *Writer {
	for v >= 0x80 {
		w.BytesW.WriteByte(byte(v) | 0x80)
		v >>= 7
	}
	w.BytesW.WriteByte(byte(v))
	return w
}

func (w *Writer) String(s string) *Writer {
	w.VarUint(uint64(len(s)))
	w.BytesW.Write([]byte(s))
	return w
}

// Raw appends bytes verbatim.
func (w *Writer) Raw(b ...byte) *Writer {
	w.BytesW.Write(b)
	return w
}
