package fast

import "io"

// Reader is a forward-only cursor over an immutable byte slice. Reads past the end
// report io.ErrUnexpectedEOF and leave the cursor where it was.
type Reader struct {
	buf    []byte
	offset int
}

// Writer accumulates bytes. Fixtures and sample files are assembled with it.
type Writer struct {
	buf []byte
}

// NewReader starts a cursor at the first byte of bb.
func NewReader(bb []byte) *Reader {
	return &Reader{buf: bb}
}

// NewWriter appends to bb, usually make([]byte, 0, capacity).
func NewWriter(bb []byte) *Writer {
	return &Writer{buf: bb}
}

// WriteByte appends a single byte.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends v.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// Read consumes the next n bytes. The result aliases the underlying buffer.
func (b *Reader) Read(n int) ([]byte, error) {
	if n < 0 || n > b.Remaining() {
		return nil, io.ErrUnexpectedEOF
	}
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res, nil
}

// ReadByte consumes one byte.
func (b *Reader) ReadByte() (byte, error) {
	if b.Empty() {
		return 0, io.ErrUnexpectedEOF
	}
	res := b.buf[b.offset]
	b.offset++
	return res, nil
}

// Position is the number of bytes consumed so far.
func (b *Reader) Position() int {
	return b.offset
}

// Remaining is the number of bytes not yet consumed.
func (b *Reader) Remaining() int {
	return len(b.buf) - b.offset
}

// Bytes returns the whole input, consumed or not.
func (b *Reader) Bytes() []byte {
	return b.buf
}

func (b *Writer) Bytes() []byte {
	return b.buf
}

// Empty reports whether every byte has been consumed.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
