// Package wire implements little-endian payload readers and writers used by
// the RPC decoders and the server query protocol. Readers are sticky: the
// first short read marks the reader failed and every later read returns a
// zero value, so decoders can run straight-line without per-field checks.
package wire

import (
	"encoding/binary"
	"math"
)

// Reader consumes a little-endian payload.
type Reader struct {
	buf    []byte
	off    int
	failed bool
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// OK reports whether every read so far was in bounds.
func (r *Reader) OK() bool { return !r.failed }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) []byte {
	if r.failed || r.off+n > len(r.buf) {
		r.failed = true
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Skip(n int) { r.take(n) }

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) I16() int16 { return int16(r.U16()) }

func (r *Reader) I32() int32 { return int32(r.U32()) }

func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

// Bytes reads exactly n bytes, returning nil on overrun.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// String reads an n-byte string.
func (r *Reader) String(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}

// String8 reads a u8 length prefix followed by that many bytes.
func (r *Reader) String8() string {
	return r.String(int(r.U8()))
}

// String16 reads a u16 length prefix followed by that many bytes.
func (r *Reader) String16() string {
	return r.String(int(r.U16()))
}

// String32 reads a u32 length prefix followed by that many bytes.
func (r *Reader) String32() string {
	n := r.U32()
	if r.failed || int(n) > r.Remaining() {
		r.failed = true
		return ""
	}
	return r.String(int(n))
}

// Writer builds a little-endian payload.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *Writer) I16(v int16) *Writer { return w.U16(uint16(v)) }

func (w *Writer) I32(v int32) *Writer { return w.U32(uint32(v)) }

func (w *Writer) F32(v float32) *Writer {
	return w.U32(math.Float32bits(v))
}

func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// String8 writes a u8 length prefix followed by the bytes.
func (w *Writer) String8(s string) *Writer {
	return w.U8(uint8(len(s))).Raw([]byte(s))
}

// String16 writes a u16 length prefix followed by the bytes.
func (w *Writer) String16(s string) *Writer {
	return w.U16(uint16(len(s))).Raw([]byte(s))
}

// String32 writes a u32 length prefix followed by the bytes.
func (w *Writer) String32(s string) *Writer {
	return w.U32(uint32(len(s))).Raw([]byte(s))
}
