package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxStringLen bounds the length of any string in the stream.
const MaxStringLen = 1 << 20

// Writer writes primitives to an underlying io.Writer. The first failure is
// kept in Err and turns every later call into a no-op, so a record can be
// written in full and checked once.
type Writer struct {
	w       io.Writer
	scratch [8]byte
	Err     error
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}

// WriteTag writes a record tag.
func (w *Writer) WriteTag(t Tag) {
	w.WriteU32(uint32(t))
}

// WriteU32 writes an unsigned integer.
func (w *Writer) WriteU32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	w.write(w.scratch[:4])
}

// WriteI32 writes a signed integer.
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteF64 writes a real.
func (w *Writer) WriteF64(v float64) {
	binary.LittleEndian.PutUint64(w.scratch[:8], math.Float64bits(v))
	w.write(w.scratch[:8])
}

// WriteBool writes a boolean as one byte.
func (w *Writer) WriteBool(v bool) {
	w.scratch[0] = 0
	if v {
		w.scratch[0] = 1
	}
	w.write(w.scratch[:1])
}

// WriteString writes a length-prefixed string.
func (w *Writer) WriteString(s string) {
	if w.Err != nil {
		return
	}
	if len(s) > MaxStringLen {
		w.Err = fmt.Errorf("codec: string of %d bytes exceeds %d", len(s), MaxStringLen)
		return
	}
	w.WriteU32(uint32(len(s)))
	if w.Err == nil && len(s) > 0 {
		_, w.Err = io.WriteString(w.w, s)
	}
}
