package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMalformed reports bytes that cannot belong to a valid stream.
var ErrMalformed = errors.New("codec: malformed stream")

// Reader reads primitives from an underlying io.Reader. Like Writer, it
// keeps the first error in Err; reads after a failure return zero values.
// A stream that ends inside a value fails with io.ErrUnexpectedEOF.
type Reader struct {
	r       io.Reader
	scratch [8]byte
	Err     error
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) fill(b []byte) bool {
	if r.Err != nil {
		return false
	}
	if _, err := io.ReadFull(r.r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		r.Err = err
		return false
	}
	return true
}

// ReadTag reads a record tag.
func (r *Reader) ReadTag() Tag {
	return Tag(r.ReadU32())
}

// ReadU32 reads an unsigned integer.
func (r *Reader) ReadU32() uint32 {
	if !r.fill(r.scratch[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.scratch[:4])
}

// ReadI32 reads a signed integer.
func (r *Reader) ReadI32() int32 {
	return int32(r.ReadU32())
}

// ReadF64 reads a real.
func (r *Reader) ReadF64() float64 {
	if !r.fill(r.scratch[:8]) {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(r.scratch[:8]))
}

// ReadBool reads a one-byte boolean. Bytes other than 0 and 1 are malformed.
func (r *Reader) ReadBool() bool {
	if !r.fill(r.scratch[:1]) {
		return false
	}
	switch r.scratch[0] {
	case 0:
		return false
	case 1:
		return true
	}
	r.Err = fmt.Errorf("%w: bool byte %#x", ErrMalformed, r.scratch[0])
	return false
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() string {
	n := r.ReadU32()
	if r.Err != nil {
		return ""
	}
	if n > MaxStringLen {
		r.Err = fmt.Errorf("%w: string of %d bytes", ErrMalformed, n)
		return ""
	}
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	if !r.fill(b) {
		return ""
	}
	return string(b)
}
