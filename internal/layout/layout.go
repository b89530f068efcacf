// Package layout implements the fixed-width binary layout used to persist module records.
//
// Every field has a known width so a record's encoded size is either a constant or a
// simple function of its variable parts. Writers and readers carry a sticky error, so
// callers check it once at the end.
package layout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MaxAddressLen is the widest account address stored in a record (module-derived addresses).
	MaxAddressLen = 32
	// AddressSize is the encoded width of an address field: one length byte plus padding.
	AddressSize = 1 + MaxAddressLen
	// MaxDenomLength matches the SDK denom grammar upper bound.
	MaxDenomLength = 128
	// DenomSize is the encoded width of a denom field.
	DenomSize = 1 + MaxDenomLength
)

var ErrFieldTooLong = errors.New("field exceeds fixed width")

type Writer struct {
	buf bytes.Buffer
	err error
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) Err() error { return w.err }

func (w *Writer) Len() int { return w.buf.Len() }

func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) Bool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *Writer) Uint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) Uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) Uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

// Padded writes b right-padded with zeros to exactly width bytes, without a length prefix.
func (w *Writer) Padded(b []byte, width int) {
	if len(b) > width {
		w.fail(fmt.Errorf("%w: %d > %d", ErrFieldTooLong, len(b), width))
		b = b[:width]
	}
	w.buf.Write(b)
	w.buf.Write(make([]byte, width-len(b)))
}

// Fixed writes a one byte length followed by b padded to width.
func (w *Writer) Fixed(b []byte, width int) {
	if len(b) > width || width > 255 {
		w.fail(fmt.Errorf("%w: %d > %d", ErrFieldTooLong, len(b), width))
		b = b[:min(len(b), width)]
	}
	w.buf.WriteByte(byte(len(b)))
	w.Padded(b, width)
}

func (w *Writer) Address(addr sdk.AccAddress) {
	w.Fixed(addr, MaxAddressLen)
}

func (w *Writer) Denom(denom string) {
	w.Fixed([]byte(denom), MaxDenomLength)
}

// Raw writes b as is; used for the variable-length parts of a record.
func (w *Writer) Raw(b []byte) {
	w.buf.Write(b)
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(b []byte) *Reader { return &Reader{data: b} }

func (r *Reader) Err() error { return r.err }

// Remaining reports how many bytes have not been consumed yet.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	if n < 0 || r.Remaining() < n {
		r.err = io.ErrUnexpectedEOF
		return make([]byte, max(n, 0))
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Uint8() uint8 { return r.next(1)[0] }

func (r *Reader) Bool() bool { return r.Uint8() != 0 }

func (r *Reader) Uint16() uint16 { return binary.BigEndian.Uint16(r.next(2)) }

func (r *Reader) Uint32() uint32 { return binary.BigEndian.Uint32(r.next(4)) }

func (r *Reader) Uint64() uint64 { return binary.BigEndian.Uint64(r.next(8)) }

func (r *Reader) Int64() int64 { return int64(r.Uint64()) }

func (r *Reader) Padded(width int) []byte {
	return bytes.TrimRight(r.next(width), "\x00")
}

func (r *Reader) Fixed(width int) []byte {
	n := int(r.Uint8())
	b := r.next(width)
	if n > width {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %d > %d", ErrFieldTooLong, n, width)
		}
		return nil
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out
}

func (r *Reader) Address() sdk.AccAddress {
	b := r.Fixed(MaxAddressLen)
	if len(b) == 0 {
		return nil
	}
	return sdk.AccAddress(b)
}

func (r *Reader) Denom() string {
	return string(r.Fixed(MaxDenomLength))
}

func (r *Reader) Raw(n int) []byte {
	out := make([]byte, n)
	copy(out, r.next(n))
	return out
}
