package layout

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Marshaler is implemented by records that know their binary layout.
type Marshaler interface {
	MarshalLayout(w *Writer)
}

type unmarshaler[T any] interface {
	*T
	UnmarshalLayout(r *Reader)
}

type recordCodec[T Marshaler, PT unmarshaler[T]] struct {
	name string
}

// RecordValue returns a collections value codec that stores T in its binary layout and
// uses JSON for genesis import and export.
func RecordValue[T Marshaler, PT unmarshaler[T]](name string) collcodec.ValueCodec[T] {
	return recordCodec[T, PT]{name: name}
}

func (c recordCodec[T, PT]) Encode(value T) ([]byte, error) {
	w := NewWriter()
	value.MarshalLayout(w)
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return w.Bytes(), nil
}

func (c recordCodec[T, PT]) Decode(b []byte) (T, error) {
	var value T
	r := NewReader(b)
	PT(&value).UnmarshalLayout(r)
	if err := r.Err(); err != nil {
		return value, fmt.Errorf("decode %s: %w", c.name, err)
	}
	if r.Remaining() != 0 {
		return value, fmt.Errorf("decode %s: %d trailing bytes", c.name, r.Remaining())
	}
	return value, nil
}

func (c recordCodec[T, PT]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c recordCodec[T, PT]) DecodeJSON(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c recordCodec[T, PT]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c recordCodec[T, PT]) ValueType() string {
	return "breeez/" + c.name
}

// Encode is a convenience for sizing and tests.
func Encode(m Marshaler) ([]byte, error) {
	w := NewWriter()
	m.MarshalLayout(w)
	return w.Bytes(), w.Err()
}
