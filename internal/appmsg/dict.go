package appmsg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Well-known message keys shared with the companion.
const (
	KeyRequestWeather uint32 = 0
	KeyTemperature    uint32 = 10000
	KeyConditions     uint32 = 10001
)

// TupleType identifies how a tuple's value bytes are interpreted.
type TupleType uint8

const (
	TypeByteArray TupleType = iota
	TypeCString
	TypeUint
	TypeInt
)

func (t TupleType) String() string {
	switch t {
	case TypeByteArray:
		return "bytes"
	case TypeCString:
		return "cstring"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

const (
	dictHeaderSize  = 1 // tuple count
	tupleHeaderSize = 7 // key(4) + type(1) + length(2)
	maxTuples       = 255
)

var (
	ErrTruncated     = errors.New("appmsg: truncated dictionary")
	ErrTooManyTuples = errors.New("appmsg: too many tuples")
	ErrBadWidth      = errors.New("appmsg: unsupported integer width")
)

// Tuple is a single key/value pair. Integers are stored little-endian with a
// width of 1, 2 or 4 bytes; C strings carry their NUL terminator.
type Tuple struct {
	Key   uint32
	Type  TupleType
	Value []byte
}

// Uint8 builds an unsigned one-byte tuple.
func Uint8(key uint32, v uint8) Tuple {
	return Tuple{Key: key, Type: TypeUint, Value: []byte{v}}
}

// Int32 builds a signed four-byte tuple.
func Int32(key uint32, v int32) Tuple {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return Tuple{Key: key, Type: TypeInt, Value: b}
}

// CString builds a NUL-terminated string tuple.
func CString(key uint32, s string) Tuple {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return Tuple{Key: key, Type: TypeCString, Value: b}
}

// Int returns the tuple's integer value. ok is false for non-integer tuples
// and for widths other than 1, 2 or 4 bytes.
func (t Tuple) Int() (v int64, ok bool) {
	switch t.Type {
	case TypeInt:
		switch len(t.Value) {
		case 1:
			return int64(int8(t.Value[0])), true
		case 2:
			return int64(int16(binary.LittleEndian.Uint16(t.Value))), true
		case 4:
			return int64(int32(binary.LittleEndian.Uint32(t.Value))), true
		}
	case TypeUint:
		switch len(t.Value) {
		case 1:
			return int64(t.Value[0]), true
		case 2:
			return int64(binary.LittleEndian.Uint16(t.Value)), true
		case 4:
			return int64(binary.LittleEndian.Uint32(t.Value)), true
		}
	}
	return 0, false
}

// Str returns the tuple's string value without the NUL terminator.
func (t Tuple) Str() (string, bool) {
	if t.Type != TypeCString {
		return "", false
	}
	if i := bytes.IndexByte(t.Value, 0); i >= 0 {
		return string(t.Value[:i]), true
	}
	return string(t.Value), true
}

// Dict is an ordered set of tuples with unique keys.
type Dict struct {
	tuples []Tuple
}

// NewDict returns a dictionary holding the given tuples. Later tuples replace
// earlier ones with the same key.
func NewDict(tuples ...Tuple) Dict {
	var d Dict
	for _, t := range tuples {
		d.Set(t)
	}
	return d
}

// Set adds t, replacing any tuple with the same key.
func (d *Dict) Set(t Tuple) {
	for i := range d.tuples {
		if d.tuples[i].Key == t.Key {
			d.tuples[i] = t
			return
		}
	}
	d.tuples = append(d.tuples, t)
}

// Find returns the tuple stored under key.
func (d Dict) Find(key uint32) (Tuple, bool) {
	for _, t := range d.tuples {
		if t.Key == key {
			return t, true
		}
	}
	return Tuple{}, false
}

// Len returns the number of tuples.
func (d Dict) Len() int { return len(d.tuples) }

// Tuples returns the tuples in insertion order.
func (d Dict) Tuples() []Tuple { return d.tuples }

// Size returns the encoded size in bytes, the figure compared against the
// inbox and outbox capacities.
func (d Dict) Size() int {
	n := dictHeaderSize
	for _, t := range d.tuples {
		n += tupleHeaderSize + len(t.Value)
	}
	return n
}

// MarshalBinary encodes the dictionary in the wire layout:
// count(1) then, per tuple, key(4 LE) type(1) length(2 LE) value.
func (d Dict) MarshalBinary() ([]byte, error) {
	if len(d.tuples) > maxTuples {
		return nil, ErrTooManyTuples
	}
	buf := make([]byte, 0, d.Size())
	buf = append(buf, uint8(len(d.tuples)))
	for _, t := range d.tuples {
		if len(t.Value) > 0xFFFF {
			return nil, fmt.Errorf("appmsg: tuple %d value too long (%d bytes)", t.Key, len(t.Value))
		}
		buf = binary.LittleEndian.AppendUint32(buf, t.Key)
		buf = append(buf, uint8(t.Type))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(t.Value)))
		buf = append(buf, t.Value...)
	}
	return buf, nil
}

// UnmarshalBinary decodes a dictionary produced by MarshalBinary.
func (d *Dict) UnmarshalBinary(data []byte) error {
	if len(data) < dictHeaderSize {
		return ErrTruncated
	}
	count := int(data[0])
	data = data[dictHeaderSize:]
	tuples := make([]Tuple, 0, count)
	for i := 0; i < count; i++ {
		if len(data) < tupleHeaderSize {
			return ErrTruncated
		}
		key := binary.LittleEndian.Uint32(data[0:4])
		typ := TupleType(data[4])
		n := int(binary.LittleEndian.Uint16(data[5:7]))
		data = data[tupleHeaderSize:]
		if len(data) < n {
			return ErrTruncated
		}
		if (typ == TypeInt || typ == TypeUint) && n != 1 && n != 2 && n != 4 {
			return fmt.Errorf("tuple %d: %w (%d)", key, ErrBadWidth, n)
		}
		value := make([]byte, n)
		copy(value, data[:n])
		tuples = append(tuples, Tuple{Key: key, Type: typ, Value: value})
		data = data[n:]
	}
	*d = NewDict(tuples...)
	return nil
}
