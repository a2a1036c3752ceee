// Package mailbox receives key/value dictionaries from a paired phone.
//
// A dictionary travels as a single little-endian blob:
//
//	count  uint8
//	count times:
//	  key    uint32
//	  type   uint8
//	  length uint16
//	  value  [length]byte
//
// C strings include their terminating NUL. Integers are 1, 2 or 4 bytes wide.
package mailbox

import (
	"bytes"
	"encoding/binary"
	"github.com/pkg/errors"
	"io"
	"sort"
)

type TupleType uint8

const (
	TypeByteArray TupleType = 0
	TypeCString   TupleType = 1
	TypeUint      TupleType = 2
	TypeInt       TupleType = 3
)

func (t TupleType) String() string {
	switch t {
	case TypeByteArray:
		return "bytearray"
	case TypeCString:
		return "cstring"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	}
	return "unknown"
}

const (
	dictHeaderSize  = 1
	tupleHeaderSize = 4 + 1 + 2
	maxTuples       = 255
)

type tupleHeader struct {
	Key    uint32
	Type   TupleType
	Length uint16
}

type Tuple struct {
	Key   uint32
	Type  TupleType
	Value []byte
}

type Dict map[uint32]Tuple

func NewCString(key uint32, s string) Tuple {
	return Tuple{
		Key:   key,
		Type:  TypeCString,
		Value: append([]byte(s), 0),
	}
}

func NewInt32(key uint32, v int32) Tuple {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return Tuple{
		Key:   key,
		Type:  TypeInt,
		Value: buf,
	}
}

func NewInt8(key uint32, v int8) Tuple {
	return Tuple{
		Key:   key,
		Type:  TypeInt,
		Value: []byte{uint8(v)},
	}
}

// Add sets t and returns the dictionary. A nil Dict is allocated, so always use
// the returned value.
func (d Dict) Add(t Tuple) Dict {
	if d == nil {
		d = Dict{}
	}
	d[t.Key] = t
	return d
}

// CString returns the string stored under key without its NUL terminator.
func (d Dict) CString(key uint32) (string, bool, error) {
	t, ok := d[key]
	if !ok {
		return "", false, nil
	}
	if t.Type != TypeCString {
		return "", true, errors.Errorf("key %d: expected cstring, got %v", key, t.Type)
	}
	if i := bytes.IndexByte(t.Value, 0); i >= 0 {
		return string(t.Value[:i]), true, nil
	}
	return string(t.Value), true, nil
}

// Int32 accepts any integer width, sign extending signed values.
func (d Dict) Int32(key uint32) (int32, bool, error) {
	t, ok := d[key]
	if !ok {
		return 0, false, nil
	}
	v, err := t.int32()
	if err != nil {
		return 0, true, errors.Wrapf(err, "key %d", key)
	}
	return v, true, nil
}

// Int8 reads the low byte of an integer tuple, matching a narrowing read on the watch.
func (d Dict) Int8(key uint32) (int8, bool, error) {
	t, ok := d[key]
	if !ok {
		return 0, false, nil
	}
	if t.Type != TypeInt && t.Type != TypeUint {
		return 0, true, errors.Errorf("key %d: expected integer, got %v", key, t.Type)
	}
	if len(t.Value) == 0 {
		return 0, true, errors.Errorf("key %d: empty integer", key)
	}
	return int8(t.Value[0]), true, nil
}

func (t Tuple) int32() (int32, error) {
	if t.Type != TypeInt && t.Type != TypeUint {
		return 0, errors.Errorf("expected integer, got %v", t.Type)
	}
	signed := t.Type == TypeInt
	switch len(t.Value) {
	case 1:
		if signed {
			return int32(int8(t.Value[0])), nil
		}
		return int32(t.Value[0]), nil
	case 2:
		v := binary.LittleEndian.Uint16(t.Value)
		if signed {
			return int32(int16(v)), nil
		}
		return int32(v), nil
	case 4:
		return int32(binary.LittleEndian.Uint32(t.Value)), nil
	}
	return 0, errors.Errorf("unsupported integer width %d", len(t.Value))
}

// Size is the encoded length of d in bytes.
func Size(d Dict) int {
	n := dictHeaderSize
	for _, t := range d {
		n += tupleHeaderSize + len(t.Value)
	}
	return n
}

func Encode(d Dict) ([]byte, error) {
	if len(d) > maxTuples {
		return nil, errors.Errorf("too many tuples: %d", len(d))
	}
	keys := make([]uint32, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buf := bytes.NewBuffer(make([]byte, 0, Size(d)))
	buf.WriteByte(uint8(len(d)))
	for _, k := range keys {
		t := d[k]
		if len(t.Value) > 0xffff {
			return nil, errors.Errorf("key %d: value too long", k)
		}
		hdr := tupleHeader{
			Key:    k,
			Type:   t.Type,
			Length: uint16(len(t.Value)),
		}
		if err := binary.Write(buf, binary.LittleEndian, &hdr); err != nil {
			return nil, errors.Wrapf(err, "unable to write tuple header for key %d", k)
		}
		buf.Write(t.Value)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte) (Dict, error) {
	rdr := bytes.NewReader(data)
	count, err := rdr.ReadByte()
	if err != nil {
		return nil, errors.New("empty dictionary payload")
	}
	d := make(Dict, count)
	for i := 0; i < int(count); i++ {
		hdr := tupleHeader{}
		if err := binary.Read(rdr, binary.LittleEndian, &hdr); err != nil {
			return nil, errors.Wrapf(err, "unable to read header of tuple %d", i)
		}
		if hdr.Type > TypeInt {
			return nil, errors.Errorf("tuple %d: unknown type %d", i, hdr.Type)
		}
		value := make([]byte, hdr.Length)
		if _, err := io.ReadFull(rdr, value); err != nil {
			return nil, errors.Wrapf(err, "unable to read value of tuple %d", i)
		}
		d[hdr.Key] = Tuple{
			Key:   hdr.Key,
			Type:  hdr.Type,
			Value: value,
		}
	}
	if rdr.Len() != 0 {
		return nil, errors.Errorf("%d trailing bytes after dictionary", rdr.Len())
	}
	return d, nil
}
