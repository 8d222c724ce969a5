package marshal

import (
	"encoding/binary"
	"fmt"
)

// Encoder builds an invocation buffer (spec.md §4.6.5): a flat byte stream,
// each argument written by type in call order, variable-length values
// (strings, byte blobs, Any Value payloads) prefixed by their byte count.
// Nothing is padded for alignment — "alignment is not guaranteed in the
// buffer; readers must not rely on it" — so every Write* method appends
// exactly the bytes its value needs, never more.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder ready to serialize one operation's
// argument list.
func NewEncoder() *Encoder { return &Encoder{} }

// Bytes returns the buffer assembled so far.
func (e *Encoder) Bytes() []byte { return e.buf }

func (e *Encoder) WriteBool(b bool) {
	if b {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) WriteUint8(n uint8)   { e.buf = append(e.buf, n) }
func (e *Encoder) WriteInt8(n int8)     { e.WriteUint8(uint8(n)) }
func (e *Encoder) WriteUint16(n uint16) { e.buf = binary.BigEndian.AppendUint16(e.buf, n) }
func (e *Encoder) WriteInt16(n int16)   { e.WriteUint16(uint16(n)) }
func (e *Encoder) WriteUint32(n uint32) { e.buf = binary.BigEndian.AppendUint32(e.buf, n) }
func (e *Encoder) WriteInt32(n int32)   { e.WriteUint32(uint32(n)) }
func (e *Encoder) WriteUint64(n uint64) { e.buf = binary.BigEndian.AppendUint64(e.buf, n) }
func (e *Encoder) WriteInt64(n int64)   { e.WriteUint64(uint64(n)) }

func (e *Encoder) WriteFloat32(f float32) { e.WriteUint32(f32bits(f)) }
func (e *Encoder) WriteFloat64(f float64) { e.WriteUint64(f64bits(f)) }

// WriteBytes writes a variable-length byte blob prefixed by its length as a
// uint32 (spec.md §4.6.5: "variable-length types prefixed by their byte
// count").
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteUint32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

// WriteString writes a variable-length UTF-8 string the same way.
func (e *Encoder) WriteString(s string) { e.WriteBytes([]byte(s)) }

// Decoder reads back a buffer an Encoder produced, failing with a
// SystemException(ReplyCorrupted) rather than panicking on a short or
// malformed buffer — the reply's byte stream crossed a transport boundary,
// so corruption is an expected failure mode, not a programming error
// (spec.md §4.6.6: "transport exceptions (reply corruption, lost
// connection): surface as system exceptions").
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps buf for sequential reads.
func NewDecoder(buf []byte) *Decoder { return &Decoder{buf: buf} }

// Remaining reports how many unread bytes are left.
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

func (d *Decoder) need(n int) error {
	if d.Remaining() < n {
		return &SystemException{ID: ReplyCorrupted, Message: fmt.Sprintf("need %d bytes, have %d", n, d.Remaining())}
	}
	return nil
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadUint8()
	return b != 0, err
}

func (d *Decoder) ReadUint8() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	v := d.buf[d.pos]
	d.pos++
	return v, nil
}

func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

func (d *Decoder) ReadUint16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(d.buf[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *Decoder) ReadUint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadUint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return v, nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	return f32frombits(v), err
}

func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return f64frombits(v), err
}

func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}
	if err := d.need(int(n)); err != nil {
		return nil, err
	}
	out := append([]byte(nil), d.buf[d.pos:d.pos+int(n)]...)
	d.pos += int(n)
	return out, nil
}

func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	return string(b), err
}
