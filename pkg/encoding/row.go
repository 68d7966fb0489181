// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package encoding

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RowEncoder encodes a row as a big-endian uint32 field count followed by
// a uint32 length and raw bytes per field.
type RowEncoder struct {
	buf          []byte
	reuseRecords bool
}

func NewRowEncoder(reuseRecords bool) *RowEncoder {
	return &RowEncoder{
		buf:          make([]byte, 0, 256),
		reuseRecords: reuseRecords,
	}
}

func (e *RowEncoder) Encode(row []string) []byte {
	bufLen := 4
	for _, s := range row {
		bufLen += len(s) + 4
	}
	if bufLen > cap(e.buf) {
		e.buf = make([]byte, bufLen)
	} else {
		e.buf = e.buf[:bufLen]
	}
	binary.BigEndian.PutUint32(e.buf, uint32(len(row)))
	offset := 4
	for _, s := range row {
		l := uint32(len(s))
		binary.BigEndian.PutUint32(e.buf[offset:], l)
		offset += 4
		copy(e.buf[offset:], s)
		offset += int(l)
	}
	b := e.buf
	if !e.reuseRecords {
		b = make([]byte, len(e.buf))
		copy(b, e.buf)
	}
	return b
}

// RowDecoder decodes rows produced by RowEncoder.
type RowDecoder struct {
	strs         []string
	buf          []byte
	reuseRecords bool
	pos          int
}

func NewRowDecoder(reuseRecords bool) *RowDecoder {
	d := &RowDecoder{
		buf:          make([]byte, 4),
		reuseRecords: reuseRecords,
	}
	if reuseRecords {
		d.strs = make([]string, 0, 256)
	}
	return d
}

func (d *RowDecoder) strSlice(n uint32) []string {
	if d.strs != nil {
		if n > uint32(cap(d.strs)) {
			d.strs = make([]string, 0, n)
		}
		return d.strs[:0]
	}
	return make([]string, 0, n)
}

func (d *RowDecoder) Decode(b []byte) []string {
	count := binary.BigEndian.Uint32(b)
	row := d.strSlice(count)
	offset := 4
	var i uint32
	for i = 0; i < count; i++ {
		l := binary.BigEndian.Uint32(b[offset:])
		offset += 4
		if l == 0 {
			row = append(row, "")
			continue
		}
		d.ensureBufSize(int(l))
		copy(d.buf[:l], b[offset:])
		offset += int(l)
		row = append(row, string(d.buf[:l]))
	}
	return row
}

// ValidateRowBytes checks that b holds a whole encoded row and returns
// its length in bytes.
func ValidateRowBytes(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("invalid row bytes")
	}
	count := int(binary.BigEndian.Uint32(b))
	offset := 4
	n := len(b)
	for i := 0; i < count; i++ {
		if offset+4 > n {
			return 0, fmt.Errorf("invalid row bytes")
		}
		l := binary.BigEndian.Uint32(b[offset:])
		offset += 4 + int(l)
		if offset > n {
			return 0, fmt.Errorf("invalid row bytes")
		}
	}
	return offset, nil
}

func (d *RowDecoder) ensureBufSize(n int) {
	for n > cap(d.buf) {
		b := make([]byte, cap(d.buf)*2)
		copy(b, d.buf)
		d.buf = b
	}
}

func (d *RowDecoder) readUint32(r io.Reader) (uint32, error) {
	b := d.buf[:4]
	n, err := io.ReadFull(r, b)
	if err != nil {
		return 0, err
	}
	d.pos += n
	return binary.BigEndian.Uint32(b), nil
}

// Read decodes the next encoded row from r, returning the number of
// bytes consumed. It returns io.EOF when r is exhausted.
func (d *RowDecoder) Read(r io.Reader) (int64, []string, error) {
	d.pos = 0
	count, err := d.readUint32(r)
	if err != nil {
		return 0, nil, err
	}
	row := d.strSlice(count)
	var i uint32
	for i = 0; i < count; i++ {
		l, err := d.readUint32(r)
		if err != nil {
			return 0, nil, err
		}
		if l == 0 {
			row = append(row, "")
			continue
		}
		d.ensureBufSize(int(l))
		n, err := io.ReadFull(r, d.buf[:l])
		d.pos += n
		row = append(row, string(d.buf[:n]))
		if err == io.EOF && i == count-1 {
			break
		}
		if err != nil {
			return 0, nil, err
		}
	}
	return int64(d.pos), row, nil
}
