package bitvec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/bitvec/access"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/pointer"
	"github.com/hupe1980/bitvec/store"
)

// Record is the serialized form of a region: its length and the cells that
// hold it, starting at bit 0 of the first cell. Cells has exactly
// ceil(Bits/W) entries. The ordering and the cell type are not part of the
// record; the reader must use the same ones as the writer.
type Record[T store.Word] struct {
	Bits  uint64 `json:"bits"`
	Cells []T    `json:"cells"`
}

// ToRecord copies the region into a fresh, compacted record. A region whose
// first bit is not at the start of a cell is shifted down so that the record
// always begins at bit 0. Bits past the end of the region are zero.
func ToRecord[O order.Cursor, T store.Word](s Slice[O, T]) Record[T] {
	n := s.Len()
	cells, _ := store.Span[T](0, n)
	rec := Record[T]{Bits: uint64(n), Cells: make([]T, cells)}
	if n == 0 {
		return rec
	}

	dst, err := FromParts[O](&rec.Cells[0], 0, n, WithAccess(access.Exclusive))
	if err != nil {
		panic(err)
	}
	if err := dst.CopyFrom(s); err != nil {
		panic(err)
	}
	return rec
}

// FromRecord returns a region over the cells of rec. The region aliases
// rec.Cells; it does not copy them.
func FromRecord[O order.Cursor, T store.Word](rec Record[T], opts ...Option) (Slice[O, T], error) {
	if err := rec.Validate(); err != nil {
		return Slice[O, T]{}, err
	}
	if rec.Bits == 0 {
		return FromPtr[O](pointer.BitPtr[T]{}, opts...), nil
	}
	return FromParts[O](&rec.Cells[0], 0, uint(rec.Bits), opts...)
}

// Validate checks that the record holds exactly the cells its length needs.
func (r Record[T]) Validate() error {
	if r.Bits > uint64(pointer.MaxBits[T]()) {
		return r.invalid(fmt.Sprintf("length exceeds maximum of %d bits", pointer.MaxBits[T]()))
	}
	want, _ := store.Span[T](0, uint(r.Bits))
	if uint(len(r.Cells)) != want {
		return r.invalid(fmt.Sprintf("record holds %d cells, want %d", len(r.Cells), want))
	}
	return nil
}

func (r Record[T]) invalid(reason string) error {
	return &ErrInvalidRegion{Bits: uint(r.Bits), Reason: reason}
}

// MarshalBinary encodes the record as a little-endian uint64 length followed
// by every cell in little-endian byte order.
func (r Record[T]) MarshalBinary() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 8+len(r.Cells)*int(store.Size[T]()))
	buf = binary.LittleEndian.AppendUint64(buf, r.Bits)
	for _, c := range r.Cells {
		switch store.Bits[T]() {
		case 8:
			buf = append(buf, uint8(c))
		case 16:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(c))
		case 32:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(c))
		default:
			buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes the form written by MarshalBinary.
func (r *Record[T]) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("bitvec: record too short: %d bytes", len(data))
	}
	size := int(store.Size[T]())
	body := data[8:]
	if len(body)%size != 0 {
		return fmt.Errorf("bitvec: record body of %d bytes is not a multiple of %d", len(body), size)
	}

	rec := Record[T]{
		Bits:  binary.LittleEndian.Uint64(data),
		Cells: make([]T, len(body)/size),
	}
	for i := range rec.Cells {
		b := body[i*size:]
		switch size {
		case 1:
			rec.Cells[i] = T(b[0])
		case 2:
			rec.Cells[i] = T(binary.LittleEndian.Uint16(b))
		case 4:
			rec.Cells[i] = T(binary.LittleEndian.Uint32(b))
		default:
			rec.Cells[i] = T(binary.LittleEndian.Uint64(b))
		}
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	*r = rec
	return nil
}

// recordJSON is the JSON shape of every Record. Cells are widened to uint64
// so byte cells come out as numbers rather than a base64 string.
type recordJSON struct {
	Bits  uint64   `json:"bits"`
	Cells []uint64 `json:"cells"`
}

// MarshalJSON encodes the record as {"bits": n, "cells": [c0, c1, ...]}.
func (r Record[T]) MarshalJSON() ([]byte, error) {
	out := recordJSON{Bits: r.Bits, Cells: make([]uint64, len(r.Cells))}
	for i, c := range r.Cells {
		out.Cells[i] = uint64(c)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON. A cell value wider
// than T is an error.
func (r *Record[T]) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ones := uint64(store.Ones[T]())
	rec := Record[T]{Bits: in.Bits, Cells: make([]T, len(in.Cells))}
	for i, c := range in.Cells {
		if c > ones {
			return fmt.Errorf("bitvec: record cell %d value %d overflows %s", i, c, store.Name[T]())
		}
		rec.Cells[i] = T(c)
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	*r = rec
	return nil
}
