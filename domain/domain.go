// Package domain partitions a bit region into partially and fully covered
// cells.
//
// Bulk operations work cell by cell. Cells that the region covers completely
// (the body) can be read, written and counted as whole words. The first and
// last cells may be shared with neighbouring regions; only the bits selected
// by their edge masks belong to this region.
//
//	Empty        no bits
//	Minor        one cell, head edge only (never also reported as a tail)
//	PartialHead  head edge + body, ends on a cell boundary
//	PartialTail  body + tail edge, starts on a cell boundary
//	Major        head edge + body + tail edge
//	Spanning     body only
//
// A Domain is recomputed from the descriptor whenever it is needed; it is
// never cached.
package domain

import (
	"fmt"

	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/pointer"
	"github.com/hupe1980/bitvec/store"
)

// Kind names the shape of a domain.
type Kind uint8

const (
	Empty Kind = iota
	Minor
	PartialHead
	PartialTail
	Major
	Spanning
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Minor:
		return "Minor"
	case PartialHead:
		return "PartialHead"
	case PartialTail:
		return "PartialTail"
	case Major:
		return "Major"
	case Spanning:
		return "Spanning"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Edge is a partially covered cell. The region owns the logical indices
// [From, To) of Cell, whose physical bits are Mask.
type Edge[T store.Word] struct {
	Cell *T
	From uint8
	To   uint8
	Mask T
}

// Bits returns the number of live bits in the edge.
func (e Edge[T]) Bits() uint {
	return uint(e.To - e.From)
}

// Domain is the head/body/tail partition of one region.
type Domain[T store.Word] struct {
	kind Kind
	head Edge[T]
	body []T
	tail Edge[T]
}

// Classify partitions p. Edge masks are computed with cursor c.
func Classify[T store.Word](c order.Cursor, p pointer.BitPtr[T]) Domain[T] {
	if p.IsEmpty() {
		return Domain[T]{kind: Empty}
	}

	w := store.Bits[T]()
	h, t := p.Head(), p.Tail()
	cells := p.AsCells()
	n := len(cells)

	edge := func(i int, from, to uint8) Edge[T] {
		return Edge[T]{Cell: &cells[i], From: from, To: to, Mask: order.RangeMask[T](c, from, to)}
	}

	switch {
	case h == 0 && t == w:
		return Domain[T]{kind: Spanning, body: cells}
	case n == 1:
		return Domain[T]{kind: Minor, head: edge(0, h, t)}
	case t == w:
		return Domain[T]{kind: PartialHead, head: edge(0, h, w), body: cells[1:]}
	case h == 0:
		return Domain[T]{kind: PartialTail, body: cells[:n-1], tail: edge(n-1, 0, t)}
	default:
		return Domain[T]{kind: Major, head: edge(0, h, w), body: cells[1 : n-1], tail: edge(n-1, 0, t)}
	}
}

// Kind returns the shape of the domain.
func (d Domain[T]) Kind() Kind {
	return d.kind
}

// Head returns the partial head cell, if any.
func (d Domain[T]) Head() (Edge[T], bool) {
	switch d.kind {
	case Minor, PartialHead, Major:
		return d.head, true
	}
	return Edge[T]{}, false
}

// Body returns the fully covered cells. It may be empty.
func (d Domain[T]) Body() []T {
	return d.body
}

// Tail returns the partial tail cell, if any.
func (d Domain[T]) Tail() (Edge[T], bool) {
	switch d.kind {
	case PartialTail, Major:
		return d.tail, true
	}
	return Edge[T]{}, false
}

// Len returns the number of bits in the partition. It always equals the
// length of the classified region.
func (d Domain[T]) Len() uint {
	n := uint(len(d.body)) * uint(store.Bits[T]())
	if e, ok := d.Head(); ok {
		n += e.Bits()
	}
	if e, ok := d.Tail(); ok {
		n += e.Bits()
	}
	return n
}
