package bitvec

import (
	"strings"

	"github.com/hupe1980/bitvec/order"
)

// String renders the bits in logical order, grouped by the cell they live
// in: "[011, 10100110, 1]".
func (s Slice[O, T]) String() string {
	c, acc := s.cursor(), s.accessor()

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	s.walk(func(cell *T, from, to uint8, _ T) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		v := acc.Load(cell)
		for i := from; i < to; i++ {
			if v&order.Mask[T](c, i) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
