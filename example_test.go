package bitvec_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/snapshot"
)

func Example() {
	cells := []uint8{0}
	bits, err := bitvec.New[order.Msb0](cells)
	if err != nil {
		log.Fatal(err)
	}

	_ = bits.Set(0, true)
	_ = bits.Set(7, true)

	fmt.Printf("%08b\n", cells[0])
	fmt.Println(bits.CountOnes())
	// Output:
	// 10000001
	// 2
}

func ExampleStore() {
	cells := make([]uint8, 2)
	bits, err := bitvec.New[order.Msb0](cells)
	if err != nil {
		log.Fatal(err)
	}

	field, err := bits.Slice(4, 12)
	if err != nil {
		log.Fatal(err)
	}
	if err := bitvec.Store(field, uint8(0xa5)); err != nil {
		log.Fatal(err)
	}

	v, err := bitvec.Load[uint8](field)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%02x %02x\n", cells[0], cells[1])
	fmt.Printf("%02x\n", v)
	// Output:
	// 0a 50
	// a5
}

func ExampleSlice_SplitAt() {
	bits, err := bitvec.New[order.Msb0]([]uint8{0b1111_0000})
	if err != nil {
		log.Fatal(err)
	}

	left, right, err := bits.SplitAt(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(left, right)
	// Output: [111] [10000]
}

func ExampleSlice_Ones() {
	bits, err := bitvec.New[order.Lsb0]([]uint16{0x8001})
	if err != nil {
		log.Fatal(err)
	}

	for i := range bits.Ones() {
		fmt.Println(i)
	}
	// Output:
	// 0
	// 15
}

func ExampleSlice_Domain() {
	bits, err := bitvec.New[order.Msb0](make([]uint8, 3))
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range [][2]uint{{3, 20}, {0, 16}, {2, 5}, {4, 16}} {
		sub, err := bits.Slice(r[0], r[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(sub.Domain().Kind())
	}
	// Output:
	// Major
	// Spanning
	// Minor
	// PartialHead
}

func Example_snapshot() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	bits, err := bitvec.New[order.Msb0]([]uint8{0b1011_0001, 0b1100_0000})
	if err != nil {
		log.Fatal(err)
	}
	region, err := bits.Slice(2, 10)
	if err != nil {
		log.Fatal(err)
	}

	if err := snapshot.Save(ctx, store, "flags", region); err != nil {
		log.Fatal(err)
	}

	loaded, err := snapshot.Load[order.Msb0, uint8](ctx, store, "flags")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(region)
	fmt.Println(loaded)
	// Output:
	// [110001, 11]
	// [11000111]
}
