package memory

import (
	"fmt"
	"log"
)

// A Bank is a fixed-size collection of equal-width address vectors. It is
// the raw substrate that read and write heads operate on. The bank only
// exposes whole-vector operations; weighting math lives with the heads.
type Bank struct {
	size  int
	width int

	addresses [][]float64
}

// NewBank allocates a bank of address vectors through the arena. The
// requested size is rounded down to a multiple of blockSize so that the
// usage tracker can downsample addresses into blocks.
func NewBank(arena *Arena, size, width, blockSize int) (*Bank, error) {
	if blockSize <= 0 {
		log.Panicf("memory: block size must be positive, got %d", blockSize)
	}
	if width <= 0 {
		log.Panicf("memory: address width must be positive, got %d", width)
	}

	rounded := (size / blockSize) * blockSize
	if rounded <= 0 {
		return nil, fmt.Errorf(
			"memory: size %d is smaller than one usage block of %d addresses",
			size, blockSize)
	}

	b := &Bank{
		size:      rounded,
		width:     width,
		addresses: make([][]float64, rounded),
	}

	for i := range b.addresses {
		v, err := arena.Acquire(width)
		if err != nil {
			return nil, fmt.Errorf("memory: bank address %d: %w", i, err)
		}

		b.addresses[i] = v
	}

	return b, nil
}

// Size returns the number of address slots.
func (b *Bank) Size() int {
	return b.size
}

// Width returns the length of every address vector.
func (b *Bank) Width() int {
	return b.width
}

// Vector returns the address vector at slot i. The returned slice is the
// bank's own storage; heads mutate it in place.
func (b *Bank) Vector(i int) []float64 {
	if i < 0 || i >= b.size {
		log.Panicf("memory: address %d out of range [0, %d)", i, b.size)
	}

	return b.addresses[i]
}

// Clear zeroes every address vector in place without resizing.
func (b *Bank) Clear() {
	for _, v := range b.addresses {
		clear(v)
	}
}
