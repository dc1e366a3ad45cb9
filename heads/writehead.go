package heads

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/dnclab/dnc/memory"
)

// writeKeyStrength scales the cosine similarity before the softmax when
// locating a content-based write target. Writes need a peakier weighting
// than reads so repeated content lands on the same addresses.
const writeKeyStrength = 5.0

// A WriteHead locates a write target by interpolating content addressing
// with allocation addressing over least-used blocks, then applies an
// erase-then-add update and records the write with the usage tracker.
type WriteHead struct {
	key   []float64
	write []float64
	erase []float64

	// allocGate blends allocation addressing (1) against content
	// addressing (0).
	allocGate float64
}

// NewWriteHead allocates the write, erase and key vectors of one head.
func NewWriteHead(arena *memory.Arena, width int, allocGate float64) (*WriteHead, error) {
	if allocGate < 0 || allocGate > 1 {
		log.Panicf("heads: allocation gate %f outside [0, 1]", allocGate)
	}

	write, err := arena.Acquire(width)
	if err != nil {
		return nil, fmt.Errorf("heads: write vector: %w", err)
	}

	erase, err := arena.Acquire(width)
	if err != nil {
		return nil, fmt.Errorf("heads: erase vector: %w", err)
	}

	key, err := arena.Acquire(width)
	if err != nil {
		return nil, fmt.Errorf("heads: write key: %w", err)
	}

	return &WriteHead{
		key:       key,
		write:     write,
		erase:     erase,
		allocGate: allocGate,
	}, nil
}

// Key returns the head's content key storage.
func (h *WriteHead) Key() []float64 {
	return h.key
}

// Write returns the head's write vector storage.
func (h *WriteHead) Write() []float64 {
	return h.write
}

// Erase returns the head's erase vector storage.
func (h *WriteHead) Erase() []float64 {
	return h.erase
}

// SetParams installs the write vector decoded from the controller's
// interface vector. The key aliases the write vector so similar content
// collocates, and the erase strengths follow the write magnitudes through
// a logistic squash.
func (h *WriteHead) SetParams(write []float64) {
	if len(write) != len(h.write) {
		log.Panicf("heads: write length %d does not match width %d",
			len(write), len(h.write))
	}

	copy(h.write, write)
	copy(h.key, write)

	for i, x := range write {
		h.erase[i] = Logistic(x)
	}
}

// Weighting interpolates the content weighting for the head's key with an
// allocation weighting that prefers the least-used blocks. The result
// sums to one.
func (h *WriteHead) Weighting(
	bank *memory.Bank,
	tracker *memory.UsageTracker,
) []float64 {
	content := make([]float64, bank.Size())
	for i := range content {
		content[i] = writeKeyStrength * CosineSimilarity(h.key, bank.Vector(i))
	}

	softmax(content)

	alloc := allocationWeighting(bank, tracker)

	w := make([]float64, bank.Size())
	for i := range w {
		w[i] = h.allocGate*alloc[i] + (1-h.allocGate)*content[i]
	}

	if sum := floats.Sum(w); sum > 0 {
		floats.Scale(1/sum, w)
	}

	return w
}

// Apply performs the erase-then-add update on every address and folds the
// block-level weighting into the usage tracker for this head.
func (h *WriteHead) Apply(
	bank *memory.Bank,
	tracker *memory.UsageTracker,
	headIndex int,
	weighting []float64,
) {
	if len(weighting) != bank.Size() {
		log.Panicf("heads: weighting length %d does not match bank size %d",
			len(weighting), bank.Size())
	}

	for i, w := range weighting {
		if w == 0 {
			continue
		}

		v := bank.Vector(i)
		for d := range v {
			v[d] = v[d]*(1-w*h.erase[d]) + w*h.write[d]
		}
	}

	tracker.RecordWrite(headIndex, collapseToBlocks(weighting, tracker.BlockSize()))
}

// allocationWeighting distributes weight toward addresses in the
// least-used blocks. With no usage anywhere the weighting is uniform.
func allocationWeighting(bank *memory.Bank, tracker *memory.UsageTracker) []float64 {
	w := make([]float64, bank.Size())
	for i := range w {
		w[i] = 1 - tracker.UsageAt(tracker.BlockOf(i))
	}

	sum := floats.Sum(w)
	if sum == 0 {
		uniform := 1 / float64(len(w))
		for i := range w {
			w[i] = uniform
		}

		return w
	}

	floats.Scale(1/sum, w)

	return w
}
