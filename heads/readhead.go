package heads

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/dnclab/dnc/memory"
)

// A ReadHead produces a weighting over the memory bank from a content key
// and reads the weighted sum of address vectors. Each step the controller
// supplies the key plus three scalars: beta (key strength), gate (content
// versus sequential recall) and gamma (sharpening).
type ReadHead struct {
	key []float64

	beta  float64
	gate  float64
	gamma float64

	// weighting from the previous step, kept so the temporal-linkage
	// read mode can follow the recorded write order.
	prev []float64
}

// NewReadHead allocates a read head for a bank of the given geometry.
func NewReadHead(arena *memory.Arena, width, bankSize int) (*ReadHead, error) {
	key, err := arena.Acquire(width)
	if err != nil {
		return nil, fmt.Errorf("heads: read key: %w", err)
	}

	prev, err := arena.Acquire(bankSize)
	if err != nil {
		return nil, fmt.Errorf("heads: read weighting: %w", err)
	}

	return &ReadHead{
		key:   key,
		beta:  1,
		gate:  1,
		gamma: 1,
		prev:  prev,
	}, nil
}

// Key returns the head's content key storage.
func (h *ReadHead) Key() []float64 {
	return h.key
}

// SetParams installs the per-step addressing parameters decoded from the
// controller's interface vector.
func (h *ReadHead) SetParams(key []float64, beta, gate, gamma float64) {
	if len(key) != len(h.key) {
		log.Panicf("heads: key length %d does not match width %d",
			len(key), len(h.key))
	}

	copy(h.key, key)
	h.beta = beta
	h.gate = gate
	h.gamma = gamma
}

// ContentWeighting returns the softmax over beta-scaled cosine similarity
// between the key and every address vector. The result sums to one.
func (h *ReadHead) ContentWeighting(bank *memory.Bank) []float64 {
	w := make([]float64, bank.Size())
	for i := range w {
		w[i] = h.beta * CosineSimilarity(h.key, bank.Vector(i))
	}

	softmax(w)

	return w
}

// Weighting blends content addressing with the forward temporal-linkage
// projection of the head's previous weighting, sharpens the result and
// retains it for the next step. headIndex identifies this head within the
// tracker's combined head numbering.
func (h *ReadHead) Weighting(
	bank *memory.Bank,
	tracker *memory.UsageTracker,
	headIndex int,
) []float64 {
	w := h.ContentWeighting(bank)

	prevBlocks := collapseToBlocks(h.prev, tracker.BlockSize())
	forward := tracker.Forward(headIndex, prevBlocks)

	if floats.Sum(forward) > 0 {
		temporal := expandToAddresses(forward, tracker.BlockSize())
		for i := range w {
			w[i] = h.gate*w[i] + (1-h.gate)*temporal[i]
		}
	}

	sharpen(w, h.gamma)

	if sum := floats.Sum(w); sum > 0 {
		floats.Scale(1/sum, w)
	}

	copy(h.prev, w)

	return w
}

// Read returns the weighted sum of all address vectors.
func (h *ReadHead) Read(bank *memory.Bank, weighting []float64) []float64 {
	if len(weighting) != bank.Size() {
		log.Panicf("heads: weighting length %d does not match bank size %d",
			len(weighting), bank.Size())
	}

	out := make([]float64, bank.Width())
	for i, w := range weighting {
		if w == 0 {
			continue
		}

		floats.AddScaled(out, w, bank.Vector(i))
	}

	return out
}

// Reset forgets the previous weighting, e.g. after the memory is cleared.
func (h *ReadHead) Reset() {
	clear(h.prev)
}
