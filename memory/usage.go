package memory

import (
	"fmt"
	"log"
)

// A UsageTracker keeps one utilization scalar per address block, plus a
// temporal linkage matrix per head recording which block was written
// immediately after which other block. Usage drives allocation-based write
// addressing; linkage drives order-preserving sequential reads.
//
// Addresses are downsampled into blocks of blockSize so the linkage
// matrices stay tractable. All entries are kept in [0, 1].
type UsageTracker struct {
	blockSize int
	blocks    int
	heads     int

	usage   []float64
	linkage [][]float64

	// lastBlock[h] is the block head h wrote most recently, -1 before the
	// first write and after Clear.
	lastBlock []int
}

// NewUsageTracker allocates tracking state for a bank of bankSize
// addresses shared by the given number of heads (read plus write).
func NewUsageTracker(arena *Arena, bankSize, blockSize, heads int) (*UsageTracker, error) {
	if blockSize <= 0 || bankSize%blockSize != 0 {
		log.Panicf("memory: bank size %d is not a multiple of block size %d",
			bankSize, blockSize)
	}
	if heads <= 0 {
		log.Panicf("memory: head count must be positive, got %d", heads)
	}

	blocks := bankSize / blockSize

	t := &UsageTracker{
		blockSize: blockSize,
		blocks:    blocks,
		heads:     heads,
		linkage:   make([][]float64, heads),
		lastBlock: make([]int, heads),
	}

	var err error

	t.usage, err = arena.Acquire(blocks)
	if err != nil {
		return nil, fmt.Errorf("memory: usage vector: %w", err)
	}

	for h := range t.linkage {
		t.linkage[h], err = arena.Acquire(blocks * blocks)
		if err != nil {
			return nil, fmt.Errorf("memory: linkage matrix for head %d: %w", h, err)
		}
	}

	for h := range t.lastBlock {
		t.lastBlock[h] = -1
	}

	return t, nil
}

// BlockCount returns the number of usage blocks.
func (t *UsageTracker) BlockCount() int {
	return t.blocks
}

// BlockSize returns the number of addresses per block.
func (t *UsageTracker) BlockSize() int {
	return t.blockSize
}

// Heads returns the number of heads the tracker records linkage for.
func (t *UsageTracker) Heads() int {
	return t.heads
}

// BlockOf returns the usage block containing the given address.
func (t *UsageTracker) BlockOf(address int) int {
	block := address / t.blockSize
	if block < 0 || block >= t.blocks {
		log.Panicf("memory: address %d outside tracked range", address)
	}

	return block
}

// UsageAt returns the utilization of the given block.
func (t *UsageTracker) UsageAt(block int) float64 {
	return t.usage[block]
}

// MeanUsage returns the average utilization across all blocks.
func (t *UsageTracker) MeanUsage() float64 {
	sum := 0.0
	for _, u := range t.usage {
		sum += u
	}

	return sum / float64(t.blocks)
}

// Linkage returns the transition strength recorded for head h from block i
// to block j, i.e. how strongly j was written immediately after i.
func (t *UsageTracker) Linkage(h, i, j int) float64 {
	t.mustBeValidHead(h)

	return t.linkage[h][i*t.blocks+j]
}

// NoteWrite records that head h wrote into the given block with the given
// total weighting. Usage at the block rises toward 1, and the linkage row
// from the head's previously written block is shifted toward the new
// block.
func (t *UsageTracker) NoteWrite(h, block int, amount float64) {
	t.mustBeValidHead(h)

	amount = clamp01(amount)

	t.usage[block] += (1 - t.usage[block]) * amount
	t.linkTo(h, block, amount)
}

// RecordWrite folds a full block weighting into the tracker: every block's
// usage rises by its share of the weighting, and the linkage for head h is
// advanced to the dominant block of the write.
func (t *UsageTracker) RecordWrite(h int, blockWeights []float64) {
	t.mustBeValidHead(h)
	t.mustMatchBlocks(blockWeights)

	clamped := make([]float64, len(blockWeights))
	for b, wb := range blockWeights {
		clamped[b] = clamp01(wb)
	}

	dominant := 0
	for b, wb := range clamped {
		t.usage[b] += (1 - t.usage[b]) * wb

		if wb > clamped[dominant] {
			dominant = b
		}
	}

	if amount := clamped[dominant]; amount > 0 {
		t.linkTo(h, dominant, amount)
	}
}

// linkTo strengthens the transition recorded for head h from its
// previously written block to the given block.
func (t *UsageTracker) linkTo(h, block int, amount float64) {
	if prev := t.lastBlock[h]; prev >= 0 {
		row := t.linkage[h][prev*t.blocks : (prev+1)*t.blocks]
		for j := range row {
			row[j] *= 1 - amount
		}

		row[block] += amount
		if row[block] > 1 {
			row[block] = 1
		}
	}

	t.lastBlock[h] = block
}

// Decay relaxes every block's usage toward zero by the given rate.
func (t *UsageTracker) Decay(rate float64) {
	if rate < 0 || rate > 1 {
		log.Panicf("memory: decay rate %f outside [0, 1]", rate)
	}

	for b := range t.usage {
		t.usage[b] *= 1 - rate
	}
}

// Forward projects a block weighting one step along head h's recorded
// write order: mass at block i flows to the blocks written after i. The
// result is normalized when any linkage exists, and zero otherwise.
func (t *UsageTracker) Forward(h int, weighting []float64) []float64 {
	t.mustBeValidHead(h)
	t.mustMatchBlocks(weighting)

	out := make([]float64, t.blocks)
	for i, w := range weighting {
		if w == 0 {
			continue
		}

		row := t.linkage[h][i*t.blocks : (i+1)*t.blocks]
		for j, l := range row {
			out[j] += w * l
		}
	}

	normalize(out)

	return out
}

// Backward projects a block weighting one step against head h's recorded
// write order: mass at block j flows to the blocks written before j.
func (t *UsageTracker) Backward(h int, weighting []float64) []float64 {
	t.mustBeValidHead(h)
	t.mustMatchBlocks(weighting)

	out := make([]float64, t.blocks)
	for j, w := range weighting {
		if w == 0 {
			continue
		}

		for i := 0; i < t.blocks; i++ {
			out[i] += w * t.linkage[h][i*t.blocks+j]
		}
	}

	normalize(out)

	return out
}

// Clear zeroes usage, every linkage matrix, and the per-head write
// history.
func (t *UsageTracker) Clear() {
	clear(t.usage)

	for _, m := range t.linkage {
		clear(m)
	}

	for h := range t.lastBlock {
		t.lastBlock[h] = -1
	}
}

func (t *UsageTracker) mustBeValidHead(h int) {
	if h < 0 || h >= t.heads {
		log.Panicf("memory: head %d out of range [0, %d)", h, t.heads)
	}
}

func (t *UsageTracker) mustMatchBlocks(weighting []float64) {
	if len(weighting) != t.blocks {
		log.Panicf("memory: weighting length %d does not match %d blocks",
			len(weighting), t.blocks)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

func normalize(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	if sum == 0 {
		return
	}

	for i := range v {
		v[i] /= sum
	}
}
