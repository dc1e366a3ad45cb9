package heads

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity returns the cosine of the angle between a and b, or
// zero when either vector has no magnitude.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		log.Panicf("heads: vector lengths %d and %d differ", len(a), len(b))
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	return floats.Dot(a, b) / (normA * normB)
}

// Logistic squashes x into (0, 1).
func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Softplus squashes x into (0, inf).
func Softplus(x float64) float64 {
	return math.Log1p(math.Exp(x))
}

// softmax exponentiates w in place and normalizes it to sum to one.
func softmax(w []float64) {
	max := floats.Max(w)
	for i, x := range w {
		w[i] = math.Exp(x - max)
	}

	floats.Scale(1/floats.Sum(w), w)
}

// sharpen raises every weight to the power gamma and renormalizes. Gamma
// below one flattens the weighting, above one concentrates it.
func sharpen(w []float64, gamma float64) {
	if gamma == 1 {
		return
	}

	for i, x := range w {
		w[i] = math.Pow(x, gamma)
	}

	if sum := floats.Sum(w); sum > 0 {
		floats.Scale(1/sum, w)
	}
}

// collapseToBlocks folds an address weighting into a block weighting by
// summing within each block.
func collapseToBlocks(w []float64, blockSize int) []float64 {
	blocks := len(w) / blockSize

	out := make([]float64, blocks)
	for i, x := range w {
		out[i/blockSize] += x
	}

	return out
}

// expandToAddresses spreads a block weighting uniformly across the
// addresses of each block.
func expandToAddresses(blockWeights []float64, blockSize int) []float64 {
	out := make([]float64, len(blockWeights)*blockSize)
	for b, wb := range blockWeights {
		share := wb / float64(blockSize)
		for i := 0; i < blockSize; i++ {
			out[b*blockSize+i] = share
		}
	}

	return out
}
