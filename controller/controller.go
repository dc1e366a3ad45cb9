// Package controller defines the capability the memory subsystem expects
// from its controller network, together with a reference feed-forward
// implementation in the feedforward subpackage.
package controller

import "io"

// A Sample carries one labeled training example.
type Sample struct {
	Inputs  []float64
	Outputs []float64
}

// Controller is the network the memory controller drives. It consumes the
// concatenation of external input and the previous read vectors and emits
// the interface vector that the memory controller splits into external
// output and per-head addressing parameters.
//
// Implementations are single-threaded; no method may be called
// concurrently on the same instance.
type Controller interface {
	// InputWidth and OutputWidth report the full network surface,
	// including the memory-augmented interface dimensions.
	InputWidth() int
	OutputWidth() int

	// FeedForward evaluates the network on the current inputs. Update
	// performs one gradient step toward the desired outputs.
	// UpdateContinuous runs one step of unsupervised learning.
	FeedForward()
	Update()
	UpdateContinuous()

	// Free releases the network's resources. The instance must not be
	// used afterwards.
	Free()

	SetInput(index int, value float64)
	SetInputText(text string)
	SetInputField(field int, value float64) error
	SetInputFieldText(field int, text string) error
	SetInputs(sample *Sample)
	InputsFromImage(img []byte, width, height int)
	InputsFromImagePatch(img []byte, width, height, tx, ty int)

	SetOutput(index int, value float64)
	SetOutputs(sample *Sample)
	Output(index int) float64
	Outputs(dst []float64)
	Class() int
	SetClass(class int)

	Save(w io.Writer) error
	Load(r io.Reader, seed int64) error

	// Compare returns a similarity indicator in [0, 1]; 1 means the two
	// controllers carry identical weights.
	Compare(other Controller) float64

	// PlotHistory writes the training error history in gnuplot form.
	// Export writes the trained network as a standalone source file.
	PlotHistory(w io.Writer, title string) error
	Export(w io.Writer) error

	SetLearningRate(rate float64)
	SetDropout(percent float64)
	ErrorThreshold(layer int) float64
	SetErrorThreshold(layer int, value float64)

	// TrainingError reports the most recent training error percentage.
	// TrainingLastLayer reports whether staged training has reached the
	// final layer.
	TrainingError() float64
	TrainingLastLayer() bool
}
