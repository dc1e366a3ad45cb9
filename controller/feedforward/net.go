// Package feedforward provides the reference controller network: a
// multi-layer perceptron trained with backpropagation across all layers
// on every step. Per-layer error thresholds gate a progress marker that
// advances toward the final layer as the running error falls, reported
// through TrainingLastLayer.
package feedforward

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/dnclab/dnc/controller"
)

// errorSmoothing is the exponential moving average factor for the running
// training error.
const errorSmoothing = 0.01

type layer struct {
	// weights[n] holds the incoming weights of neuron n followed by its
	// bias.
	weights [][]float64
	outputs []float64
	deltas  []float64
}

// A Net is a sigmoid multi-layer perceptron implementing the Controller
// capability.
type Net struct {
	seed int64
	rng  *rand.Rand

	inputs  []float64
	desired []float64
	layers  []*layer

	thresholds   []float64
	learningRate float64
	dropout      float64

	trainingLayer int
	runningError  float64
	history       []float64

	class int
}

var _ controller.Controller = (*Net)(nil)

// New creates a network with the given geometry. thresholds holds the
// per-layer training error thresholds (percent); when fewer thresholds
// than layers are supplied the last one applies to the remaining layers.
func New(
	inputs, hiddens, hiddenLayers, outputs int,
	thresholds []float64,
	seed int64,
) (*Net, error) {
	if inputs <= 0 || hiddens <= 0 || hiddenLayers <= 0 || outputs <= 0 {
		return nil, fmt.Errorf(
			"feedforward: invalid geometry %d-%dx%d-%d",
			inputs, hiddens, hiddenLayers, outputs)
	}
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("feedforward: at least one error threshold required")
	}

	n := &Net{
		seed:         seed,
		rng:          rand.New(rand.NewSource(seed)),
		inputs:       make([]float64, inputs),
		desired:      make([]float64, outputs),
		thresholds:   append([]float64(nil), thresholds...),
		learningRate: 0.2,
		runningError: 100,
	}

	prev := inputs
	for l := 0; l < hiddenLayers; l++ {
		n.layers = append(n.layers, n.newLayer(hiddens, prev))
		prev = hiddens
	}
	n.layers = append(n.layers, n.newLayer(outputs, prev))

	return n, nil
}

func (n *Net) newLayer(neurons, in int) *layer {
	l := &layer{
		weights: make([][]float64, neurons),
		outputs: make([]float64, neurons),
		deltas:  make([]float64, neurons),
	}

	scale := 1 / math.Sqrt(float64(in+1))
	for i := range l.weights {
		w := make([]float64, in+1)
		for j := range w {
			w[j] = (n.rng.Float64()*2 - 1) * scale
		}

		l.weights[i] = w
	}

	return l
}

// InputWidth returns the full input surface of the network.
func (n *Net) InputWidth() int {
	return len(n.inputs)
}

// OutputWidth returns the full output surface of the network.
func (n *Net) OutputWidth() int {
	return len(n.lastLayer().outputs)
}

func (n *Net) lastLayer() *layer {
	return n.layers[len(n.layers)-1]
}

// FeedForward evaluates the network on the current inputs.
func (n *Net) FeedForward() {
	in := n.inputs
	for _, l := range n.layers {
		for i, w := range l.weights {
			sum := floats.Dot(w[:len(in)], in) + w[len(in)]
			l.outputs[i] = sigmoid(sum)
		}

		in = l.outputs
	}
}

// Update performs one backpropagation step toward the desired outputs,
// assuming FeedForward already ran for the current inputs.
func (n *Net) Update() {
	out := n.lastLayer()

	errSum := 0.0
	for i, o := range out.outputs {
		diff := n.desired[i] - o
		out.deltas[i] = diff * o * (1 - o)
		errSum += math.Abs(diff)
	}

	stepError := errSum / float64(len(out.outputs)) * 100
	n.runningError += (stepError - n.runningError) * errorSmoothing
	n.history = append(n.history, stepError)
	n.advanceTrainingLayer()

	for l := len(n.layers) - 2; l >= 0; l-- {
		n.backpropagate(n.layers[l], n.layers[l+1])
	}

	in := n.inputs
	for _, l := range n.layers {
		n.applyDeltas(l, in)
		in = l.outputs
	}
}

func (n *Net) backpropagate(l, next *layer) {
	for i := range l.deltas {
		sum := 0.0
		for j, w := range next.weights {
			sum += w[i] * next.deltas[j]
		}

		l.deltas[i] = l.outputs[i] * (1 - l.outputs[i]) * sum

		if n.dropout > 0 && n.rng.Float64()*100 < n.dropout {
			l.deltas[i] = 0
		}
	}
}

func (n *Net) applyDeltas(l *layer, in []float64) {
	for i, w := range l.weights {
		delta := n.learningRate * l.deltas[i]
		if delta == 0 {
			continue
		}

		floats.AddScaled(w[:len(in)], delta, in)
		w[len(in)] += delta
	}
}

// advanceTrainingLayer moves the staged-progress marker one layer closer
// to the output once the running error clears the current layer's
// threshold. The marker drives TrainingLastLayer; it does not restrict
// which layers Update trains.
func (n *Net) advanceTrainingLayer() {
	if n.trainingLayer >= len(n.layers)-1 {
		return
	}

	if n.runningError < n.thresholdFor(n.trainingLayer) {
		n.trainingLayer++
	}
}

func (n *Net) thresholdFor(layer int) float64 {
	if layer >= len(n.thresholds) {
		layer = len(n.thresholds) - 1
	}

	return n.thresholds[layer]
}

// UpdateContinuous runs one step of unsupervised learning: the network is
// trained to reproduce its own inputs on the leading outputs.
func (n *Net) UpdateContinuous() {
	count := len(n.desired)
	if count > len(n.inputs) {
		count = len(n.inputs)
	}

	copy(n.desired[:count], n.inputs[:count])
	n.FeedForward()
	n.Update()
}

// Free drops the network's state. The instance must not be used
// afterwards.
func (n *Net) Free() {
	n.layers = nil
	n.inputs = nil
	n.desired = nil
	n.history = nil
}

// SetInput sets one input unit.
func (n *Net) SetInput(index int, value float64) {
	if index < 0 || index >= len(n.inputs) {
		log.Panicf("feedforward: input %d out of range [0, %d)", index, len(n.inputs))
	}

	n.inputs[index] = value
}

// SetInputText encodes the text character-wise into the leading inputs,
// normalized into the 0.25 to 0.75 range.
func (n *Net) SetInputText(text string) {
	for i := range n.inputs {
		if i >= len(text) {
			n.inputs[i] = 0.25
			continue
		}

		n.inputs[i] = normalizeByte(text[i])
	}
}

// SetInputField sets the input unit backing the given field.
func (n *Net) SetInputField(field int, value float64) error {
	if field < 0 || field >= len(n.inputs) {
		return fmt.Errorf("feedforward: field %d out of range [0, %d)",
			field, len(n.inputs))
	}

	n.inputs[field] = value

	return nil
}

// SetInputFieldText encodes text into consecutive input units starting at
// the given field, as far as the input surface allows.
func (n *Net) SetInputFieldText(field int, text string) error {
	if field < 0 || field >= len(n.inputs) {
		return fmt.Errorf("feedforward: field %d out of range [0, %d)",
			field, len(n.inputs))
	}

	for i := 0; i < len(text) && field+i < len(n.inputs); i++ {
		n.inputs[field+i] = normalizeByte(text[i])
	}

	return nil
}

// SetInputs copies the sample's input values onto the leading inputs.
func (n *Net) SetInputs(sample *controller.Sample) {
	count := len(sample.Inputs)
	if count > len(n.inputs) {
		count = len(n.inputs)
	}

	copy(n.inputs[:count], sample.Inputs[:count])
}

// InputsFromImage fills the inputs by sampling the image (one byte per
// pixel) at proportional positions.
func (n *Net) InputsFromImage(img []byte, width, height int) {
	n.InputsFromImagePatch(img, width, height, 0, 0)
}

// InputsFromImagePatch fills the inputs from a patch of the image whose
// top-left corner is (tx, ty). The patch spans the remaining image.
func (n *Net) InputsFromImagePatch(img []byte, width, height, tx, ty int) {
	if len(img) < width*height {
		log.Panicf("feedforward: image buffer %d smaller than %dx%d",
			len(img), width, height)
	}

	pw := width - tx
	ph := height - ty
	if pw <= 0 || ph <= 0 {
		log.Panicf("feedforward: patch origin (%d, %d) outside %dx%d image",
			tx, ty, width, height)
	}

	side := int(math.Ceil(math.Sqrt(float64(len(n.inputs)))))
	for i := range n.inputs {
		px := tx + (i%side)*pw/side
		py := ty + (i/side)*ph/side
		n.inputs[i] = normalizeByte(img[py*width+px])
	}
}

// SetOutput sets one desired output unit.
func (n *Net) SetOutput(index int, value float64) {
	if index < 0 || index >= len(n.desired) {
		log.Panicf("feedforward: output %d out of range [0, %d)",
			index, len(n.desired))
	}

	n.desired[index] = value
}

// SetOutputs copies the sample's output values onto the leading desired
// outputs.
func (n *Net) SetOutputs(sample *controller.Sample) {
	count := len(sample.Outputs)
	if count > len(n.desired) {
		count = len(n.desired)
	}

	copy(n.desired[:count], sample.Outputs[:count])
}

// Output returns the activation of one output unit.
func (n *Net) Output(index int) float64 {
	out := n.lastLayer().outputs
	if index < 0 || index >= len(out) {
		log.Panicf("feedforward: output %d out of range [0, %d)", index, len(out))
	}

	return out[index]
}

// Outputs copies all output activations into dst.
func (n *Net) Outputs(dst []float64) {
	copy(dst, n.lastLayer().outputs)
}

// Class returns the index of the strongest output unit.
func (n *Net) Class() int {
	return floats.MaxIdx(n.lastLayer().outputs)
}

// SetClass sets the desired outputs to the one-hot encoding of the class.
func (n *Net) SetClass(class int) {
	if class < 0 || class >= len(n.desired) {
		log.Panicf("feedforward: class %d out of range [0, %d)",
			class, len(n.desired))
	}

	clear(n.desired)
	n.desired[class] = 1
	n.class = class
}

// SetLearningRate sets the backpropagation learning rate.
func (n *Net) SetLearningRate(rate float64) {
	n.learningRate = rate
}

// SetDropout sets the percentage of hidden units dropped per update.
func (n *Net) SetDropout(percent float64) {
	n.dropout = percent
}

// ErrorThreshold returns the training error threshold of a layer.
func (n *Net) ErrorThreshold(layer int) float64 {
	if layer < 0 || layer >= len(n.thresholds) {
		log.Panicf("feedforward: threshold %d out of range [0, %d)",
			layer, len(n.thresholds))
	}

	return n.thresholds[layer]
}

// SetErrorThreshold sets the training error threshold of a layer.
func (n *Net) SetErrorThreshold(layer int, value float64) {
	if layer < 0 || layer >= len(n.thresholds) {
		log.Panicf("feedforward: threshold %d out of range [0, %d)",
			layer, len(n.thresholds))
	}

	n.thresholds[layer] = value
}

// TrainingError returns the smoothed training error percentage.
func (n *Net) TrainingError() float64 {
	return n.runningError
}

// TrainingLastLayer reports whether staged training reached the final
// layer.
func (n *Net) TrainingLastLayer() bool {
	return n.trainingLayer == len(n.layers)-1
}

// Compare returns a weight-space similarity indicator in [0, 1].
func (n *Net) Compare(other controller.Controller) float64 {
	o, ok := other.(*Net)
	if !ok || len(o.layers) != len(n.layers) {
		return 0
	}

	diff := 0.0
	count := 0
	for l, la := range n.layers {
		lb := o.layers[l]
		if len(la.weights) != len(lb.weights) {
			return 0
		}

		for i, w := range la.weights {
			for j, x := range w {
				diff += math.Abs(x - lb.weights[i][j])
				count++
			}
		}
	}

	if count == 0 {
		return 0
	}

	return 1 / (1 + diff/float64(count))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func normalizeByte(b byte) float64 {
	return 0.25 + float64(b)/255*0.5
}
