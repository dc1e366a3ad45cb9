package dnc

import (
	"io"
	"log"

	"github.com/dnclab/dnc/controller"
	"github.com/dnclab/dnc/heads"
	"github.com/dnclab/dnc/memory"
)

// A Comp is one memory controller instance. It exclusively owns the
// memory bank, the usage tracker and the heads, and holds the controller
// network for its lifetime. All operations are single-threaded.
//
// The controller's interface vector is laid out as:
//
//	[0, outputs)                                  external outputs
//	[outputs, outputs+width*writeHeads)           write vectors, one per write head
//	then per read head: width key values followed by the raw beta, gate
//	and gamma scalars.
//
// Head indices in the usage tracker run read heads first, write heads
// after.
type Comp struct {
	name string
	id   string

	arena   *memory.Arena
	bank    *memory.Bank
	tracker *memory.UsageTracker

	readHeads  []*heads.ReadHead
	writeHeads []*heads.WriteHead
	ctrl       controller.Controller

	inputs  int
	outputs int
	width   int

	usageDecay float64

	readVectors  [][]float64
	interfaceVec []float64

	released bool
}

// Name returns the component name given at build time.
func (c *Comp) Name() string {
	return c.name
}

// ID returns the unique instance ID.
func (c *Comp) ID() string {
	return c.id
}

// Arena returns the arena owning the memory vectors.
func (c *Comp) Arena() *memory.Arena {
	return c.arena
}

// Bank returns the memory bank.
func (c *Comp) Bank() *memory.Bank {
	return c.bank
}

// Tracker returns the usage tracker.
func (c *Comp) Tracker() *memory.UsageTracker {
	return c.tracker
}

// Controller returns the controller capability.
func (c *Comp) Controller() controller.Controller {
	return c.ctrl
}

// ReadHeadCount returns the number of read heads.
func (c *Comp) ReadHeadCount() int {
	return len(c.readHeads)
}

// WriteHeadCount returns the number of write heads.
func (c *Comp) WriteHeadCount() int {
	return len(c.writeHeads)
}

// ReadVector returns the vector the given read head produced on the most
// recent step. The returned slice is the component's own storage.
func (c *Comp) ReadVector(head int) []float64 {
	if head < 0 || head >= len(c.readVectors) {
		log.Panicf("dnc: read head %d out of range [0, %d)",
			head, len(c.readVectors))
	}

	return c.readVectors[head]
}

// FeedForward runs one full memory step without learning: the previous
// interface vector is decoded, write heads update the bank and the usage
// tracker, read heads produce fresh read vectors, and the controller is
// evaluated on the external inputs concatenated with those read vectors.
func (c *Comp) FeedForward() {
	c.mustBeLive()

	c.ctrl.Outputs(c.interfaceVec)

	c.updateWriteHeads()
	c.updateReadHeads()

	for h, v := range c.readVectors {
		for d, x := range v {
			c.ctrl.SetInput(c.inputs+h*c.width+d, x)
		}
	}

	c.ctrl.FeedForward()
}

// updateWriteHeads decodes each write head's parameters from the
// interface vector and applies the erase-then-add update.
func (c *Comp) updateWriteHeads() {
	c.tracker.Decay(c.usageDecay)

	base := c.outputs
	for i, head := range c.writeHeads {
		head.SetParams(c.interfaceVec[base+i*c.width : base+(i+1)*c.width])

		w := head.Weighting(c.bank, c.tracker)
		head.Apply(c.bank, c.tracker, len(c.readHeads)+i, w)
	}
}

// updateReadHeads decodes each read head's parameters and refreshes the
// read vectors from the updated bank.
func (c *Comp) updateReadHeads() {
	base := c.outputs + c.width*len(c.writeHeads)
	stride := c.width + 3

	for i, head := range c.readHeads {
		block := c.interfaceVec[base+i*stride : base+(i+1)*stride]
		key := block[:c.width]
		beta := heads.Softplus(block[c.width])
		gate := heads.Logistic(block[c.width+1])
		gamma := 1 + heads.Softplus(block[c.width+2])

		head.SetParams(key, beta, gate, gamma)

		w := head.Weighting(c.bank, c.tracker, i)
		copy(c.readVectors[i], head.Read(c.bank, w))
	}
}

// Update performs the controller's learning step. Memory writes happen in
// FeedForward so that every evaluation sees the current step's writes.
func (c *Comp) Update() {
	c.mustBeLive()

	c.ctrl.Update()
}

// ClearMemory zeroes the bank, the usage tracker and the read state in
// bulk. Controller weights are untouched.
func (c *Comp) ClearMemory() {
	c.mustBeLive()

	c.bank.Clear()
	c.tracker.Clear()

	for _, head := range c.readHeads {
		head.Reset()
	}

	for _, v := range c.readVectors {
		clear(v)
	}
}

// Release frees the heads, the usage tracker and the bank through the
// arena, then the controller. It is safe on a partially initialized
// component left behind by a failed Build. Behavior beyond the first call
// is undefined.
func (c *Comp) Release() {
	if c.released {
		return
	}

	c.released = true
	c.readHeads = nil
	c.writeHeads = nil
	c.tracker = nil
	c.bank = nil
	c.arena.Release()

	if c.ctrl != nil {
		c.ctrl.Free()
		c.ctrl = nil
	}
}

func (c *Comp) mustBeLive() {
	if c.released {
		log.Panicf("dnc: %s used after release", c.name)
	}
	if c.ctrl == nil {
		log.Panicf("dnc: %s is partially initialized; only Release is valid", c.name)
	}
}

// InputWidth returns the controller's full input surface.
func (c *Comp) InputWidth() int {
	return c.ctrl.InputWidth()
}

// OutputWidth returns the controller's full output surface.
func (c *Comp) OutputWidth() int {
	return c.ctrl.OutputWidth()
}

// The operations below carry no memory-module semantics; they forward to
// the controller capability unchanged.

// SetInput sets one external input unit.
func (c *Comp) SetInput(index int, value float64) {
	if index < 0 || index >= c.inputs {
		log.Panicf("dnc: external input %d out of range [0, %d)", index, c.inputs)
	}

	c.ctrl.SetInput(index, value)
}

// SetInputText encodes text onto the controller inputs.
func (c *Comp) SetInputText(text string) {
	c.ctrl.SetInputText(text)
}

// SetInputField sets a numeric input field.
func (c *Comp) SetInputField(field int, value float64) error {
	return c.ctrl.SetInputField(field, value)
}

// SetInputFieldText sets a text input field.
func (c *Comp) SetInputFieldText(field int, text string) error {
	return c.ctrl.SetInputFieldText(field, text)
}

// SetInputs sets all inputs from a sample.
func (c *Comp) SetInputs(sample *controller.Sample) {
	c.ctrl.SetInputs(sample)
}

// InputsFromImage fills the inputs from an image.
func (c *Comp) InputsFromImage(img []byte, width, height int) {
	c.ctrl.InputsFromImage(img, width, height)
}

// InputsFromImagePatch fills the inputs from an image patch.
func (c *Comp) InputsFromImagePatch(img []byte, width, height, tx, ty int) {
	c.ctrl.InputsFromImagePatch(img, width, height, tx, ty)
}

// SetOutput sets one desired external output unit.
func (c *Comp) SetOutput(index int, value float64) {
	if index < 0 || index >= c.outputs {
		log.Panicf("dnc: external output %d out of range [0, %d)", index, c.outputs)
	}

	c.ctrl.SetOutput(index, value)
}

// SetOutputs sets all desired outputs from a sample.
func (c *Comp) SetOutputs(sample *controller.Sample) {
	c.ctrl.SetOutputs(sample)
}

// Output returns one external output activation.
func (c *Comp) Output(index int) float64 {
	if index < 0 || index >= c.outputs {
		log.Panicf("dnc: external output %d out of range [0, %d)", index, c.outputs)
	}

	return c.ctrl.Output(index)
}

// Outputs copies the external output activations into dst.
func (c *Comp) Outputs(dst []float64) {
	for i := 0; i < c.outputs && i < len(dst); i++ {
		dst[i] = c.ctrl.Output(i)
	}
}

// Class returns the predicted class.
func (c *Comp) Class() int {
	return c.ctrl.Class()
}

// SetClass sets the desired class.
func (c *Comp) SetClass(class int) {
	c.ctrl.SetClass(class)
}

// Save persists the controller network.
func (c *Comp) Save(w io.Writer) error {
	return c.ctrl.Save(w)
}

// Load restores the controller network.
func (c *Comp) Load(r io.Reader, seed int64) error {
	return c.ctrl.Load(r, seed)
}

// Compare returns the weight similarity of two components' controllers.
func (c *Comp) Compare(other *Comp) float64 {
	return c.ctrl.Compare(other.ctrl)
}

// PlotHistory writes the controller's training error history.
func (c *Comp) PlotHistory(w io.Writer, title string) error {
	return c.ctrl.PlotHistory(w, title)
}

// Export writes the trained controller as standalone source.
func (c *Comp) Export(w io.Writer) error {
	return c.ctrl.Export(w)
}

// SetLearningRate sets the controller learning rate.
func (c *Comp) SetLearningRate(rate float64) {
	c.ctrl.SetLearningRate(rate)
}

// SetDropout sets the controller dropout percentage.
func (c *Comp) SetDropout(percent float64) {
	c.ctrl.SetDropout(percent)
}

// ErrorThreshold returns a per-layer training error threshold.
func (c *Comp) ErrorThreshold(layer int) float64 {
	return c.ctrl.ErrorThreshold(layer)
}

// SetErrorThreshold sets a per-layer training error threshold.
func (c *Comp) SetErrorThreshold(layer int, value float64) {
	c.ctrl.SetErrorThreshold(layer, value)
}

// TrainingError returns the controller's running training error.
func (c *Comp) TrainingError() float64 {
	return c.ctrl.TrainingError()
}

// TrainingLastLayer reports whether the controller trains its final
// layer.
func (c *Comp) TrainingLastLayer() bool {
	return c.ctrl.TrainingLastLayer()
}

// UpdateContinuous runs one step of the controller's continuous
// unsupervised learning.
func (c *Comp) UpdateContinuous() {
	c.mustBeLive()

	c.ctrl.UpdateContinuous()
}
