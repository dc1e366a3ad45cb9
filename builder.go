package dnc

import (
	"fmt"

	"github.com/dnclab/dnc/controller"
	"github.com/dnclab/dnc/controller/feedforward"
	"github.com/dnclab/dnc/heads"
	"github.com/dnclab/dnc/memory"
	"github.com/rs/xid"
)

// Builder configures and builds a memory controller. Head counts and the
// usage block size are per-instance configuration, so differently sized
// instances can coexist.
type Builder struct {
	memorySize     int
	memoryWidth    int
	readHeads      int
	writeHeads     int
	usageBlockSize int

	inputs       int
	outputs      int
	hiddens      int
	hiddenLayers int
	thresholds   []float64
	seed         int64

	usageDecay float64
	allocGate  float64

	allocator memory.Allocator
	ctrl      controller.Controller
}

// MakeBuilder returns a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		memorySize:     512,
		memoryWidth:    16,
		readHeads:      2,
		writeHeads:     1,
		usageBlockSize: 16,
		hiddens:        32,
		hiddenLayers:   1,
		thresholds:     []float64{5},
		seed:           1,
		usageDecay:     0.02,
		allocGate:      0.5,
	}
}

// WithMemorySize sets the number of address slots. The built bank rounds
// it down to a multiple of the usage block size.
func (b Builder) WithMemorySize(size int) Builder {
	b.memorySize = size
	return b
}

// WithMemoryWidth sets the length of every address vector.
func (b Builder) WithMemoryWidth(width int) Builder {
	b.memoryWidth = width
	return b
}

// WithReadHeads sets the number of read heads.
func (b Builder) WithReadHeads(count int) Builder {
	b.readHeads = count
	return b
}

// WithWriteHeads sets the number of write heads.
func (b Builder) WithWriteHeads(count int) Builder {
	b.writeHeads = count
	return b
}

// WithUsageBlockSize sets the number of addresses tracked as one usage
// block.
func (b Builder) WithUsageBlockSize(size int) Builder {
	b.usageBlockSize = size
	return b
}

// WithInputs sets the external input surface, exclusive of the read
// vectors fed back into the controller.
func (b Builder) WithInputs(count int) Builder {
	b.inputs = count
	return b
}

// WithOutputs sets the external output surface, exclusive of the
// interface dimensions consumed by the heads.
func (b Builder) WithOutputs(count int) Builder {
	b.outputs = count
	return b
}

// WithHiddens sets the hidden units per controller layer.
func (b Builder) WithHiddens(count int) Builder {
	b.hiddens = count
	return b
}

// WithHiddenLayers sets the number of controller hidden layers.
func (b Builder) WithHiddenLayers(count int) Builder {
	b.hiddenLayers = count
	return b
}

// WithErrorThresholds sets the controller's per-layer training error
// thresholds.
func (b Builder) WithErrorThresholds(thresholds []float64) Builder {
	b.thresholds = thresholds
	return b
}

// WithSeed sets the weight initialization seed.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// WithUsageDecay sets the per-step usage decay rate.
func (b Builder) WithUsageDecay(rate float64) Builder {
	b.usageDecay = rate
	return b
}

// WithAllocationGate sets how strongly write heads prefer least-used
// blocks over content matches, in [0, 1].
func (b Builder) WithAllocationGate(gate float64) Builder {
	b.allocGate = gate
	return b
}

// WithAllocator sets the vector allocator backing the memory subsystem.
func (b Builder) WithAllocator(alloc memory.Allocator) Builder {
	b.allocator = alloc
	return b
}

// WithController injects a controller capability instead of building the
// reference feed-forward network. Its widths must match the configured
// interface geometry.
func (b Builder) WithController(ctrl controller.Controller) Builder {
	b.ctrl = ctrl
	return b
}

// ControllerInputWidth returns the full controller input surface for the
// current configuration.
func (b Builder) ControllerInputWidth() int {
	return b.inputs + b.memoryWidth*b.readHeads
}

// ControllerOutputWidth returns the full controller output surface for
// the current configuration.
func (b Builder) ControllerOutputWidth() int {
	return b.outputs + b.memoryWidth*b.writeHeads + (b.memoryWidth+3)*b.readHeads
}

func (b Builder) parametersMustBeValid() {
	switch {
	case b.inputs <= 0:
		panic("dnc: input count must be set")
	case b.outputs <= 0:
		panic("dnc: output count must be set")
	case b.readHeads <= 0:
		panic("dnc: at least one read head required")
	case b.writeHeads <= 0:
		panic("dnc: at least one write head required")
	case b.usageBlockSize <= 0:
		panic("dnc: usage block size must be positive")
	}
}

// Build allocates the memory bank, the usage tracker, the heads and the
// controller, in that order. On failure the returned component is
// partially initialized and supports exactly one further call: Release.
func (b Builder) Build(name string) (*Comp, error) {
	b.parametersMustBeValid()

	arena := memory.NewArena()
	if b.allocator != nil {
		arena = memory.NewArenaWithAllocator(b.allocator)
	}

	c := &Comp{
		name:       name,
		id:         xid.New().String(),
		arena:      arena,
		inputs:     b.inputs,
		outputs:    b.outputs,
		width:      b.memoryWidth,
		usageDecay: b.usageDecay,
	}

	var err error

	c.bank, err = memory.NewBank(arena, b.memorySize, b.memoryWidth, b.usageBlockSize)
	if err != nil {
		return c, &InitError{Subsystem: SubsystemBank, Err: err}
	}

	c.tracker, err = memory.NewUsageTracker(
		arena, c.bank.Size(), b.usageBlockSize, b.readHeads+b.writeHeads)
	if err != nil {
		return c, &InitError{Subsystem: SubsystemUsage, Err: err}
	}

	for i := 0; i < b.readHeads; i++ {
		head, err := heads.NewReadHead(arena, b.memoryWidth, c.bank.Size())
		if err != nil {
			return c, &InitError{Subsystem: SubsystemHeads, Err: err}
		}

		c.readHeads = append(c.readHeads, head)
		c.readVectors = append(c.readVectors, make([]float64, b.memoryWidth))
	}

	for i := 0; i < b.writeHeads; i++ {
		head, err := heads.NewWriteHead(arena, b.memoryWidth, b.allocGate)
		if err != nil {
			return c, &InitError{Subsystem: SubsystemHeads, Err: err}
		}

		c.writeHeads = append(c.writeHeads, head)
	}

	if err := b.buildController(c); err != nil {
		return c, &InitError{Subsystem: SubsystemController, Err: err}
	}

	c.interfaceVec = make([]float64, c.ctrl.OutputWidth())

	return c, nil
}

func (b Builder) buildController(c *Comp) error {
	if b.ctrl != nil {
		if b.ctrl.InputWidth() != b.ControllerInputWidth() ||
			b.ctrl.OutputWidth() != b.ControllerOutputWidth() {
			return fmt.Errorf(
				"dnc: injected controller is %dx%d, need %dx%d",
				b.ctrl.InputWidth(), b.ctrl.OutputWidth(),
				b.ControllerInputWidth(), b.ControllerOutputWidth())
		}

		c.ctrl = b.ctrl

		return nil
	}

	net, err := feedforward.New(
		b.ControllerInputWidth(),
		b.hiddens,
		b.hiddenLayers,
		b.ControllerOutputWidth(),
		b.thresholds,
		b.seed,
	)
	if err != nil {
		return err
	}

	c.ctrl = net

	return nil
}
