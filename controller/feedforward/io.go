package feedforward

import (
	"encoding/gob"
	"fmt"
	"io"
	"math/rand"
)

// snapshot is the serialized form of a Net.
type snapshot struct {
	Weights       [][][]float64
	InputCount    int
	Thresholds    []float64
	LearningRate  float64
	Dropout       float64
	TrainingLayer int
	RunningError  float64
	History       []float64
}

// Save writes the network to w in gob form.
func (n *Net) Save(w io.Writer) error {
	s := snapshot{
		Weights:       make([][][]float64, len(n.layers)),
		InputCount:    len(n.inputs),
		Thresholds:    n.thresholds,
		LearningRate:  n.learningRate,
		Dropout:       n.dropout,
		TrainingLayer: n.trainingLayer,
		RunningError:  n.runningError,
		History:       n.history,
	}

	for i, l := range n.layers {
		s.Weights[i] = l.weights
	}

	if err := gob.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("feedforward: save: %w", err)
	}

	return nil
}

// Load replaces the network's state with one previously written by Save
// and reseeds the dropout generator.
func (n *Net) Load(r io.Reader, seed int64) error {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("feedforward: load: %w", err)
	}

	if len(s.Weights) == 0 {
		return fmt.Errorf("feedforward: load: snapshot has no layers")
	}

	layers := make([]*layer, len(s.Weights))
	for i, weights := range s.Weights {
		if len(weights) == 0 {
			return fmt.Errorf("feedforward: load: layer %d has no neurons", i)
		}

		layers[i] = &layer{
			weights: weights,
			outputs: make([]float64, len(weights)),
			deltas:  make([]float64, len(weights)),
		}
	}

	n.layers = layers
	n.inputs = make([]float64, s.InputCount)
	n.desired = make([]float64, len(layers[len(layers)-1].weights))
	n.thresholds = s.Thresholds
	n.learningRate = s.LearningRate
	n.dropout = s.Dropout
	n.trainingLayer = s.TrainingLayer
	n.runningError = s.RunningError
	n.history = s.History
	n.seed = seed
	n.rng = rand.New(rand.NewSource(seed))

	return nil
}

// PlotHistory writes the training error history as a self-contained
// gnuplot script.
func (n *Net) PlotHistory(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w,
		"set title %q\nset xlabel \"step\"\nset ylabel \"error %%\"\n"+
			"plot '-' with lines notitle\n", title); err != nil {
		return fmt.Errorf("feedforward: plot history: %w", err)
	}

	for step, e := range n.history {
		if _, err := fmt.Fprintf(w, "%d %f\n", step, e); err != nil {
			return fmt.Errorf("feedforward: plot history: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, "e"); err != nil {
		return fmt.Errorf("feedforward: plot history: %w", err)
	}

	return nil
}

// Export writes the trained network as a standalone Go source file with a
// single Predict function and the weights embedded.
func (n *Net) Export(w io.Writer) error {
	write := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := write("// Code generated from a trained network. DO NOT EDIT.\n\n" +
		"package trained\n\nimport \"math\"\n\nvar weights = [][][]float64{\n"); err != nil {
		return fmt.Errorf("feedforward: export: %w", err)
	}

	for _, l := range n.layers {
		if err := write("\t{\n"); err != nil {
			return fmt.Errorf("feedforward: export: %w", err)
		}

		for _, neuron := range l.weights {
			if err := write("\t\t%#v,\n", neuron); err != nil {
				return fmt.Errorf("feedforward: export: %w", err)
			}
		}

		if err := write("\t},\n"); err != nil {
			return fmt.Errorf("feedforward: export: %w", err)
		}
	}

	if err := write("}\n\n" +
		"// Predict evaluates the network on the given inputs.\n" +
		"func Predict(in []float64) []float64 {\n" +
		"\tfor _, layer := range weights {\n" +
		"\t\tout := make([]float64, len(layer))\n" +
		"\t\tfor i, w := range layer {\n" +
		"\t\t\tsum := w[len(w)-1]\n" +
		"\t\t\tfor j, x := range in {\n" +
		"\t\t\t\tsum += w[j] * x\n" +
		"\t\t\t}\n" +
		"\t\t\tout[i] = 1 / (1 + math.Exp(-sum))\n" +
		"\t\t}\n" +
		"\t\tin = out\n" +
		"\t}\n" +
		"\treturn in\n" +
		"}\n"); err != nil {
		return fmt.Errorf("feedforward: export: %w", err)
	}

	return nil
}
