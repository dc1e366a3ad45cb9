// Package session bundles the services of one training run: the memory
// components under training, the recorder persisting their metrics, and
// the optional monitoring server.
package session

import (
	"github.com/dnclab/dnc"
	"github.com/dnclab/dnc/datarecording"
	"github.com/dnclab/dnc/monitoring"
)

// A Session provides the services required to run a training experiment.
type Session struct {
	id string

	dataRecorder *datarecording.SQLiteWriter
	trainingLog  *datarecording.TrainingLog
	monitor      *monitoring.Monitor

	components    []*dnc.Comp
	compNameIndex map[string]int
}

// ID returns the unique ID of the session.
func (s *Session) ID() string {
	return s.id
}

// DataRecorder returns the data recorder used in the session.
func (s *Session) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// TrainingLog returns the training log used in the session.
func (s *Session) TrainingLog() *datarecording.TrainingLog {
	return s.trainingLog
}

// Monitor returns the monitor used in the session, or nil when
// monitoring is disabled.
func (s *Session) Monitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a memory component with the session.
func (s *Session) RegisterComponent(c *dnc.Comp) {
	name := c.Name()
	if _, exists := s.compNameIndex[name]; exists {
		panic("component " + name + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[name] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// Components returns all registered components.
func (s *Session) Components() []*dnc.Comp {
	return s.components
}

// ComponentByName returns the component registered under the given name.
func (s *Session) ComponentByName(name string) *dnc.Comp {
	return s.components[s.compNameIndex[name]]
}

// RecordStep persists one training step of the given component.
func (s *Session) RecordStep(c *dnc.Comp, step int) {
	s.trainingLog.RecordStep(datarecording.StepMetrics{
		Step:          step,
		TrainingError: c.TrainingError(),
		MeanUsage:     c.Tracker().MeanUsage(),
		Class:         c.Class(),
	})
}

// Terminate finishes the training log and closes the recorder. The
// registered components stay alive; releasing them is the caller's
// responsibility.
func (s *Session) Terminate() {
	s.trainingLog.End()
	s.dataRecorder.Close()
}
