package datarecording

import (
	"os"
	"strings"
	"time"
)

const (
	stepTableName = "training_steps"
	runTableName  = "run_info"
)

// StepMetrics is one step of a training run as it is persisted.
type StepMetrics struct {
	Step          int
	TrainingError float64
	MeanUsage     float64
	Class         int
}

type runInfo struct {
	Property string
	Value    string
}

// A TrainingLog records one training run: metadata about the process at
// the start and end, and per-step metrics in between.
type TrainingLog struct {
	recorder DataRecorder
	entries  []runInfo
}

// NewTrainingLog creates a TrainingLog backed by the given recorder.
func NewTrainingLog(recorder DataRecorder) *TrainingLog {
	recorder.CreateTable(stepTableName, StepMetrics{})
	recorder.CreateTable(runTableName, runInfo{})

	return &TrainingLog{recorder: recorder}
}

// Start captures the start time, the command line and the working
// directory of the run.
func (l *TrainingLog) Start() {
	now := time.Now().Format("2006-01-02 15:04:05.000000000")
	l.entries = append(l.entries, runInfo{"Start Time", now})

	cmd := strings.Join(os.Args, " ")
	l.entries = append(l.entries, runInfo{"Command", cmd})

	cwd, err := os.Getwd()
	if err == nil {
		l.entries = append(l.entries, runInfo{"Working Directory", cwd})
	}
}

// RecordStep buffers one step's metrics.
func (l *TrainingLog) RecordStep(m StepMetrics) {
	l.recorder.InsertData(stepTableName, m)
}

// End writes the run metadata along with the end time and flushes
// everything to the database.
func (l *TrainingLog) End() {
	for _, entry := range l.entries {
		l.recorder.InsertData(runTableName, entry)
	}

	l.entries = nil

	now := time.Now().Format("2006-01-02 15:04:05.000000000")
	l.recorder.InsertData(runTableName, runInfo{"End Time", now})

	l.recorder.Flush()
}
