package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dnclab/dnc"
	"github.com/dnclab/dnc/monitoring"
	"github.com/dnclab/dnc/session"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a network on the pattern copy task.",
	Long: "`train` builds a memory-augmented network and trains it to " +
		"reproduce random bit patterns, recording per-step metrics into " +
		"an SQLite database.",
	Run: runTrain,
}

func init() {
	trainCmd.Flags().Int("steps", 1000, "number of training steps")
	trainCmd.Flags().Int("bits", 8, "width of the patterns to copy")
	trainCmd.Flags().Int("memory-size", 512, "number of memory addresses")
	trainCmd.Flags().Int("memory-width", 16, "width of each memory address")
	trainCmd.Flags().Int("read-heads", 2, "number of read heads")
	trainCmd.Flags().Int("hiddens", 32, "hidden units per controller layer")
	trainCmd.Flags().Int64("seed", 1, "weight initialization seed")
	trainCmd.Flags().String("output", "", "output database name")
	trainCmd.Flags().Bool("no-monitor", false, "disable the monitoring server")
	trainCmd.Flags().Int("monitor-port", 0, "monitoring server port")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) {
	steps, _ := cmd.Flags().GetInt("steps")
	bits, _ := cmd.Flags().GetInt("bits")
	memorySize, _ := cmd.Flags().GetInt("memory-size")
	memoryWidth, _ := cmd.Flags().GetInt("memory-width")
	readHeads, _ := cmd.Flags().GetInt("read-heads")
	hiddens, _ := cmd.Flags().GetInt("hiddens")
	seed, _ := cmd.Flags().GetInt64("seed")
	output, _ := cmd.Flags().GetString("output")
	noMonitor, _ := cmd.Flags().GetBool("no-monitor")
	monitorPort, _ := cmd.Flags().GetInt("monitor-port")

	if output == "" {
		output = os.Getenv("DNC_OUTPUT")
	}

	if monitorPort == 0 {
		if p, err := strconv.Atoi(os.Getenv("DNC_MONITOR_PORT")); err == nil {
			monitorPort = p
		}
	}

	sessionBuilder := session.MakeBuilder()
	if output != "" {
		sessionBuilder = sessionBuilder.WithOutputFileName(output)
	}
	if noMonitor {
		sessionBuilder = sessionBuilder.WithoutMonitoring()
	} else if monitorPort > 0 {
		sessionBuilder = sessionBuilder.WithMonitorPort(monitorPort)
	}

	s := sessionBuilder.Build()
	defer s.Terminate()

	comp, err := dnc.MakeBuilder().
		WithMemorySize(memorySize).
		WithMemoryWidth(memoryWidth).
		WithReadHeads(readHeads).
		WithHiddens(hiddens).
		WithInputs(bits).
		WithOutputs(bits).
		WithSeed(seed).
		Build("Trainee")
	if err != nil {
		log.Fatalf("Error building network: %v", err)
	}
	defer comp.Release()

	s.RegisterComponent(comp)

	train(s, comp, steps, bits, seed)

	fmt.Printf("Final training error: %.2f%%\n", comp.TrainingError())
}

func train(s *session.Session, comp *dnc.Comp, steps, bits int, seed int64) {
	rng := rand.New(rand.NewSource(seed))

	var bar *monitoring.ProgressBar
	if m := s.Monitor(); m != nil {
		bar = m.CreateProgressBar("training", uint64(steps))
		defer m.CompleteProgressBar(bar)
	}

	pattern := make([]float64, bits)

	for step := 1; step <= steps; step++ {
		for i := range pattern {
			pattern[i] = 0.25
			if rng.Intn(2) == 1 {
				pattern[i] = 0.75
			}
		}

		for i, x := range pattern {
			comp.SetInput(i, x)
		}

		comp.FeedForward()

		for i, x := range pattern {
			comp.SetOutput(i, x)
		}

		comp.Update()

		s.RecordStep(comp, step)

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}
}
