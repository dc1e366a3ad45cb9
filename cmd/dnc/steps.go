package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dnclab/dnc/datarecording"
)

var stepsCmd = &cobra.Command{
	Use:   "steps [database]",
	Short: "List the recorded steps of a training run.",
	Long: "`steps [database]` prints the per-step metrics recorded into " +
		"a training database, most recent first.",
	Args: cobra.ExactArgs(1),
	Run:  runSteps,
}

func init() {
	stepsCmd.Flags().Int("limit", 20, "maximum number of steps to print")

	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	reader := datarecording.NewReader(args[0])
	defer reader.Close()

	reader.MapTable("training_steps", datarecording.StepMetrics{})

	results, total, err := reader.Query(
		context.Background(),
		"training_steps",
		datarecording.QueryParams{
			OrderBy: "Step DESC",
			Limit:   limit,
		},
	)
	if err != nil {
		log.Fatalf("Error reading steps: %v", err)
	}

	fmt.Printf("%d steps recorded\n", total)
	fmt.Printf("%8s %16s %12s %8s\n", "Step", "TrainingError", "MeanUsage", "Class")

	for _, r := range results {
		m := r.(datarecording.StepMetrics)
		fmt.Printf("%8d %16.4f %12.4f %8d\n",
			m.Step, m.TrainingError, m.MeanUsage, m.Class)
	}
}
