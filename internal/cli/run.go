package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakecoffman/sweep"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a scene and print the candidate pairs of every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, cmd)
		},
	}

	addSimFlags(cmd, opts)
	return cmd
}

func addSimFlags(cmd *cobra.Command, opts *SimOptions) {
	cmd.Flags().StringVarP(&opts.Scene, "scene", "s", "", "scene file (YAML)")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "number of steps (overrides the scene)")
	cmd.Flags().Float64Var(&opts.DT, "dt", 0, "step length (overrides the scene)")
	_ = cmd.MarkFlagRequired("scene")
}

func runRun(rootOpts *RootOptions, opts *SimOptions, cmd *cobra.Command) error {
	settings, err := loadSettings(rootOpts.Config)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var results []StepResult
	err = simulate(settings, rootOpts, opts, func(step int, _ []*sweep.Box, pairs []Pair) error {
		results = append(results, StepResult{Step: step, Pairs: pairs})
		return nil
	})
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), rootOpts.Format, results)
}
