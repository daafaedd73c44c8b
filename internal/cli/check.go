package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakecoffman/sweep"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare every step against a brute-force AABB test",
		Long: `Step a scene and compare the broad phase's candidates with an
exhaustive pairwise AABB test. Only mismatched steps are printed.
Exits non-zero if any step differs.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd)
		},
	}

	addSimFlags(cmd, opts)
	return cmd
}

func runCheck(rootOpts *RootOptions, opts *SimOptions, cmd *cobra.Command) error {
	settings, err := loadSettings(rootOpts.Config)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	axes := settings.BroadPhase.Axes

	var mismatches []StepResult
	steps := 0
	err = simulate(settings, rootOpts, opts, func(step int, boxes []*sweep.Box, pairs []Pair) error {
		steps++
		missing, extra := diffPairs(bruteForce(boxes, axes), pairs)
		if len(missing) > 0 || len(extra) > 0 {
			mismatches = append(mismatches, StepResult{Step: step, Pairs: pairs, Missing: missing, Extra: extra})
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := writeResults(cmd.OutOrStdout(), rootOpts.Format, mismatches); err != nil {
		return err
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d steps differ from brute force", len(mismatches), steps)
	}
	if rootOpts.Format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d steps match\n", steps)
	}
	return nil
}
