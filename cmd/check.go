package cmd

import (
	"fmt"

	"github.com/harlequix/hamfec/internal/format"
	"github.com/harlequix/hamfec/simulation"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every single bit error and run random trials",
	Args:  cobra.NoArgs,
	RunE:  check,
}

func init() {
	checkCmd.Flags().Int("trials", 10000, "number of random trials")
	checkCmd.Flags().Int("workers", 4, "parallel trial workers")
	bindFlag("Trials", checkCmd.Flags().Lookup("trials"))
	bindFlag("Workers", checkCmd.Flags().Lookup("workers"))
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	if err := simulation.Verify(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "exhaustive check: all 16 data words, all 7 positions corrected")

	config, err := simulation.LoadConfig()
	if err != nil {
		return err
	}
	stats, err := simulation.Trials(cmd.Context(), config)
	if err != nil {
		return err
	}
	if err := format.RenderStats(cmd.OutOrStdout(), stats); err != nil {
		return err
	}
	if stats.Mismatched > 0 {
		return fmt.Errorf("%d of %d trials were not corrected", stats.Mismatched, stats.Trials)
	}
	return nil
}
