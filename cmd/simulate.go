package cmd

import (
	"github.com/harlequix/hamfec/channel"
	"github.com/harlequix/hamfec/internal/encoding"
	"github.com/harlequix/hamfec/internal/format"
	"github.com/harlequix/hamfec/simulation"
	"github.com/spf13/cobra"
)

var (
	simData     string
	simPosition int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Encode a data word, corrupt one bit and correct it",
	Long: `simulate runs a single pass through the encoder, the noisy channel and the
decoder. Without --data a random four bit word is drawn; without --position
the flipped bit is chosen at random.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simData, "data", "d", "", "four data bits, e.g. 1011")
	simulateCmd.Flags().IntVarP(&simPosition, "position", "p", 0, "bit position to flip (1-7)")
	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command, args []string) error {
	config, err := simulation.LoadConfig()
	if err != nil {
		return err
	}
	src := channel.NewSource(config.Seed)

	var data encoding.DataWord
	if simData != "" {
		data, err = encoding.ParseDataWord(simData)
		if err != nil {
			return err
		}
	} else {
		data = simulation.RandomDataWord(src)
	}

	var res simulation.Result
	if cmd.Flags().Changed("position") {
		res, err = simulation.RunAt(data, simPosition)
		if err != nil {
			return err
		}
	} else {
		res, err = simulation.Run(data, src)
		if err != nil {
			return err
		}
	}

	report, err := format.NewReport(res)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout())
}
