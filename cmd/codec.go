package cmd

import (
	"fmt"

	"github.com/harlequix/hamfec/internal/encoding"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <data>",
	Short: "Print the Hamming(7,4) codeword for four data bits",
	Args:  cobra.ExactArgs(1),
	RunE:  encode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <codeword>",
	Short: "Correct a received seven bit codeword",
	Args:  cobra.ExactArgs(1),
	RunE:  decode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	data, err := encoding.ParseDataWord(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "parity:   %s\n", encoding.Parity(data))
	fmt.Fprintf(out, "codeword: %s\n", encoding.Encode(data))
	return nil
}

func decode(cmd *cobra.Command, args []string) error {
	received, err := encoding.ParseCodeword(args[0])
	if err != nil {
		return err
	}
	corrected, pos, err := encoding.Decode(received)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "syndrome: %s\n", encoding.ComputeSyndrome(received))
	if pos == encoding.NoError {
		fmt.Fprintln(out, "No error detected. Codeword is correct.")
	} else {
		fmt.Fprintf(out, "corrected: %s (Error corrected at position: %d)\n", corrected, pos)
	}
	fmt.Fprintf(out, "data:     %s\n", corrected.Data())
	return nil
}
