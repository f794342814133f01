package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSniffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff <file>",
		Short: "Guess the field delimiter of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			delim := sniff(bufio.NewReaderSize(f, sniffSize))
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", delim)
			return nil
		},
	}
}
