package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHeaderCmd(flags *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the column names, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := openReader(args[0], flags)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for i, name := range r.Header() {
				fmt.Fprintf(out, "%d\t%s\n", i, name)
			}
			return nil
		},
	}
}
