package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csvstream"
)

func newCheckCmd(flags *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report every row whose field count differs from the header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := openReader(args[0], flags)
			if err != nil {
				return err
			}
			defer cleanup()

			return runCheck(cmd.OutOrStdout(), r)
		},
	}
}

func runCheck(out io.Writer, r *csvstream.Reader) error {
	bad := 0
	for {
		_, err := r.ReadOrdered()
		if err == io.EOF {
			break
		}
		var countErr *csvstream.ColumnCountError
		if errors.As(err, &countErr) {
			bad++
			fmt.Fprintf(out, "%s:%d: expected %d fields, found %d\n",
				countErr.Name, countErr.Line, countErr.Want, countErr.Got)
			continue
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s: %d columns, %d rows, %d bad\n", r.Name(), r.Width(), r.Line(), bad)
	if bad > 0 {
		return fmt.Errorf("%d of %d rows have the wrong number of fields", bad, r.Line())
	}
	return nil
}
