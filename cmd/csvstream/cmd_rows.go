package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csvstream"
)

func newRowsCmd(flags *inputFlags) *cobra.Command {
	var outputFormat string
	var ordered bool
	var onBadLine string

	cmd := &cobra.Command{
		Use:   "rows <file>",
		Short: "Print every data row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := csvstream.ParseBadLineMode(onBadLine)
			if err != nil {
				return err
			}
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			r, cleanup, err := openReader(args[0], flags)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if ordered {
				return printOrdered(out, csvstream.NewScanner(r).SetOnBadLine(mode), outputFormat)
			}
			return printRows(out, cmd.ErrOrStderr(), r, mode, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&ordered, "ordered", false, "keep column order and duplicate column names")
	cmd.Flags().StringVar(&onBadLine, "on-bad-line", "error", "lines with the wrong field count: error, warn or skip")

	return cmd
}

func printOrdered(out io.Writer, scanner *csvstream.Scanner, outputFormat string) error {
	enc := json.NewEncoder(out)
	n := 0
	for scanner.Scan() {
		n++
		record := scanner.Record()
		if outputFormat == "json" {
			if err := enc.Encode(record); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			continue
		}
		fmt.Fprintf(out, "row %d:\n", n)
		for _, f := range record {
			fmt.Fprintf(out, "  %s: %s\n", f.Name, f.Value)
		}
	}
	return scanner.Err()
}

func printRows(out, errOut io.Writer, r *csvstream.Reader, mode csvstream.BadLineMode, outputFormat string) error {
	enc := json.NewEncoder(out)
	header := r.Header()
	n := 0
	for row, err := range r.All() {
		if err != nil {
			if !errors.Is(err, csvstream.ErrFieldCount) || mode == csvstream.BadLineModeError {
				return err
			}
			if mode == csvstream.BadLineModeWarn {
				fmt.Fprintf(errOut, "warning: %v\n", err)
			}
			continue
		}

		n++
		if outputFormat == "json" {
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			continue
		}
		fmt.Fprintf(out, "row %d:\n", n)
		for _, name := range header {
			fmt.Fprintf(out, "  %s: %s\n", name, row[name])
		}
	}
	return nil
}
