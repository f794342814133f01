package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// inputFlags are shared by every subcommand that reads a file.
type inputFlags struct {
	delimiter string
	lenient   bool
}

func main() {
	var verbosity int
	flags := &inputFlags{}

	rootCmd := &cobra.Command{
		Use:           "csvstream",
		Short:         "Read delimited text files row by row",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVarP(&flags.delimiter, "delimiter", "d", ",", `field delimiter: one character, "\t", "tab" or "auto"`)
	rootCmd.PersistentFlags().BoolVar(&flags.lenient, "lenient", false, "pad short rows and truncate long rows instead of failing")

	rootCmd.AddCommand(newHeaderCmd(flags))
	rootCmd.AddCommand(newRowsCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newSniffCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
