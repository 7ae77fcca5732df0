package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eantcal/nuexpreval/pkg/expreval"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var describe bool

var rootCmd = &cobra.Command{
	Use:   "nuexpreval [expression...]",
	Short: "BASIC-style expression evaluator",
	Long: `nuexpreval evaluates arithmetic, logical, string and bitwise
expressions written in an infix syntax reminiscent of classic BASIC.

All arguments are concatenated into one expression and evaluated
against an empty context:

  nuexpreval "(1+2)*3"
  nuexpreval 'len("hello")'
  nuexpreval "1E-3" + 1`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          evaluate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVarP(&describe, "describe", "d", false, "print the result with its type")
}

func evaluate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("%s: an expression is required", cmd.Name())
	}

	source := strings.Join(args, "")

	result, err := expreval.Eval(source, expreval.NewContext())
	if err != nil {
		return err
	}

	if describe {
		cmd.Println(result.Describe())
	} else {
		cmd.Println(result.ToStr())
	}
	return nil
}
