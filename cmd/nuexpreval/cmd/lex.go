package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eantcal/nuexpreval/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [expression...]",
	Short: "Tokenize an expression and dump the token stream",
	Long: `Tokenize an expression and print one line per token with its byte
position, class and literal. Useful for debugging the lexical policy.

Example:
  nuexpreval lex '1E-3 + foo[2]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: dumpTokens,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func dumpTokens(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, "")

	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return err
	}

	for _, t := range tokens {
		cmd.Println(fmt.Sprintf("%4d  %-14s %q", t.Pos, t.Class, t.Literal))
	}
	return nil
}
