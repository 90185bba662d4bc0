package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ron/parser"
	"github.com/dhamidi/ron/report"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a document with their byte ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokens, lexErr := parser.Tokenize(src)

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, tok := range tokens {
				fmt.Fprintf(out, "%d:%d\t%s\t%s\n", tok.Lexeme.Start, tok.Lexeme.End, tok.Kind, tok.Lexeme.Text(src))
			}
			if err := out.Flush(); err != nil {
				return err
			}

			if lexErr != nil {
				if err := report.Render(cmd.ErrOrStderr(), report.NewFile(name, src), lexErr); err != nil {
					return err
				}
				return errReported
			}
			return nil
		},
	}
}
