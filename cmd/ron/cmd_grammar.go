package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/ron/grammar"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar [file]",
		Short: "Print or verify the EBNF grammar of the accepted syntax",
		Long: `Print the built-in EBNF grammar. With --verify, check that the
built-in grammar, or the grammar in the given file, is well formed and that
every production is reachable from Document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verify {
				if len(args) > 0 {
					return fmt.Errorf("a grammar file can only be given with --verify")
				}
				_, err := io.WriteString(cmd.OutOrStdout(), grammar.Source())
				return err
			}

			var g ebnf.Grammar
			var err error
			if len(args) > 0 {
				g, err = grammar.LoadFile(args[0])
			} else {
				g, err = grammar.Load()
			}
			if err == nil {
				err = grammar.Verify(g)
			}
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return errReported
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d productions\n", len(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar instead of printing it")

	return cmd
}

func printErrors(w io.Writer, err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Fprintln(w, e)
	}
}
