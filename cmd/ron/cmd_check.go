package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ron/grammar"
	"github.com/dhamidi/ron/parser"
	"github.com/dhamidi/ron/report"
)

func newCheckCmd() *cobra.Command {
	var strict bool
	var maxDepth int
	var withGrammar bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse documents and report the first error in each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recognizer *grammar.Recognizer
			if withGrammar {
				g, err := grammar.Load()
				if err != nil {
					return err
				}
				recognizer = grammar.NewRecognizer(g)
			}

			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				p := parser.New(string(data), parserOptions(filename, strict, maxDepth)...)
				file := report.NewFile(p.File(), p.Source())

				ok, err := checkFile(cmd, p, file)
				if err != nil {
					return err
				}

				if recognizer != nil {
					var merr *grammar.MatchError
					if err := recognizer.Match(file.Text()); errors.As(err, &merr) {
						loc := file.Location(merr.Offset)
						fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d:%d: grammar: %s\n", file.Name(), loc.Line, loc.Column, merr.Error())
						ok = false
					}
				}

				if ok {
					log.Infof("%s: ok", filename)
				} else {
					failed++
				}
			}

			if failed > 0 {
				log.Noticef("%d of %d files failed", failed, len(args))
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject missing and leading commas and trailing tokens")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum container nesting, 0 for no limit")
	cmd.Flags().BoolVar(&withGrammar, "grammar", false, "also match each file against the EBNF grammar")

	return cmd
}

// checkFile drives p to the end and renders the first error against file.
func checkFile(cmd *cobra.Command, p *parser.Parser, file *report.File) (bool, error) {
	for _, err := range p.Events() {
		if err == nil {
			continue
		}
		if rerr := report.Render(cmd.ErrOrStderr(), file, err); rerr != nil {
			return false, rerr
		}
		return false, nil
	}
	return true, nil
}
