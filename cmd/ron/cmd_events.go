package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ron/format"
	"github.com/dhamidi/ron/parser"
	"github.com/dhamidi/ron/report"
)

func newEventsCmd() *cobra.Command {
	var outputFormat string
	var indent string
	var strict bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print the parser events of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "line":
				encoder = format.NewLineEncoder(cmd.OutOrStdout())
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout(), format.WithIndent(indent))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			p := parser.New(src, parserOptions(name, strict, maxDepth)...)
			n, err := format.Stream(p, encoder)
			log.Debugf("%s: %d events", name, n)
			if err != nil {
				var perr *parser.Error
				if !errors.As(err, &perr) {
					return err
				}
				if rerr := report.Render(cmd.ErrOrStderr(), report.NewFile(name, src), err); rerr != nil {
					return rerr
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().StringVar(&indent, "indent", "", "indent JSON output with this string")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject missing and leading commas and trailing tokens")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum container nesting, 0 for no limit")

	return cmd
}

func parserOptions(name string, strict bool, maxDepth int) []parser.Option {
	opts := []parser.Option{parser.WithFile(name)}
	if strict {
		opts = append(opts, parser.WithStrict())
	}
	if maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(maxDepth))
	}
	return opts
}
