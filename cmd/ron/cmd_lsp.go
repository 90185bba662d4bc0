package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/ron/lsp"
	"github.com/dhamidi/ron/parser"
)

func newLSPCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []parser.Option
			if strict {
				opts = append(opts, parser.WithStrict())
			}
			server := lsp.NewServer(version, opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "report missing and leading commas and trailing tokens")

	return cmd
}
