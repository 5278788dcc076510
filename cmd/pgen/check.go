package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agelmarc/parser-generator/grammar"
	"github.com/agelmarc/parser-generator/langdef"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar-file>",
		Short: "compile a grammar description and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, e := compileFile(args[0])
			if e != nil {
				failColor.Fprintf(os.Stderr, "%s: %s\n", args[0], e.Error())
				return e
			}

			okColor.Printf("%s: ok, %d symbols\n", args[0], g.Len())
			return nil
		},
	}
}

func compileFile(path string) (*grammar.Grammar, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, e)
	}

	log.Debugf("compiling %s (%d bytes)", path, len(content))
	return langdef.ParseBytes(path, content)
}
