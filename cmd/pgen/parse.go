package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agelmarc/parser-generator/parser"
	"github.com/agelmarc/parser-generator/source"
	"github.com/agelmarc/parser-generator/tree"
)

func newParseCommand() *cobra.Command {
	var asJson bool

	cmd := &cobra.Command{
		Use:   "parse <grammar-file> [input-file]",
		Short: "parse an input file and print the tree",
		Long:  "parse compiles a grammar description and applies it to the input file, or to standard input when no file is given.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, e := compileFile(args[0])
			if e != nil {
				failColor.Fprintf(os.Stderr, "%s: %s\n", args[0], e.Error())
				return e
			}

			name, content, e := readInput(args)
			if e != nil {
				failColor.Fprintln(os.Stderr, e.Error())
				return e
			}

			log.Debugf("parsing %s (%d bytes)", name, len(content))
			n, e := parser.Parse(g, source.New(name, content))
			if e != nil {
				failColor.Fprintf(os.Stderr, "%s: %s\n", name, e.Error())
				return e
			}

			if asJson {
				out, e := json.MarshalIndent(n, "", "  ")
				if e != nil {
					return e
				}
				fmt.Println(string(out))
			} else {
				fmt.Print(tree.Dump(n))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJson, "json", false, "print the tree as JSON")
	return cmd
}

func readInput(args []string) (name string, content []byte, e error) {
	if len(args) < 2 {
		content, e = io.ReadAll(os.Stdin)
		if e != nil {
			e = fmt.Errorf("cannot read stdin: %w", e)
		}
		return "stdin", content, e
	}

	name = args[1]
	content, e = os.ReadFile(name)
	if e != nil {
		e = fmt.Errorf("cannot read %s: %w", name, e)
	}
	return name, content, e
}
