// pgen is a console toolbox for grammar descriptions: it checks that a
// description compiles and parses input files against one, printing the
// resulting tree.
package main

import (
	"os"
)

func main() {
	if e := newRootCommand().Execute(); e != nil {
		os.Exit(1)
	}
}
