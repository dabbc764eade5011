// Command grugast dumps grug source files to JSON and applies JSON back to
// source, for single files and whole directory trees.
package main

import (
	"fmt"
	"os"

	"github.com/MyNameIsTrez/grugast/cmd/grugast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
