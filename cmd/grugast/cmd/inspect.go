package cmd

import (
	"bytes"
	"fmt"

	"github.com/MyNameIsTrez/grugast/internal/dumper"
	"github.com/MyNameIsTrez/grugast/internal/parser"
	"github.com/MyNameIsTrez/grugast/internal/sourcefile"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var inspectPretty bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <source.grug>",
	Short: "Dump a grug source file's JSON AST for debugging",
	Long: `inspect is a debugging aid, not one of the four core operations: it dumps
a source file's JSON AST straight to stdout, optionally pretty-printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectPretty, "pretty", false, "pretty-print the JSON instead of emitting the canonical compact form")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := sourcefile.Read(path)
	if err != nil {
		return err
	}

	p, err := parser.New(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	file, err := p.ParseFile()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := dumper.DumpFile(&buf, file); err != nil {
		return err
	}

	if !inspectPretty {
		fmt.Print(buf.String())
		return nil
	}

	fmt.Print(string(pretty.Pretty(buf.Bytes())))
	return nil
}
