package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MyNameIsTrez/grugast/internal/dumper"
	"github.com/MyNameIsTrez/grugast/internal/parser"
	"github.com/MyNameIsTrez/grugast/internal/sourcefile"
	"github.com/spf13/cobra"
)

var dumpFileOutput string

var dumpFileCmd = &cobra.Command{
	Use:   "dump-file <source.grug>",
	Short: "Dump a single grug source file to JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpFile,
}

func init() {
	rootCmd.AddCommand(dumpFileCmd)
	dumpFileCmd.Flags().StringVarP(&dumpFileOutput, "output", "o", "", "write JSON to this path instead of stdout")
}

func runDumpFile(cmd *cobra.Command, args []string) error {
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

	out, closeOut, err := openOutput(dumpFileOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	return dumper.DumpFile(out, file)
}

// openOutput returns stdout when path is empty, otherwise a created file
// at path, plus a close function that is always safe to call.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
