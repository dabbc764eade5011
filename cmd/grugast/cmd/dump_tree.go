package cmd

import (
	"fmt"

	"github.com/MyNameIsTrez/grugast/internal/config"
	"github.com/MyNameIsTrez/grugast/internal/walker"
	"github.com/spf13/cobra"
)

var (
	dumpTreeOutput string
	dumpTreeNoSort bool
)

var dumpTreeCmd = &cobra.Command{
	Use:   "dump-tree <dir>",
	Short: "Dump a directory tree of grug source files to a single JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpTree,
}

func init() {
	rootCmd.AddCommand(dumpTreeCmd)
	dumpTreeCmd.Flags().StringVarP(&dumpTreeOutput, "output", "o", "", "write JSON to this path instead of stdout")
	dumpTreeCmd.Flags().BoolVar(&dumpTreeNoSort, "no-sort", false, "use raw filesystem iteration order instead of natural sort")
}

func runDumpTree(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if ext := extensionFlag(cmd); ext != "" {
		cfg.Extension = ext
	}
	sortEntries := cfg.SortDirectoryEntries && !dumpTreeNoSort

	out, closeOut, err := openOutput(dumpTreeOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := walker.DumpTree(out, dir, cfg.Extension, sortEntries); err != nil {
		return fmt.Errorf("dumping %s: %w", dir, err)
	}
	return nil
}
