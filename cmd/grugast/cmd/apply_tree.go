package cmd

import (
	"fmt"
	"os"

	"github.com/MyNameIsTrez/grugast/internal/applier"
	"github.com/MyNameIsTrez/grugast/internal/config"
	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
	"github.com/MyNameIsTrez/grugast/internal/walker"
	"github.com/spf13/cobra"
)

var applyTreeCmd = &cobra.Command{
	Use:   "apply-tree <tree.json> <outdir>",
	Short: "Apply a tree-shaped JSON document, reconstructing a directory of grug files",
	Args:  cobra.ExactArgs(2),
	RunE:  runApplyTree,
}

func init() {
	rootCmd.AddCommand(applyTreeCmd)
}

func runApplyTree(cmd *cobra.Command, args []string) error {
	jsonPath, outDir := args[0], args[1]

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", jsonPath, err)
	}
	root, err := jsonvalue.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", jsonPath, err)
	}

	cfg, err := config.Load(outDir)
	if err != nil {
		return err
	}
	if ext := extensionFlag(cmd); ext != "" {
		cfg.Extension = ext
	}

	opts := applier.Options{IndentWidth: cfg.IndentWidth, UseTabs: cfg.UseTabs}
	return walker.ApplyTree(root, outDir, cfg.Extension, opts)
}
