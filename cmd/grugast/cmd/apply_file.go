package cmd

import (
	"fmt"
	"os"

	"github.com/MyNameIsTrez/grugast/internal/applier"
	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
	"github.com/spf13/cobra"
)

var applyFileOutput string

var applyFileCmd = &cobra.Command{
	Use:   "apply-file <ast.json>",
	Short: "Apply a dumped JSON AST back to grug source",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplyFile,
}

func init() {
	rootCmd.AddCommand(applyFileCmd)
	applyFileCmd.Flags().StringVarP(&applyFileOutput, "output", "o", "", "write source to this path instead of stdout")
}

func runApplyFile(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	root, err := jsonvalue.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, closeOut, err := openOutput(applyFileOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	return applier.ApplyFile(out, root, applier.DefaultOptions())
}
