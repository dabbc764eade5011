package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "grugast",
	Short: "Bidirectional AST serializer for grug source files",
	Long: `grugast converts between .grug source files and their JSON AST
representation, preserving comments and blank lines, for a single file or
a whole directory tree.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("grugast version %s\n", Version))
	rootCmd.PersistentFlags().StringP("extension", "e", "", "override the configured source file extension")
}

func extensionFlag(cmd *cobra.Command) string {
	ext, _ := cmd.Flags().GetString("extension")
	return ext
}
