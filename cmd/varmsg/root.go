package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	searchPaths []string
	basePackage string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "varmsg",
	Short: "Message schema resolution and inspection",
	Long: `varmsg resolves named message schemas into self-contained descriptors:
a canonical data type, an MD5 sum, and a flattened definition that inlines
every transitively referenced schema.

Quick start:
  varmsg resolve std_msgs/Header   # Print a resolved descriptor
  varmsg fields geometry_msgs/Pose # List the fields of a schema
  varmsg serve                     # Start the schema API server`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "varmsg.yaml", "config file path")
	rootCmd.PersistentFlags().StringSliceVarP(&searchPaths, "path", "p", nil, "package search path (repeatable, overrides config)")
	rootCmd.PersistentFlags().StringVar(&basePackage, "base-package", "", "package assumed for the bare Header alias")
}
