package main

import (
	"fmt"
	"os"

	"github.com/artpar/varmsg/adapters/rospack"
	"github.com/artpar/varmsg/config"
	"github.com/spf13/cobra"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

var validatePackages []string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the varmsg configuration file.

Checks:
  - YAML syntax is valid
  - Required fields are present
  - Configured search paths exist
  - Named packages are locatable (optional)

Examples:
  varmsg validate
  varmsg validate --config /etc/varmsg/varmsg.yaml
  varmsg validate --package std_msgs --package geometry_msgs`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringSliceVar(&validatePackages, "package", nil, "check that the package is locatable (repeatable)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s...\n\n", cfgFile)

	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("  %s Config file exists\n", crossMark)
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	fmt.Printf("  %s Config file exists\n", checkMark)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("  %s Config syntax valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("  %s Config syntax valid\n", checkMark)

	fmt.Printf("  %s Base package: %s\n", checkMark, cfg.Resolver.BasePackage)
	fmt.Printf("  %s Database: %s (%s)\n", checkMark, cfg.Database.DSN, cfg.Database.Driver)

	ok := true
	for _, path := range cfg.Resolver.SearchPaths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			fmt.Printf("  %s Search path: %s\n", checkMark, path)
		} else {
			fmt.Printf("  %s Search path: %s (missing)\n", crossMark, path)
			ok = false
		}
	}

	if len(validatePackages) > 0 {
		paths := cfg.Resolver.SearchPaths
		if len(searchPaths) > 0 {
			paths = searchPaths
		}
		locator := rospack.New(paths)
		for _, pkg := range validatePackages {
			if _, found := locator.Locate(pkg); found {
				fmt.Printf("  %s Package locatable: %s\n", checkMark, pkg)
			} else {
				fmt.Printf("  %s Package locatable: %s\n", crossMark, pkg)
				ok = false
			}
		}
	}

	if !ok {
		return fmt.Errorf("validation found problems")
	}
	fmt.Printf("\nConfiguration valid\n")
	return nil
}
