package main

import (
	"fmt"
	"os"

	"github.com/artpar/varmsg/adapters/matcher"
	"github.com/artpar/varmsg/adapters/rospack"
	"github.com/artpar/varmsg/config"
	"github.com/artpar/varmsg/core/checksum"
	"github.com/artpar/varmsg/core/registry"
	"github.com/artpar/varmsg/core/resolve"
	"github.com/spf13/cobra"
)

var (
	resolveDefinitionOnly bool
	resolveMD5Only        bool
	resolveExpectedMD5    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <package/Type>",
	Short: "Resolve a message schema into a flattened descriptor",
	Long: `Resolve a message schema and print its descriptor.

The flattened definition inlines every transitively referenced schema,
deduplicated, in discovery order. The MD5 sum is computed over the
flattened definition bytes.

Examples:
  varmsg resolve std_msgs/Header
  varmsg resolve geometry_msgs/PoseStamped --definition
  varmsg resolve geometry_msgs/PoseStamped --md5
  varmsg resolve geometry_msgs/PoseStamped --verify d3812c3cbc69362b77dc0b19b345f8f5`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveDefinitionOnly, "definition", false, "print only the flattened definition")
	resolveCmd.Flags().BoolVar(&resolveMD5Only, "md5", false, "print only the MD5 sum")
	resolveCmd.Flags().StringVar(&resolveExpectedMD5, "verify", "", "fail unless the MD5 sum matches")
}

func runResolve(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	resolved, err := resolver.Resolve(args[0])
	if err != nil {
		return err
	}
	if resolved.Definition == "" {
		return fmt.Errorf("schema %s has an empty definition", args[0])
	}
	resolved.MD5Sum = checksum.Sum(resolved.Definition)

	if resolveExpectedMD5 != "" {
		if err := checksum.Verify(resolveExpectedMD5, resolved.MD5Sum); err != nil {
			return err
		}
	}

	switch {
	case resolveDefinitionOnly:
		fmt.Print(resolved.Definition)
	case resolveMD5Only:
		fmt.Println(resolved.MD5Sum)
	default:
		fmt.Printf("type:    %s\n", resolved.DataType)
		fmt.Printf("md5sum:  %s\n", resolved.MD5Sum)
		fmt.Printf("definition:\n%s", resolved.Definition)
	}
	return nil
}

// newResolver builds a resolver from the config file (when present) and the
// global flags. Flags win over config, config wins over environment.
func newResolver() (*resolve.Resolver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	paths := cfg.Resolver.SearchPaths
	if len(searchPaths) > 0 {
		paths = searchPaths
	}
	base := cfg.Resolver.BasePackage
	if basePackage != "" {
		base = basePackage
	}

	return resolve.New(rospack.New(paths), matcher.New(), registry.New(),
		resolve.WithBasePackage(base)), nil
}

// loadConfig loads the config file, falling back to defaults plus
// environment variables when the file does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		return config.FromEnv()
	}
	return config.Load(cfgFile)
}
