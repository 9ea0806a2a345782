package main

import (
	"fmt"

	"github.com/artpar/varmsg/adapters/matcher"
	"github.com/artpar/varmsg/core/message"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <package/Type>",
	Short: "List the fields of a message schema",
	Long: `Resolve a message schema and list the fields of each inlined type.

Examples:
  varmsg fields std_msgs/Header
  varmsg fields geometry_msgs/PoseStamped`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
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

	def, err := message.NewParser(matcher.New()).Parse(resolved.DataType, resolved.Definition)
	if err != nil {
		return err
	}

	for i, sec := range def.Sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n", sec.DataType)
		for _, f := range sec.Fields {
			switch {
			case f.Constant:
				fmt.Printf("  %s %s (constant)\n", f.Type, f.Name)
			case f.Array && f.Size > 0:
				fmt.Printf("  %s[%d] %s\n", f.Type, f.Size, f.Name)
			case f.Array:
				fmt.Printf("  %s[] %s\n", f.Type, f.Name)
			default:
				fmt.Printf("  %s %s\n", f.Type, f.Name)
			}
		}
	}
	return nil
}
