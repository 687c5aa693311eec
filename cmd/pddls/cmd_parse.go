package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pddls/pddls/pddl"
	"github.com/pddls/pddls/pddl/parser"
)

func newParseCmd() *cobra.Command {
	var includePositions bool
	var showInfo bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .pddl file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read pddl file: %w", err)
			}

			tree := parser.Parse(data, filepath.Base(filename))

			if showInfo {
				info := pddl.InfoFromTree(tree)
				fmt.Printf("name: %s\n", info.Name)
				if info.DomainRef != "" {
					fmt.Printf("domain: %s\n", info.DomainRef)
				}
				fmt.Printf("requirements: %v\n", info.Requirements)
				fmt.Printf("types: %v\n", info.Types)
				fmt.Printf("constants: %v\n", info.Constants)
				fmt.Printf("objects: %v\n", info.Objects)
				for _, p := range info.Predicates {
					fmt.Printf("predicate: %s %v\n", p.Name, p.Parameters)
				}
				for _, f := range info.Functions {
					fmt.Printf("function: %s %v\n", f.Name, f.Parameters)
				}
				return nil
			}

			if includePositions {
				fmt.Println(tree.Root.StringWithPositions())
			} else {
				fmt.Println(tree.Root.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includePositions, "positions", false, "include token positions in the dump")
	cmd.Flags().BoolVar(&showInfo, "info", false, "print the declarations instead of the tree")

	return cmd
}
