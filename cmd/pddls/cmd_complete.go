package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pddls/pddls/pddl"
	"github.com/pddls/pddls/pddl/completion"
	"github.com/pddls/pddls/pddl/parser"
)

func newCompleteCmd() *cobra.Command {
	var triggerCharacter string

	cmd := &cobra.Command{
		Use:   "complete <file:line:column>",
		Short: "Print the completions offered at a position",
		Long: `Print the completions offered at a position, one per line.

Line and column are 1-based, the way editors display them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, line, column, err := parseLocation(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read pddl file: %w", err)
			}

			tree := parser.Parse(data, filepath.Base(filename))
			offset := parser.OffsetForPosition(data, line-1, column-1)

			req := completion.Request{
				Tree:        tree,
				Offset:      offset,
				TriggerKind: completion.TriggerInvoked,
				Domain:      pddl.InfoFromTree(tree),
			}
			if triggerCharacter != "" {
				req.TriggerKind = completion.TriggerCharacter
				req.TriggerCharacter = triggerCharacter
			}

			items := completion.NewEngine().Complete(context.Background(), req)
			for _, item := range items {
				fmt.Printf("%-24s %s\n", item.Label, item.Detail)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&triggerCharacter, "trigger", "t", "", "simulate a trigger character ((, :, ?, -)")

	return cmd
}

func parseLocation(arg string) (file string, line, column int, err error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 {
		return "", 0, 0, fmt.Errorf("expected file:line:column, got %q", arg)
	}
	column, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad column in %q: %w", arg, err)
	}
	line, err = strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad line in %q: %w", arg, err)
	}
	file = strings.Join(parts[:len(parts)-2], ":")
	return file, line, column, nil
}
