package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MichaelMMacLeod/kakoi/internal/graph"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <script.yaml>",
		Short: "Build a script's group and print it as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			g := graph.New()
			root, err := script.BuildGroup(g)
			if err != nil {
				return err
			}
			log.Debug("group built", "nodes", g.Len())

			tr := flatten(g, root, cfg.ShowDepth)
			printTree(cmd.OutOrStdout(), tr)
			tr.RemoveRoot()
			return nil
		},
	}
}

// flatten builds the indication tree for display. maxDepth bounds
// nesting; 0 is unbounded. Groups deeper than the bound render as a
// single elided node.
func flatten(g *graph.Graph, root graph.NodeID, maxDepth int) *graph.Tree[string] {
	tr := graph.NewTree[string]()
	if root.IsZero() {
		return tr
	}
	top := tr.InsertRoot(root, "group")
	flattenInto(g, tr, top, root, 1, maxDepth)
	return tr
}

func flattenInto(g *graph.Graph, tr *graph.Tree[string], parent graph.TreeID, head graph.NodeID, depth, maxDepth int) {
	it := g.Group(head)
	for {
		at, indicated, ok := it.Next()
		if !ok {
			return
		}
		if text, ok := g.LeafText(indicated); ok {
			tr.InsertChild(parent, at, text)
			continue
		}
		if maxDepth > 0 && depth >= maxDepth {
			tr.InsertChild(parent, at, "...")
			continue
		}
		child := tr.InsertChild(parent, at, "group")
		flattenInto(g, tr, child, indicated, depth+1, maxDepth)
	}
}

func printTree(w io.Writer, tr *graph.Tree[string]) {
	root, ok := tr.Root()
	if !ok {
		fmt.Fprintln(w, "(empty)")
		return
	}
	var walk func(id graph.TreeID, depth int)
	walk = func(id graph.TreeID, depth int) {
		_, text := tr.Node(id)
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), text)
		for _, child := range tr.Children(id) {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
}
