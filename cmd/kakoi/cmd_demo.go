package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MichaelMMacLeod/kakoi/internal/seed"
	"github.com/MichaelMMacLeod/kakoi/internal/store"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed the example workspace and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			w := seed.Demo()
			log.Debug("workspace seeded", "values", w.Store.Len(), "nodes", w.Graph.Len())

			out := cmd.OutOrStdout()
			names := w.Store.RegisterNames()
			sort.Strings(names)
			fmt.Fprintln(out, "registers:")
			for _, name := range names {
				k, _ := w.Store.Register(name)
				fmt.Fprintf(out, "  %-6q %s\n", name, describe(w.Store, k))
			}

			fmt.Fprintln(out, "chain:")
			tr := flatten(w.Graph, w.Root, cfg.ShowDepth)
			printTree(out, tr)
			tr.RemoveRoot()
			return nil
		},
	}
}

// describe renders a value one level deep.
func describe(s *store.Store, k store.Key) string {
	switch k.Kind() {
	case store.KindString:
		return fmt.Sprintf("%q", s.String(k.AsString()))
	case store.KindImage:
		img := s.Image(k.AsImage())
		return fmt.Sprintf("image %dx%d", img.Width, img.Height)
	case store.KindSet:
		elems := s.SetElems(k.AsSet())
		parts := make([]string, 0, len(elems))
		for _, e := range elems {
			if e.Kind() == store.KindString {
				parts = append(parts, fmt.Sprintf("%q", s.String(e.AsString())))
			} else {
				parts = append(parts, e.Kind().String())
			}
		}
		sort.Strings(parts)
		return fmt.Sprintf("set{%s}", join(parts))
	case store.KindList:
		return fmt.Sprintf("list of %d", s.ListLen(k.AsList()))
	case store.KindMap:
		return fmt.Sprintf("map of %d", s.MapLen(k.AsMap()))
	}
	return "unknown"
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
