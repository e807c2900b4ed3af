package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MichaelMMacLeod/kakoi/internal/edit"
	"github.com/MichaelMMacLeod/kakoi/internal/graph"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <script.yaml>",
		Short: "Apply a script's edits to its group copy-on-write",
		Long: `apply builds the script's group, runs its edit batch against it, and
prints the edited group. The original chain is never modified; the new
chain shares every node the edits did not touch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			actions, err := script.Actions()
			if err != nil {
				return err
			}

			g := graph.New()
			base, err := script.BuildGroup(g)
			if err != nil {
				return err
			}
			if !base.IsZero() {
				g.Commit(base, graph.NodeID{})
			}
			baseNodes := g.Len()

			root, ok := edit.ApplyToGraph(g, actions, base)
			if !ok {
				log.Warn("edits produced an empty group")
			} else {
				g.Commit(root, base)
			}
			created := g.Len() - baseNodes
			log.Info("batch applied",
				"edits", len(actions),
				"created", created,
				"shared", baseNodes,
			)

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]int{
					"edits":   len(actions),
					"created": created,
					"total":   g.Len(),
				})
			}
			tr := flatten(g, root, cfg.ShowDepth)
			printTree(cmd.OutOrStdout(), tr)
			tr.RemoveRoot()
			fmt.Fprintf(cmd.OutOrStdout(), "%d edits, %d nodes created\n", len(actions), created)
			return nil
		},
	}
}
