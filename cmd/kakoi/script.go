package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MichaelMMacLeod/kakoi/internal/edit"
	"github.com/MichaelMMacLeod/kakoi/internal/graph"
	"github.com/MichaelMMacLeod/kakoi/internal/path"
)

// Script is the YAML input to show and apply: a group of strings and
// nested groups, plus an optional batch of edits against it.
//
//	group:
//	  - "a"
//	  - ["p", "q"]
//	edits:
//	  - op: insert
//	    at: [0, 1]
//	    value: "x"
//	  - op: remove
//	    at: [1]
type Script struct {
	Group []any      `yaml:"group"`
	Edits []editSpec `yaml:"edits"`
}

type editSpec struct {
	Op    string `yaml:"op"`
	At    []int  `yaml:"at"`
	Value string `yaml:"value"`
}

// LoadScript reads and parses a script file.
func LoadScript(p string) (*Script, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", p, err)
	}
	return &s, nil
}

// BuildGroup materializes the script's group as a chain in g. The
// returned id is zero for an empty group.
func (s *Script) BuildGroup(g *graph.Graph) (graph.NodeID, error) {
	return buildGroup(g, s.Group)
}

func buildGroup(g *graph.Graph, elems []any) (graph.NodeID, error) {
	var head graph.NodeID
	for i := len(elems) - 1; i >= 0; i-- {
		switch e := elems[i].(type) {
		case string:
			if head.IsZero() {
				head, _ = g.NewGroupWithLeaf(e)
			} else {
				head, _ = g.ExtendWithLeaf(head, e)
			}
		case []any:
			inner, err := buildGroup(g, e)
			if err != nil {
				return graph.NodeID{}, err
			}
			n := g.Insert()
			if inner.IsZero() {
				// An empty nested group is a bare branch indicating an
				// empty branch.
				inner = g.Insert()
			}
			g.Indicate(n, inner)
			if !head.IsZero() {
				g.Extend(n, head)
			}
			head = n
		default:
			return graph.NodeID{}, fmt.Errorf("group element %d: want string or list, got %T", i, elems[i])
		}
	}
	return head, nil
}

// Actions converts the script's edits into a batch.
func (s *Script) Actions() ([]edit.Action[string], error) {
	out := make([]edit.Action[string], 0, len(s.Edits))
	for i, e := range s.Edits {
		at, err := stepsOf(e.At)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i, err)
		}
		switch e.Op {
		case "insert":
			out = append(out, edit.Insert(at, e.Value))
		case "remove":
			if e.Value != "" {
				return nil, fmt.Errorf("edit %d: remove takes no value", i)
			}
			out = append(out, edit.Remove[string](at))
		default:
			return nil, fmt.Errorf("edit %d: unknown op %q", i, e.Op)
		}
	}
	return out, nil
}

func stepsOf(at []int) (path.Path, error) {
	if len(at) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	steps := make([]path.Step, len(at))
	for i, v := range at {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("path step %d: want 0 or 1, got %d", i, v)
		}
		steps[i] = path.Step(v)
	}
	return path.New(steps...), nil
}
