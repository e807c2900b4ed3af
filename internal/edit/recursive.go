package edit

import (
	"github.com/MichaelMMacLeod/kakoi/internal/path"
)

// Builder materializes instruction streams. Insert allocates an empty
// chain node, Leaf materializes an inserted payload, and Group opens a
// source cursor over an existing group so nested rebuilds can share
// its elements.
type Builder[N, V any] interface {
	Insert() N
	Extend(from, to N)
	Indicate(from, to N)
	Leaf(v V) N
	Group(n N) Source[N]
}

// task is one pending chain rebuild.
type task[N, V any] struct {
	start path.Path
	// source is the group being copied, nil for a fresh build.
	source *N
	// copyNode is the placeholder allocated by the parent level; it
	// becomes the rebuilt chain's head. Nil only for the root task.
	copyNode *N
}

// Apply runs a batch of edits against the group headed by source,
// materializing the result through b. It returns the new chain head;
// ok is false when the batch builds nothing (an empty batch over an
// empty chain). A nil source edits a fresh, empty chain. The batch is
// sorted in place.
//
// Rebuilds are driven breadth-first: every Copy target allocates a
// placeholder node immediately and enqueues the nested rebuild, so
// the instruction stream for each level is contiguous. Cost is
// proportional to the number of edits times the depth they touch;
// untouched elements are shared, not copied.
func Apply[N, V any](b Builder[N, V], actions []Action[V], source *N) (N, bool) {
	Sort(actions)
	queue := []task[N, V]{{start: path.New(), source: source}}
	var root *N

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		var src Source[N]
		if t.source != nil {
			src = b.Group(*t.source)
		}
		in := NewInstructor[N, V](t.start, actions, src)

		var prev *N
		var head *N
		for {
			ins, ok := in.Next()
			if !ok {
				break
			}
			switch ins := ins.(type) {
			case Indicate[N, V]:
				var n N
				if prev == nil && t.copyNode != nil {
					// The parent already allocated this chain's head.
					n = *t.copyNode
				} else {
					n = b.Insert()
					if prev != nil {
						b.Extend(*prev, n)
					}
				}
				var to N
				switch ins.Target.Kind {
				case TargetOriginal:
					to = b.Leaf(ins.Target.Value)
				case TargetNode:
					to = *ins.Target.Node
				case TargetCopy:
					inner := b.Insert()
					queue = append(queue, task[N, V]{
						start:    ins.Target.Start,
						source:   ins.Target.Node,
						copyNode: &inner,
					})
					to = inner
				}
				b.Indicate(n, to)
				saved := n
				prev = &saved
				if head == nil {
					head = &saved
				}
			case Extend[N, V]:
				if ins.To != nil {
					switch {
					case prev != nil:
						b.Extend(*prev, *ins.To)
					case t.copyNode != nil:
						b.Extend(*t.copyNode, *ins.To)
					default:
						// Nothing was rebuilt at the root: the edited
						// chain is the source chain.
						saved := *ins.To
						head = &saved
					}
				} else {
					n := b.Insert()
					if prev != nil {
						b.Extend(*prev, n)
					} else if t.copyNode != nil {
						b.Extend(*t.copyNode, n)
					}
				}
			}
		}
		if root == nil {
			// The root task runs first; its head is the result.
			if t.copyNode != nil {
				root = t.copyNode
			} else if head != nil {
				root = head
			}
		}
	}
	if root == nil {
		var zero N
		return zero, false
	}
	return *root, true
}
