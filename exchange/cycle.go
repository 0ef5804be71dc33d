package exchange

import "github.com/emirpasic/gods/stacks/arraystack"

// Visitation states of the cycle search.
const (
	White = iota // not discovered
	Gray         // on the current search path
	Black        // fully explored, cannot lead to a new cycle
)

// Cycle is a directed cycle of the exchange digraph.
//
// Vertices is closed (first == last); Edges[i] is the base edge of the arc
// Vertices[i]→Vertices[i+1]. Arcs alternate matched and unmatched.
type Cycle struct {
	Vertices []int
	Edges    []int
}

// Len returns the number of arcs on the cycle.
func (c Cycle) Len() int { return len(c.Edges) }

// frame is one entry of the explicit DFS stack: the vertex and the position
// of the next successor to try.
type frame struct {
	v    int
	next int
}

// FindCycle returns the first directed cycle met by a depth-first search
// that starts from vertices in ascending order and follows successors in
// ascending order.
//
// Steps:
//  1. Colour every vertex White.
//  2. For each White root push a frame and run the loop:
//     a. Peek the top frame; if it has no successor left, mark it Black and pop.
//     b. Otherwise advance to the next arc. A White head is pushed as Gray,
//     a Gray head closes a cycle, a Black head is skipped.
//  3. Report false once every root has been exhausted.
//
// The stack is explicit so deep alternating chains do not deepen the call stack.
func FindCycle(d *Digraph) (Cycle, bool) {
	color := make([]uint8, d.VertexCount())
	stack := arraystack.New()

	for root := 0; root < d.VertexCount(); root++ {
		if color[root] != White || len(d.out[root]) == 0 {
			continue
		}
		color[root] = Gray
		stack.Push(&frame{v: root})

		for !stack.Empty() {
			top, _ := stack.Peek()
			f := top.(*frame)
			if f.next == len(d.out[f.v]) {
				color[f.v] = Black
				stack.Pop()
				continue
			}
			arc := d.out[f.v][f.next]
			f.next++

			switch color[arc.To] {
			case White:
				color[arc.To] = Gray
				stack.Push(&frame{v: arc.To})
			case Gray:
				return closeCycle(d, stack, arc.To), true
			}
		}
	}

	return Cycle{}, false
}

// closeCycle reads the Gray path from head to the top of the stack.
// arraystack.Values lists the top first, so the walk goes backwards.
func closeCycle(d *Digraph, stack *arraystack.Stack, head int) Cycle {
	values := stack.Values()
	start := 0
	for i, v := range values {
		if v.(*frame).v == head {
			start = i
			break
		}
	}

	c := Cycle{
		Vertices: make([]int, 0, start+2),
		Edges:    make([]int, 0, start+1),
	}
	for i := start; i >= 0; i-- {
		f := values[i].(*frame)
		c.Vertices = append(c.Vertices, f.v)
		c.Edges = append(c.Edges, d.out[f.v][f.next-1].Edge)
	}
	c.Vertices = append(c.Vertices, head)

	return c
}
