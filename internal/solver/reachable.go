// Package solver enumerates reachable Squadro positions and classifies
// them into winning and drawing sets by retrograde analysis.
package solver

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hailam/squadro/internal/board"
)

// ReachableStates returns the IDs of all states reachable from at least
// one of the initial states. The traversal is depth first with an
// explicit stack; paths through the game graph can be far deeper than
// the native call stack allows.
func ReachableStates(initStates []board.State) *roaring64.Bitmap {
	reachable := roaring64.NewBitmap()
	stack := make([]board.State, 0, 4096)

	for _, init := range initStates {
		stack = append(stack[:0], init)

		for len(stack) > 0 {
			state := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// CheckedAdd reports false when the ID was already marked.
			if !reachable.CheckedAdd(state.ID()) || state.IsEnded() {
				continue
			}

			stack = append(stack, state.NextStates()...)
		}
	}

	return reachable
}
