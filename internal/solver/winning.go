package solver

import (
	"log"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hailam/squadro/internal/board"
)

// Winner codes returned by the classification walk.
const (
	winnerPlayer0 = 0
	winnerPlayer1 = 1
	winnerUnknown = -1 // Draw, or a win not provable in the current pass.
)

// CollectWinningStates returns all winning states of player 0 and the
// number of passes it took to reach the fixed point.
//
// On entry remaining must contain every reachable state. On return it
// holds the states for which neither player can force a win.
//
// Games can loop, so one walk over the graph cannot settle every state:
// each pass classifies states whose outcome became provable during the
// previous one, and the fixed point is reached once a pass shrinks
// nothing.
func CollectWinningStates(remaining *roaring64.Bitmap) (*roaring64.Bitmap, int) {
	player0Wins := roaring64.NewBitmap()

	previousRemaining := remaining.GetCardinality()
	previousWins := uint64(0)

	passes := 0
	for {
		passes++

		classifyPass(remaining, player0Wins)

		remainingDiff := previousRemaining - remaining.GetCardinality()
		winsDiff := player0Wins.GetCardinality() - previousWins

		log.Printf("[Generate] Pass %d found %d new winning states for player 0 and %d for player 1.",
			passes, winsDiff, remainingDiff-winsDiff)

		if remainingDiff == 0 {
			break
		}

		previousRemaining = remaining.GetCardinality()
		previousWins = player0Wins.GetCardinality()
	}

	return player0Wins, passes
}

// classifyPass scans remaining in ascending ID order and classifies every
// state whose outcome is provable this pass.
//
// While the pass runs, membership in remaining AND seenOrPlayer0Wins
// means "seen this pass, not (yet) proven winning"; membership in
// seenOrPlayer0Wins alone means "wins for player 0"; membership in
// neither means "wins for player 1". The overlay is stripped again at
// the end of the pass.
func classifyPass(remaining, seenOrPlayer0Wins *roaring64.Bitmap) {
	from := uint64(0)
	for {
		stateID, ok := nextValue(remaining, from)
		if !ok {
			break
		}

		classifyFrom(board.FromID(stateID), remaining, seenOrPlayer0Wins)

		from = stateID + 1
	}

	// Clean up so that seenOrPlayer0Wins only keeps winning states.
	it := remaining.Iterator()
	for it.HasNext() {
		seenOrPlayer0Wins.Remove(it.Next())
	}
}

// classifyFrame is one suspended classification call: a parent state
// waiting for the verdicts of its children.
type classifyFrame struct {
	id         uint64
	nextPlayer int
	children   []board.State
	child      int
	eval       int
}

// classifyFrom walks the game graph below root in depth-first order,
// marking states proven winning for either player. It returns the winner
// of root, or winnerUnknown when the outcome is a draw or cannot be
// proven this pass. The walk keeps its frames on the heap; collision
// cycles chain far too deep for native recursion.
func classifyFrom(root board.State, remaining, seenOrPlayer0Wins *roaring64.Bitmap) int {
	var stack []classifyFrame

	result, expanded := enterState(root, remaining, seenOrPlayer0Wins, &stack)

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		if expanded {
			// The frame was just pushed; no child verdict to fold in yet.
			expanded = false
		} else {
			switch result {
			case winnerUnknown:
				// A child is a draw or unknown; the worst case for the
				// player to move drops from loss to draw.
				frame.eval = winnerUnknown
			case frame.nextPlayer:
				// One winning child is enough.
				remaining.Remove(frame.id)
				if frame.nextPlayer != 0 {
					seenOrPlayer0Wins.Remove(frame.id)
				}
				result = frame.nextPlayer
				stack = stack[:len(stack)-1]
				continue
			}
		}

		if frame.child < len(frame.children) {
			child := frame.children[frame.child]
			frame.child++
			result, expanded = enterState(child, remaining, seenOrPlayer0Wins, &stack)
			continue
		}

		// Every child was examined without finding a win.
		if frame.eval == 1-frame.nextPlayer {
			// All children lose for the player to move.
			remaining.Remove(frame.id)
			if frame.nextPlayer == 0 {
				seenOrPlayer0Wins.Remove(frame.id)
			}
		}
		result = frame.eval
		stack = stack[:len(stack)-1]
	}

	return result
}

// enterState starts the classification of one state. Either the verdict
// is immediate (already classified, revisited, or terminal) or a frame
// for its children is pushed and expanded is true.
func enterState(state board.State, remaining, seenOrPlayer0Wins *roaring64.Bitmap, stack *[]classifyFrame) (result int, expanded bool) {
	stateID := state.ID()

	if !remaining.Contains(stateID) {
		// Already classified as winning for one of the players.
		if seenOrPlayer0Wins.Contains(stateID) {
			return winnerPlayer0, false
		}
		return winnerPlayer1, false
	}

	// CheckedAdd reports false when the state was already seen this pass.
	if !seenOrPlayer0Wins.CheckedAdd(stateID) {
		// The state may be its own ancestor, in which case its outcome is
		// not yet known here; a later pass settles it.
		return winnerUnknown, false
	}

	if state.IsEnded() {
		remaining.Remove(stateID)
		if state.NextPlayer() == board.Top {
			// Player 0 cannot move; player 1 has won.
			seenOrPlayer0Wins.Remove(stateID)
			return winnerPlayer1, false
		}
		return winnerPlayer0, false
	}

	nextPlayer := int(state.NextPlayer())
	*stack = append(*stack, classifyFrame{
		id:         stateID,
		nextPlayer: nextPlayer,
		children:   state.NextStates(),
		// The starting point is the worst case for the player to move.
		eval: 1 - nextPlayer,
	})

	return 0, true
}

// nextValue returns the smallest value in bitmap that is >= from.
func nextValue(bitmap *roaring64.Bitmap, from uint64) (uint64, bool) {
	it := bitmap.Iterator()
	it.AdvanceIfNeeded(from)
	if !it.HasNext() {
		return 0, false
	}
	return it.Next(), true
}
