package solver

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hailam/squadro/internal/board"
)

// bitmapsEqual reports whether a and b hold the same IDs.
func bitmapsEqual(a, b *roaring64.Bitmap) bool {
	if a.GetCardinality() != b.GetCardinality() {
		return false
	}
	diff := a.Clone()
	diff.AndNot(b)
	return diff.IsEmpty()
}

// intersectionCount returns the number of IDs in both a and b.
func intersectionCount(a, b *roaring64.Bitmap) uint64 {
	both := a.Clone()
	both.And(b)
	return both.GetCardinality()
}

func TestSimpleEndgameExploration(t *testing.T) {
	initState := board.FromID(100382226046)

	seenStates := ReachableStates([]board.State{initState})

	remainingStates := seenStates.Clone()
	winningStates, _ := CollectWinningStates(remainingStates)

	if !winningStates.Contains(initState.ID()) {
		t.Error("initial state should win for player 0")
	}
	if got := seenStates.GetCardinality(); got != 3 {
		t.Errorf("reachable set has %d states, want 3", got)
	}
	if !bitmapsEqual(seenStates, winningStates) {
		t.Error("every reachable state should win for player 0")
	}
	for _, id := range []uint64{
		100382226046,
		100382226046 + 60217344 + 1,
		100382226046 + 3456 + 1,
	} {
		if !seenStates.Contains(id) {
			t.Errorf("reachable set should contain %d", id)
		}
	}

	// Player 1 wins nowhere in this endgame.
	classified := remainingStates.Clone()
	classified.Or(winningStates)
	player1Wins := seenStates.Clone()
	player1Wins.AndNot(classified)

	if player1Wins.Contains(initState.ID()) {
		t.Error("initial state should not win for player 1")
	}
	if got := player1Wins.GetCardinality(); got != 0 {
		t.Errorf("player 1 wins %d states, want 0", got)
	}
	if got := intersectionCount(seenStates, player1Wins); got != 0 {
		t.Errorf("player 1 wins intersect the reachable set in %d states, want 0", got)
	}
}

func TestTrickyEndgameExploration(t *testing.T) {
	initState := board.FromID(85065666045)

	var previousSeenCount uint64

	for player := 0; player <= 1; player++ {
		seenStates := ReachableStates([]board.State{initState})

		remainingStates := seenStates.Clone()
		winningStates, _ := CollectWinningStates(remainingStates)

		if player == 1 {
			classified := remainingStates.Clone()
			classified.Or(winningStates)
			winningStates = seenStates.Clone()
			winningStates.AndNot(classified)
		}

		if got := winningStates.Contains(initState.ID()); got != (player == 1) {
			t.Errorf("initial state winning for player %d = %v, want %v", player, got, player == 1)
		}

		if player == 1 && previousSeenCount != seenStates.GetCardinality() {
			t.Errorf("reachable count changed between runs: %d then %d",
				previousSeenCount, seenStates.GetCardinality())
		}
		previousSeenCount = seenStates.GetCardinality()

		// Moving piece 0 or 1 hands the win to player 0; piece 4 keeps it.
		for _, tc := range []struct {
			piece       int
			wantPlayer0 bool
		}{
			{0, true},
			{1, true},
			{4, false},
		} {
			next, ok := initState.NextState(tc.piece)
			if !ok {
				t.Fatalf("piece %d should be movable", tc.piece)
			}
			want := tc.wantPlayer0 == (player == 0)
			if got := winningStates.Contains(next.ID()); got != want {
				t.Errorf("player %d: NextState(%d) winning = %v, want %v", player, tc.piece, got, want)
			}
		}
	}
}

func TestEndlessGameExploration(t *testing.T) {
	initState := board.FromID(5057791486)

	var seenStatesRuns []*roaring64.Bitmap
	var winningStatesRuns []*roaring64.Bitmap

	for player := 0; player <= 1; player++ {
		seenStates := ReachableStates([]board.State{initState})

		remainingStates := seenStates.Clone()
		winningStates, _ := CollectWinningStates(remainingStates)

		if player == 1 {
			classified := remainingStates.Clone()
			classified.Or(winningStates)
			winningStates = seenStates.Clone()
			winningStates.AndNot(classified)
		}

		if winningStates.Contains(initState.ID()) {
			t.Errorf("initial state should be a draw, but wins for player %d", player)
		}
		if winningStates.IsEmpty() {
			t.Errorf("player %d should win somewhere below the initial state", player)
		}
		if seenStates.GetCardinality() <= winningStates.GetCardinality() {
			t.Errorf("player %d wins %d of %d reachable states; some must remain draws",
				player, winningStates.GetCardinality(), seenStates.GetCardinality())
		}

		seenStatesRuns = append(seenStatesRuns, seenStates)
		winningStatesRuns = append(winningStatesRuns, winningStates)
	}

	if !bitmapsEqual(seenStatesRuns[0], seenStatesRuns[1]) {
		t.Error("reachable sets differ between runs")
	}
	if got := intersectionCount(winningStatesRuns[0], winningStatesRuns[1]); got != 0 {
		t.Errorf("winning sets overlap in %d states", got)
	}
	if seenStatesRuns[0].GetCardinality() <= winningStatesRuns[0].GetCardinality()+winningStatesRuns[1].GetCardinality() {
		t.Error("no draw states left after classification")
	}

	// Best play from the seed loops forever through its unique non-losing
	// successor.
	state := initState
	loopCount := 0
	for loopCount < 25 {
		var nonLosing []board.State
		for _, next := range state.NextStates() {
			if !winningStatesRuns[1-int(state.NextPlayer())].Contains(next.ID()) {
				nonLosing = append(nonLosing, next)
			}
		}

		for _, next := range nonLosing {
			if next.IsEnded() {
				t.Fatalf("non-losing successor %d is a finished game", next.ID())
			}
			for player, winningStates := range winningStatesRuns {
				if winningStates.Contains(next.ID()) {
					t.Fatalf("non-losing successor %d wins for player %d", next.ID(), player)
				}
			}
		}

		if state.ID() == initState.ID() {
			if len(nonLosing) != 1 {
				t.Fatalf("seed has %d non-losing successors, want 1", len(nonLosing))
			}
			if got := nonLosing[0].ID(); got != 5057794943 {
				t.Fatalf("seed's non-losing successor = %d, want 5057794943", got)
			}
			loopCount++
		}

		state = nonLosing[rand.Intn(len(nonLosing))]
	}
}

func TestReachableSeedOrder(t *testing.T) {
	seeds := []board.State{board.FromID(100382226046), board.FromID(85065666045)}
	reversed := []board.State{seeds[1], seeds[0]}

	forward := ReachableStates(seeds)
	backward := ReachableStates(reversed)

	if !bitmapsEqual(forward, backward) {
		t.Error("reachable set depends on the order of the seeds")
	}

	forwardWins, _ := CollectWinningStates(forward.Clone())
	backwardWins, _ := CollectWinningStates(backward.Clone())

	if !bitmapsEqual(forwardWins, backwardWins) {
		t.Error("winning set depends on the order of the seeds")
	}
}
