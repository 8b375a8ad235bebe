package solver

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hailam/squadro/internal/board"
	"github.com/hailam/squadro/internal/tablebase"
)

// Report summarises one completed generation run.
type Report struct {
	Seeds       []uint64
	Reachable   uint64
	Player0Wins uint64
	Player1Wins uint64
	Draws       uint64
	Passes      int
	Duration    time.Duration
}

// Generate produces the data files needed to play: one file with every
// explored state and one file of winning states per player, all written
// to the working directory. Generation refuses to start when any of the
// files already exists.
func Generate(initStates []board.State) (*Report, error) {
	if err := checkBeforeGenerate(); err != nil {
		return nil, err
	}

	log.Printf("[Generate] Generating states. This will take a while.")
	start := time.Now()

	seeds := make([]uint64, len(initStates))
	for i, s := range initStates {
		seeds[i] = s.ID()
	}

	remainingStates := ReachableStates(initStates)
	reachable := remainingStates.GetCardinality()

	if err := tablebase.WriteBitmap(tablebase.AllStatesPath, remainingStates); err != nil {
		return nil, err
	}
	log.Printf("[Generate] %d explored states saved.", reachable)

	player0Wins, passes := CollectWinningStates(remainingStates)

	if err := tablebase.WriteBitmap(tablebase.WinningStatesPath[0], player0Wins); err != nil {
		return nil, err
	}
	log.Printf("[Generate] %d winning states saved for player 0.", player0Wins.GetCardinality())

	// What survived classification is the draw set.
	draws := remainingStates.GetCardinality()

	// Re-exploring is cheaper than keeping a third full bitmap around:
	// player 1 wins wherever neither player 0 wins nor the game draws.
	remainingStates.Or(player0Wins)
	player1Wins := ReachableStates(initStates)
	player1Wins.AndNot(remainingStates)

	if err := tablebase.WriteBitmap(tablebase.WinningStatesPath[1], player1Wins); err != nil {
		return nil, err
	}
	log.Printf("[Generate] %d winning states saved for player 1.", player1Wins.GetCardinality())

	return &Report{
		Seeds:       seeds,
		Reachable:   reachable,
		Player0Wins: player0Wins.GetCardinality(),
		Player1Wins: player1Wins.GetCardinality(),
		Draws:       draws,
		Passes:      passes,
		Duration:    time.Since(start),
	}, nil
}

// checkBeforeGenerate fails when Generate would overwrite an existing
// data file.
func checkBeforeGenerate() error {
	paths := []string{
		tablebase.AllStatesPath,
		tablebase.WinningStatesPath[0],
		tablebase.WinningStatesPath[1],
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("the path %s already exists; delete it first to regenerate", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	return nil
}
