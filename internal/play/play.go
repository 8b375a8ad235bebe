// Package play drives games of Squadro: human against computer or
// computer self-play, with moves chosen from the generated data files.
package play

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/hailam/squadro/internal/board"
	"github.com/hailam/squadro/internal/tablebase"
)

// Eval is the computer's evaluation of the state it just produced.
type Eval int

const (
	EvalNone Eval = iota
	EvalWin
	EvalDraw // Endless game.
	EvalLoss
)

// String returns the evaluation name.
func (e Eval) String() string {
	switch e {
	case EvalWin:
		return "Win"
	case EvalDraw:
		return "Draw"
	case EvalLoss:
		return "Loss"
	default:
		return "None"
	}
}

// Result holds the trace of a finished game and its winner.
type Result struct {
	States []board.State
	Winner board.Player
}

// nextStateFunc produces the next state of a running game. ok is false
// when the player resigns instead of moving.
type nextStateFunc func(board.State) (next board.State, eval Eval, ok bool, err error)

// NoHuman selects computer self-play in Run.
const NoHuman = -1

// Run plays a game starting from the state with ID initID, which must be
// a state known to the generated data files. humanPlayer selects the side
// controlled from stdin, or NoHuman for computer self-play. When showEval
// is true, the computer's evaluation is printed after each of its moves.
func Run(initID uint64, humanPlayer int, showEval bool) (*Result, error) {
	oracle := tablebase.NewOracle()

	// An ID outside the explored universe is not a board state at all.
	known, err := oracle.Known(initID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, fmt.Errorf("invalid board state ID : %d", initID)
	}

	in := bufio.NewReader(os.Stdin)

	next := func(state board.State) (board.State, Eval, bool, error) {
		if humanPlayer >= 0 && state.NextPlayer() == board.Player(humanPlayer) {
			return nextStateFromInput(state, in)
		}
		return bestNextState(state, oracle)
	}

	result, err := runGame(board.FromID(initID), next, showEval)
	if err != nil {
		return nil, err
	}

	if humanPlayer >= 0 {
		if int(result.Winner) == humanPlayer {
			fmt.Println("\nHuman wins!")
		} else {
			fmt.Println("\nComputer wins!")
		}
	}

	return result, nil
}

// runGame prints the states produced by next until the game ends or a
// player resigns. It returns the printed states and the winner.
func runGame(initState board.State, next nextStateFunc, showEval bool) (*Result, error) {
	state := initState
	allStates := []board.State{state}

	fmt.Println(state)

	for !state.IsEnded() {
		nextState, eval, ok, err := next(state)
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Println("\n(Player resigned)")
			break
		}
		state = nextState

		allStates = append(allStates, state)

		fmt.Printf("\n%v\n", state)

		if showEval && eval != EvalNone {
			fmt.Printf("(Last player's evaluation : %v)\n", eval)
		}
	}

	return &Result{States: allStates, Winner: state.NextPlayer().Other()}, nil
}

// nextStateFromInput asks for a piece number on in until it names a legal
// move. End of input resigns.
func nextStateFromInput(state board.State, in *bufio.Reader) (board.State, Eval, bool, error) {
	for {
		fmt.Print("\nYour move : ")

		line, err := in.ReadString('\n')
		if len(line) == 0 && err != nil {
			// End of user input.
			return board.State{}, EvalNone, false, nil
		}

		if piece, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil {
			if next, ok := state.NextState(piece); ok {
				return next, EvalNone, true, nil
			}
		}

		var available []string
		for piece := 0; piece < 5; piece++ {
			if _, ok := state.NextState(piece); ok {
				available = append(available, strconv.Itoa(piece))
			}
		}
		fmt.Printf("Invalid move! Available piece(s) : %s", strings.Join(available, ", "))
	}
}

// bestNextState returns a successor giving the best final outcome for the
// player to move, breaking ties at random.
func bestNextState(state board.State, oracle *tablebase.Oracle) (board.State, Eval, bool, error) {
	nextStates := state.NextStates()
	if len(nextStates) == 0 {
		return board.State{}, EvalNone, false, fmt.Errorf("no move available from state %d", state.ID())
	}
	rand.Shuffle(len(nextStates), func(i, j int) {
		nextStates[i], nextStates[j] = nextStates[j], nextStates[i]
	})

	player := state.NextPlayer()

	// A winning state, if there is one.
	for _, next := range nextStates {
		winning, err := oracle.Winning(player, next.ID())
		if err != nil {
			return board.State{}, EvalNone, false, err
		}
		if winning {
			return next, EvalWin, true, nil
		}
	}

	// Otherwise a state that does not hand the opponent the win.
	for _, next := range nextStates {
		losing, err := oracle.Winning(player.Other(), next.ID())
		if err != nil {
			return board.State{}, EvalNone, false, err
		}
		if !losing {
			return next, EvalDraw, true, nil
		}
	}

	// Every move loses.
	return nextStates[0], EvalLoss, true, nil
}
