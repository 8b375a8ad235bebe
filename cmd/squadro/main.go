// Squadro solver - exhaustive game data generation and data-driven play
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/squadro/internal/board"
	"github.com/hailam/squadro/internal/play"
	"github.com/hailam/squadro/internal/solver"
	"github.com/hailam/squadro/internal/storage"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: squadro [flags] <command> [command flags]

Commands:
  generate    generate the game data files (memory-intensive and slow)
  play        play a game against the computer or watch self-play
  stats       show recorded generation runs and play statistics

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	switch flag.Arg(0) {
	case "generate":
		runGenerate()
	case "play":
		runPlay(flag.Args()[1:])
	case "stats":
		runStats()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}
}

func runGenerate() {
	report, err := solver.Generate([]board.State{
		board.NewGame(board.Top),
		board.NewGame(board.Left),
	})
	if err != nil {
		log.Fatal(err)
	}

	recordGeneration(report)
}

// recordGeneration keeps a record of the finished run. Failing to open
// the record store does not undo hours of generation work.
func recordGeneration(report *solver.Report) {
	store, err := storage.New("")
	if err != nil {
		log.Printf("Warning: generation record not stored: %v", err)
		return
	}
	defer store.Close()

	err = store.RecordGeneration(&storage.GenerationRecord{
		Seeds:       report.Seeds,
		Reachable:   report.Reachable,
		Player0Wins: report.Player0Wins,
		Player1Wins: report.Player1Wins,
		Draws:       report.Draws,
		Passes:      report.Passes,
		Duration:    report.Duration,
	})
	if err != nil {
		log.Printf("Warning: generation record not stored: %v", err)
	}
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	playerFlag := fs.String("player", "", "player controlled by human: top or left (default: computer self-play)")
	firstFlag := fs.String("first", "", "player who makes the first move: top or left (default: random)")
	idFlag := fs.Uint64("id", 0, "initial board state ID (the first player is part of the ID)")
	evalFlag := fs.Bool("eval", false, "show evaluation of position when computer plays")
	fs.Parse(args)

	idSet := false
	firstSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			idSet = true
		case "first":
			firstSet = true
		}
	})
	if idSet && firstSet {
		log.Fatal("-id already includes the first player and conflicts with -first")
	}

	humanPlayer := play.NoHuman
	if *playerFlag != "" {
		humanPlayer = int(parsePlayer(*playerFlag))
	}

	initID := *idFlag
	if !idSet {
		first := board.Player(rand.Intn(2))
		if firstSet {
			first = parsePlayer(*firstFlag)
		}
		initID = board.NewGame(first).ID()
	}

	start := time.Now()
	result, err := play.Run(initID, humanPlayer, *evalFlag)
	if err != nil {
		log.Fatal(err)
	}

	recordGame(storage.GameResult{
		HumanPlayer: humanPlayer,
		Winner:      int(result.Winner),
		Moves:       len(result.States) - 1,
		Duration:    time.Since(start),
	})
}

// recordGame updates the play statistics; a failure only costs the record.
func recordGame(result storage.GameResult) {
	store, err := storage.New("")
	if err != nil {
		log.Printf("Warning: game not recorded: %v", err)
		return
	}
	defer store.Close()

	if err := store.RecordGame(result); err != nil {
		log.Printf("Warning: game not recorded: %v", err)
	}
}

func runStats() {
	store, err := storage.New("")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	records, err := store.Generations()
	if err != nil {
		log.Fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("No generation runs recorded.")
	}
	for _, rec := range records {
		fmt.Printf("Generation %s (%s)\n", rec.ID, rec.CreatedAt.Format(time.RFC3339))
		fmt.Printf("  seeds: %v, passes: %d, duration: %s\n", rec.Seeds, rec.Passes, rec.Duration)
		fmt.Printf("  reachable: %d, player 0 wins: %d, player 1 wins: %d, draws: %d\n",
			rec.Reachable, rec.Player0Wins, rec.Player1Wins, rec.Draws)
	}

	stats, err := store.LoadPlayStats()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Games played: %d (self-play: %d)\n", stats.GamesPlayed, stats.SelfPlayGames)
	fmt.Printf("Human wins: %d (%.1f%%), computer wins: %d\n",
		stats.HumanWins, stats.HumanWinRate(), stats.ComputerWins)
}

func parsePlayer(name string) board.Player {
	switch name {
	case "top", "0":
		return board.Top
	case "left", "1":
		return board.Left
	default:
		log.Fatalf("invalid player %q (want top or left)", name)
		return board.Top
	}
}
