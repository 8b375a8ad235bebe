package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Storage keys
const (
	keyPlayStats        = "play_stats"
	generationKeyPrefix = "generation/"
)

// GenerationRecord describes one completed generation run.
type GenerationRecord struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	Seeds       []uint64      `json:"seeds"`
	Reachable   uint64        `json:"reachable"`
	Player0Wins uint64        `json:"player_0_wins"`
	Player1Wins uint64        `json:"player_1_wins"`
	Draws       uint64        `json:"draws"`
	Passes      int           `json:"passes"`
	Duration    time.Duration `json:"duration"`
}

// PlayStats accumulates the outcomes of finished games.
type PlayStats struct {
	GamesPlayed   int           `json:"games_played"`
	HumanWins     int           `json:"human_wins"`
	ComputerWins  int           `json:"computer_wins"`
	SelfPlayGames int           `json:"self_play_games"`
	TotalMoves    int           `json:"total_moves"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// GameResult describes one finished game.
type GameResult struct {
	HumanPlayer int // -1 when the computer played itself
	Winner      int
	Moves       int
	Duration    time.Duration
}

// Storage wraps BadgerDB for persistent records.
type Storage struct {
	db *badger.DB
}

// New opens the record store in dir. An empty dir selects the platform
// data directory.
func New(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGeneration stores a generation record. A missing ID or creation
// time is filled in.
func (s *Storage) RecordGeneration(rec *GenerationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(generationKeyPrefix+rec.ID), data)
	})
}

// Generations returns all stored generation records.
func (s *Storage) Generations() ([]GenerationRecord, error) {
	var records []GenerationRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(generationKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec GenerationRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return records, err
}

// LoadPlayStats loads the accumulated play statistics, returning empty
// statistics when none were recorded yet.
func (s *Storage) LoadPlayStats() (*PlayStats, error) {
	stats := &PlayStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPlayStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a finished game and updates the play statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadPlayStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalMoves += result.Moves
	stats.TotalPlayTime += result.Duration

	switch {
	case result.HumanPlayer < 0:
		stats.SelfPlayGames++
	case result.Winner == result.HumanPlayer:
		stats.HumanWins++
	default:
		stats.ComputerWins++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPlayStats), data)
	})
}

// HumanWinRate returns the human win rate as a percentage (0-100).
func (ps *PlayStats) HumanWinRate() float64 {
	games := ps.GamesPlayed - ps.SelfPlayGames
	if games == 0 {
		return 0
	}
	return float64(ps.HumanWins) / float64(games) * 100
}
