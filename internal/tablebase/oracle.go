package tablebase

import "github.com/hailam/squadro/internal/board"

// Oracle answers win and validity queries against the three generated
// data files.
type Oracle struct {
	all  *CachedReader
	wins [2]*CachedReader
}

// NewOracle creates an oracle over the data files in the working
// directory.
func NewOracle() *Oracle {
	return &Oracle{
		all: NewCachedReader(AllStatesPath),
		wins: [2]*CachedReader{
			NewCachedReader(WinningStatesPath[0]),
			NewCachedReader(WinningStatesPath[1]),
		},
	}
}

// Known reports whether stateID was reached during generation. IDs that
// are not known do not represent reachable positions.
func (o *Oracle) Known(stateID uint64) (bool, error) {
	return o.all.ReadBit(stateID)
}

// Winning reports whether player has a forced win from stateID.
func (o *Oracle) Winning(player board.Player, stateID uint64) (bool, error) {
	return o.wins[player].ReadBit(stateID)
}
