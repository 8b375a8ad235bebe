// Package board models Squadro positions as 64-bit state IDs and
// implements the move rules on them.
package board

// Player identifies one of the two sides. Top moves its pieces down the
// board and back up, Left moves its pieces rightward and back.
type Player uint8

const (
	Top  Player = 0
	Left Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return p ^ 1
}

// String returns the player name.
func (p Player) String() string {
	switch p {
	case Top:
		return "Top"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// regularMoves gives the number of squares a piece advances when moved,
// indexed by [player][piece][piece's position].
var regularMoves = [2][5][13]int{
	{
		{1, 1, 1, 1, 1, 1, 3, 0, 3, 3, 2, 1, 0},
		{3, 0, 3, 3, 2, 1, 1, 1, 1, 1, 1, 1, 0},
		{2, 0, 2, 2, 2, 1, 2, 0, 2, 2, 2, 1, 0},
		{3, 0, 3, 3, 2, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 3, 0, 3, 3, 2, 1, 0},
	},
	{
		{3, 0, 3, 3, 2, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 3, 0, 3, 3, 2, 1, 0},
		{2, 0, 2, 2, 2, 1, 2, 0, 2, 2, 2, 1, 0},
		{1, 1, 1, 1, 1, 1, 3, 0, 3, 3, 2, 1, 0},
		{3, 0, 3, 3, 2, 1, 1, 1, 1, 1, 1, 1, 0},
	},
}

// firstMoves is the launch strength of each piece, regularMoves[p][i][0].
var firstMoves = [2][5]int{{1, 3, 2, 3, 1}, {3, 1, 2, 1, 3}}

// The ID is a mixed-radix number built from the positions of the pieces,
// alternating between the two players, with the number of the next player
// in the lowest digit.
var (
	idPartSize   = [11]uint64{12, 12, 12, 12, 11, 11, 12, 12, 12, 12, 2}
	idPartFactor = [11]uint64{8671297536, 722608128, 60217344, 5018112, 456192, 41472, 3456, 288, 24, 2, 1}
)

// State is a full board position, including the next player and the
// position of every piece, packed into a 64-bit ID.
type State struct {
	id uint64
}

// NewGame returns the starting position with the given first player.
func NewGame(first Player) State {
	var s State
	s.setNextPlayer(first)
	return s
}

// FromID returns the state represented by id.
func FromID(id uint64) State {
	return State{id: id}
}

// ID returns the ID representing this state.
func (s State) ID() uint64 {
	return s.id
}

// idPart returns the ID digit at the given index.
func (s State) idPart(index int) uint64 {
	return (s.id / idPartFactor[index]) % idPartSize[index]
}

// setIDPart updates the ID digit at the given index.
func (s *State) setIDPart(index int, value uint64) {
	factor := idPartFactor[index]
	s.id = s.id - factor*s.idPart(index) + factor*value
}

// NextPlayer returns the player who moves next.
func (s State) NextPlayer() Player {
	// Shortcut for idPart(10).
	return Player(s.id & 1)
}

func (s *State) setNextPlayer(p Player) {
	s.setIDPart(10, uint64(p))
}

func (s *State) switchNextPlayer() {
	// Shortcut for setNextPlayer(s.NextPlayer().Other()).
	s.id ^= 1
}

// PiecePosition returns the position of piece belonging to player,
// from 0 (not yet launched) through 6 (opposite side) to 12 (final).
func (s State) PiecePosition(player Player, piece int) int {
	position := int(s.idPart(piece*2 + int(player)))

	// The ID digit only stores reachable positions. The actual position
	// is recovered by adding 1 for each unreachable position below it.
	if position > 0 {
		firstMove := firstMoves[player][piece]

		if firstMove != 1 {
			position++
		}

		if position > 6 && firstMove != 3 {
			position++
		}
	}

	return position
}

// setPiecePosition places piece belonging to player on the given position.
func (s *State) setPiecePosition(player Player, piece, position int) {
	// Inverse of the decompression in PiecePosition: subtract 1 for each
	// unreachable position below the actual one.
	if position > 1 {
		firstMove := firstMoves[player][piece]

		if position > 7 && firstMove != 3 {
			position--
		}

		if firstMove != 1 {
			position--
		}
	}

	s.setIDPart(piece*2+int(player), uint64(position))
}

// IsEnded reports whether the game is over. The player who just moved has
// won once at most one of their pieces can still be moved.
func (s State) IsEnded() bool {
	lastPlayer := s.NextPlayer().Other()
	movablePieces := 0

	for piece := 0; piece < 5; piece++ {
		if s.PiecePosition(lastPlayer, piece) < 12 {
			movablePieces++
			if movablePieces > 1 {
				// The game continues as long as more than one movable
				// piece remains.
				return false
			}
		}
	}

	return true
}
