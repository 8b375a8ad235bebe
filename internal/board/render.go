package board

import (
	"fmt"
	"strings"
)

// boardTemplate is the empty board, 16 rows of 32 cells. The home cell of
// each piece carries its owner's dot pattern; the squares around the grid
// hold the goal markers.
var boardTemplate = [16]string{
	"                                ",
	"       ┏━━━┳━━━┳━━━┳━━━┳━━━┓    ",
	"     ■ ┃·  ┃∵  ┃:  ┃∵  ┃·  ┃ ■  ",
	"   ┏━━━╃───╀───╀───╀───╀───╄━━━┓",
	"   ┃∵  │   │   │   │   │   │  ·┃",
	"   ┣━━━┽───┼───┼───┼───┼───┾━━━┫",
	"   ┃·  │   │   │   │   │   │  ∵┃",
	"   ┣━━━┽───┼───┼───┼───┼───┾━━━┫",
	"   ┃:  │   │   │   │   │   │  :┃",
	"   ┣━━━┽───┼───┼───┼───┼───┾━━━┫",
	"   ┃·  │   │   │   │   │   │  ∵┃",
	"   ┣━━━┽───┼───┼───┼───┼───┾━━━┫",
	"   ┃∵  │   │   │   │   │   │  ·┃",
	"   ┗━━━╅───╁───╁───╁───╁───╆━━━┛",
	"     ■ ┃  ∵┃  ·┃  :┃  ·┃  ∵┃ ■  ",
	"       ┗━━━┻━━━┻━━━┻━━━┻━━━┛    ",
}

// String renders the state as a board suitable for a terminal, followed by
// the state ID. The grid lines of the player to move are drawn thick; both
// are thick once the game is over.
func (s State) String() string {
	nextPlayer := s.NextPlayer()
	ended := s.IsEnded()

	rows := make([][]rune, len(boardTemplate))
	for i, row := range boardTemplate {
		rows[i] = []rune(row)
	}

	// Pieces of the top player move down the columns and back up.
	for piece := 0; piece < 5; piece++ {
		position := s.PiecePosition(Top, piece)

		if position < 6 {
			rows[(position+1)*2][(piece+1)*4+5] = '↓'
		} else {
			rows[(13-position)*2][(piece+1)*4+5] = '↑'
		}

		// Show the number of each movable piece above its column.
		if !ended && nextPlayer == Top && position < 12 {
			rows[0][(piece+1)*4+5] = rune('0' + piece)
		}
	}

	// Pieces of the left player move along the rows and back.
	for piece := 0; piece < 5; piece++ {
		position := s.PiecePosition(Left, piece)

		if position < 6 {
			rows[(piece+2)*2][position*4+5] = '→'
		} else {
			rows[(piece+2)*2][(12-position)*4+5] = '←'
		}

		// Show the number of each movable piece left of its row.
		if !ended && nextPlayer == Left && position < 12 {
			rows[(piece+2)*2][1] = rune('0' + piece)
		}
	}

	var b strings.Builder
	for _, row := range rows {
		if ended || nextPlayer == Top {
			// Thicken the vertical grid lines.
			for i, c := range row {
				switch c {
				case '│':
					row[i] = '┃'
				case '╃', '┽', '╅':
					row[i] = '╉'
				case '╀', '┼', '╁':
					row[i] = '╂'
				case '╄', '┾', '╆':
					row[i] = '╊'
				}
			}
		}

		if ended || nextPlayer == Left {
			// Thicken the horizontal grid lines.
			for i, c := range row {
				switch c {
				case '─':
					row[i] = '━'
				case '╃', '╀', '╄':
					row[i] = '╇'
				case '┽', '┼', '┾':
					row[i] = '┿'
				case '╅', '╁', '╆':
					row[i] = '╈'
				case '╉', '╂', '╊':
					row[i] = '╋'
				}
			}
		}

		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "(ID : %d)", s.id)

	return b.String()
}
