package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func mustParseBoard(t *testing.T, layout string) Board {
	t.Helper()

	board, err := ParseBoard(layout)
	require.NoError(t, err)

	return board
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Empty board lists every cell in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: all nine cells come back row by row
		expected := []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, expected, moves)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with a few marks
		board := mustParseBoard(t, "X.O/.X./O..")

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: only the empty cells remain, still in row-major order
		expected := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
		require.Equal(t, expected, moves)
	})

	t.Run("Full board has no legal moves", func(t *testing.T) {
		// Given: a full board
		board := mustParseBoard(t, "XOX/XOO/OXX")

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: the list is empty
		assert.Empty(t, moves)
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X plays the center
		err := board.Apply(Move{Row: 1, Col: 1}, PlayerX)

		// Then: the center holds X
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[1][1])
	})

	t.Run("Rejects an occupied cell and leaves the board unchanged", func(t *testing.T) {
		// Given: a board where X holds the center
		board := mustParseBoard(t, ".../.X./...")
		before := board

		// When: O tries to take the center
		err := board.Apply(Move{Row: 1, Col: 1}, PlayerO)

		// Then: ErrInvalidMove is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Contains(t, err.Error(), "already occupied")
		assert.Equal(t, before, board)
	})

	t.Run("Rejects cells out of range", func(t *testing.T) {
		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			// Given: an empty board
			board := NewBoard()

			// When: a move outside the grid is applied
			err := board.Apply(move, PlayerX)

			// Then: ErrInvalidMove is returned
			require.ErrorIs(t, err, apperror.ErrInvalidMove, "move %s", move)
			assert.Equal(t, NewBoard(), board)
		}
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: an empty mark is applied
		err := board.Apply(Move{Row: 0, Col: 0}, EmptyCell)

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestBoard_Undo(t *testing.T) {
	t.Run("Apply then Undo restores the board exactly", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := mustParseBoard(t, "XO./.X./..O")
		before := board

		for _, move := range before.LegalMoves() {
			// When: a move is applied and undone
			require.NoError(t, board.Apply(move, PlayerX))
			board.Undo(move)

			// Then: the board equals its previous state
			require.Equal(t, before, board)
		}
	})

	t.Run("Out of range undo is ignored", func(t *testing.T) {
		// Given: a board with one mark
		board := mustParseBoard(t, "X../.../...")
		before := board

		// When: undoing a cell outside the grid
		board.Undo(Move{Row: 5, Col: 5})

		// Then: the board is unchanged
		assert.Equal(t, before, board)
	})
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		board := mustParseBoard(t, "OO./XXX/...")
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerX}, board.Evaluate())
	})

	t.Run("Column win", func(t *testing.T) {
		board := mustParseBoard(t, "XO./XO./.O.")
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerO}, board.Evaluate())
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		board := mustParseBoard(t, "XO./OX./..X")
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerX}, board.Evaluate())
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		board := mustParseBoard(t, "XXO/XO./O..")
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerO}, board.Evaluate())
	})

	t.Run("Draw", func(t *testing.T) {
		board := mustParseBoard(t, "XOX/XOO/OXX")
		assert.Equal(t, GameResult{Outcome: OutcomeDraw}, board.Evaluate())
	})

	t.Run("In progress", func(t *testing.T) {
		board := mustParseBoard(t, "XO./.X./..O")
		result := board.Evaluate()
		assert.Equal(t, GameResult{Outcome: OutcomeInProgress}, result)
		assert.True(t, result.IsInProgress())
	})

	t.Run("Full board with a winning line is a win, not a draw", func(t *testing.T) {
		board := mustParseBoard(t, "XXX/OOX/XOO")
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerX}, board.Evaluate())
	})

	t.Run("Scan order decides between two complete lines", func(t *testing.T) {
		// Given: an unreachable board where O owns row 0 and X owns row 2
		board := mustParseBoard(t, "OOO/.../XXX")

		// When: evaluating
		result := board.Evaluate()

		// Then: row 0 is found first
		assert.Equal(t, PlayerO, result.Winner)
	})

	t.Run("X completes the top row", func(t *testing.T) {
		// Given: X at (0,0) and (0,1), O at (1,1)
		board := NewBoard()
		require.NoError(t, board.Apply(Move{0, 0}, PlayerX))
		require.NoError(t, board.Apply(Move{1, 1}, PlayerO))
		require.NoError(t, board.Apply(Move{0, 1}, PlayerX))
		require.True(t, board.Evaluate().IsInProgress())

		// When: X plays (0,2)
		require.NoError(t, board.Apply(Move{0, 2}, PlayerX))

		// Then: X wins
		assert.Equal(t, GameResult{Outcome: OutcomeWin, Winner: PlayerX}, board.Evaluate())
	})
}

func TestBoard_ReachablePositions(t *testing.T) {
	// Given: every position reachable from an empty board with X moving first
	seen := make(map[Board]struct{})

	var walk func(board Board)
	walk = func(board Board) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		// Then: at most one player owns a complete line
		winners := make(map[Mark]struct{})
		for _, combo := range WinCombos {
			a := board[combo[0].Row][combo[0].Col]
			if a != EmptyCell && a == board[combo[1].Row][combo[1].Col] && a == board[combo[2].Row][combo[2].Col] {
				winners[a] = struct{}{}
			}
		}
		require.LessOrEqual(t, len(winners), 1, "board:\n%s", board.String())

		if !board.Evaluate().IsInProgress() {
			return
		}

		turn := board.Turn()
		for _, move := range board.LegalMoves() {
			next := board
			require.NoError(t, next.Apply(move, turn))
			walk(next)
		}
	}

	walk(NewBoard())

	assert.Len(t, seen, 5478)
}

func TestBoard_Turn(t *testing.T) {
	t.Run("X moves first", func(t *testing.T) {
		board := NewBoard()
		assert.Equal(t, PlayerX, board.Turn())
	})

	t.Run("O moves after X", func(t *testing.T) {
		board := mustParseBoard(t, ".../.X./...")
		assert.Equal(t, PlayerO, board.Turn())
	})

	t.Run("X moves when counts are equal", func(t *testing.T) {
		board := mustParseBoard(t, "O../.X./...")
		assert.Equal(t, PlayerX, board.Turn())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Accepts separators and lower case", func(t *testing.T) {
		board, err := ParseBoard("x|o|_\n.|X|-\n_|_|o")
		require.NoError(t, err)

		expected := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		_, err := ParseBoard("XO?/.../...")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects too few cells", func(t *testing.T) {
		_, err := ParseBoard("XO./...")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects too many cells", func(t *testing.T) {
		_, err := ParseBoard("XO./.../.../.")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestBoard_String(t *testing.T) {
	board := mustParseBoard(t, "X../.O./...")

	assert.Equal(t, "X|.|.\n-+-+-\n.|O|.\n-+-+-\n.|.|.", board.String())
}

func TestGameResult_String(t *testing.T) {
	assert.Equal(t, "X wins", GameResult{Outcome: OutcomeWin, Winner: PlayerX}.String())
	assert.Equal(t, "draw", GameResult{Outcome: OutcomeDraw}.String())
	assert.Equal(t, "in progress", GameResult{Outcome: OutcomeInProgress}.String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}
