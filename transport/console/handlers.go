package console

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `commands:
  move <row> <col>   place X (rows and columns are 0..2); "<row> <col>" works too
  new [easy|hard]    start a new game, optionally switching difficulty
  board              show the board
  help               show this help
  quit               leave
`

func (that *Server) handleMove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: move <row> <col>", apperror.ErrInvalidMove)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidMove, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidMove, args[1])
	}

	if err = that.uGame.MakeTurn(that.game, entity.Move{Row: row, Col: col}); err != nil {
		return err
	}

	that.printGame()

	return nil
}

func (that *Server) handleNewGame(args []string) error {
	if len(args) > 0 {
		difficulty, err := entity.ParseDifficulty(args[0])
		if err != nil {
			return err
		}

		that.difficulty = difficulty
	}

	that.game = that.uGame.NewGame(that.difficulty)

	that.printf("new %s game, you play X\n", that.difficulty)
	that.printGame()

	return nil
}

func (that *Server) handleBoard(_ []string) error {
	that.printGame()
	return nil
}

func (that *Server) handleHelp(_ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ []string) error {
	that.printf("bye\n")
	return errQuit
}

func (that *Server) printGame() {
	that.printf("%s\n", that.game.Board.String())

	result := that.game.Result()
	if result.IsInProgress() {
		that.printf("%s to move\n", that.game.Turn())
		return
	}

	that.printf("game over: %s, type 'new' to play again\n", result)
}
