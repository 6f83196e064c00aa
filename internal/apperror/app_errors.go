package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMoves      = errors.New("no legal moves")
	ErrInvalidState      = errors.New("board is not in progress")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownCommand    = errors.New("unknown command")
)
