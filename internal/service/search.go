package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Scores are exact game values from O's point of view. infinity bounds them for alpha-beta.
const (
	scoreLoss = -1
	scoreDraw = 0
	scoreWin  = 1

	infinity = scoreWin + 1
)

const (
	maximizer = entity.PlayerO
	minimizer = entity.PlayerX
)

// RandomMove picks one of the empty cells uniformly. Callers check the board is in progress first.
func RandomMove(board entity.Board) (entity.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	return moves[rand.IntN(len(moves))], nil //nolint: gosec // it's ok
}

// BestMove returns the optimal move for O with X replying optimally.
// Among equally scored moves the first one in row-major order wins.
func BestMove(board entity.Board) (entity.Move, error) {
	if result := board.Evaluate(); !result.IsInProgress() {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrInvalidState, result)
	}

	var (
		best      entity.Move
		bestScore = -infinity
	)

	// board is a copy owned by this call, so apply/undo never leaks to the caller.
	for _, move := range board.LegalMoves() {
		if err := board.Apply(move, maximizer); err != nil {
			return entity.Move{}, fmt.Errorf("failed to apply %s: %w", move, err)
		}

		score := minimax(&board, false, -infinity, infinity)
		board.Undo(move)

		if score > bestScore {
			bestScore = score
			best = move
		}
	}

	return best, nil
}

func minimax(board *entity.Board, maximizing bool, alpha, beta int) int {
	result := board.Evaluate()
	switch result.Outcome {
	case entity.OutcomeWin:
		if result.Winner == maximizer {
			return scoreWin
		}
		return scoreLoss
	case entity.OutcomeDraw:
		return scoreDraw
	case entity.OutcomeInProgress:
	}

	if maximizing {
		best := -infinity
		for _, move := range board.LegalMoves() {
			board[move.Row][move.Col] = maximizer
			score := minimax(board, false, alpha, beta)
			board.Undo(move)

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := infinity
	for _, move := range board.LegalMoves() {
		board[move.Row][move.Col] = minimizer
		score := minimax(board, true, alpha, beta)
		board.Undo(move)

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
