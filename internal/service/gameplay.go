package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GamePlayService interface {
	NewGame(difficulty entity.Difficulty) *entity.Game
	MakeTurn(game *entity.Game, move entity.Move) error
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

func (that *gamePlayService) NewGame(difficulty entity.Difficulty) *entity.Game {
	game := entity.NewGame(uuid.NewString(), difficulty)

	that.logger.Info("new game", "game_id", game.ID, "difficulty", difficulty)

	return game
}

// MakeTurn plays the human move and, while the game is still running, the computer's reply.
func (that *gamePlayService) MakeTurn(game *entity.Game, move entity.Move) error {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if err := game.MakeTurn(entity.PlayerX, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("player made turn", "mark", entity.PlayerX, "move", move.String())

	if game.IsFinished() {
		log.Info("game finished", "result", game.Result().String())
		return nil
	}

	botMove, err := that.botService.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("player made turn", "mark", entity.PlayerO, "move", botMove.String())

	if game.IsFinished() {
		log.Info("game finished", "result", game.Result().String())
	}

	return nil
}
