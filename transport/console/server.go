package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(difficulty entity.Difficulty) *entity.Game
	MakeTurn(game *entity.Game, move entity.Move) error
}

// Server drives games over a line-based text stream: one command per line.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	out    io.Writer

	difficulty entity.Difficulty
	game       *entity.Game

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, uGame uGame, difficulty entity.Difficulty, out io.Writer) *Server {
	server := &Server{
		logger:     logger.With("component", "console"),
		uGame:      uGame,
		out:        out,
		difficulty: difficulty,

		handlers: make(map[string]func([]string) error),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["new"] = server.handleNewGame
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - starts a game and processes commands until quit, end of input or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if err := that.handleNewGame(nil); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for {
		that.printf("> ")

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case line, ok := <-lines:
			if !ok {
				// the reader sends its error before closing lines, unless ctx stopped it
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				log.Info("end of input")
				return nil
			}

			if err := that.handleLine(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Debug("error processing command", "command", line, "error", err)
				that.printf("error: %v\n", err)
			}
		}
	}
}

// handleLine - routes one input line to its handler. A bare "<row> <col>" is a move.
func (that *Server) handleLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	action := strings.ToLower(fields[0])
	args := fields[1:]

	if isNumber(action) {
		action, args = "move", fields
	}

	handler, ok := that.handlers[action]
	if !ok {
		return fmt.Errorf("%w: %q, type 'help'", apperror.ErrUnknownCommand, fields[0])
	}

	return handler(args)
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func isNumber(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
