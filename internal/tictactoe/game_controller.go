package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Result is a snapshot of the board after a turn.
type Result struct {
	Status string
	Winner string
	Filled int
}

func (that Result) IsFinished() bool {
	return that.Status == entity.StatusWon || that.Status == entity.StatusDrawn
}

// GameController drives one board through a game and refuses moves once it is over.
type GameController struct {
	logger *slog.Logger
	board  *entity.Board
}

func NewGameController(logger *slog.Logger, board *entity.Board) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		board:  board,
	}
}

// NewGame - clears the board for the next game.
func (that *GameController) NewGame() {
	that.board.Reset()
	that.logger.Debug("new game started")
}

// MakeTurn - plays the current player's mark at (column, row).
func (that *GameController) MakeTurn(column, row int) (Result, error) {
	log := that.logger.With("method", "MakeTurn", "column", column, "row", row)

	if that.board.IsFinished() {
		return that.Result(), apperror.ErrGameFinished
	}

	player := that.board.CurrentPlayer()
	if err := that.board.ApplyMove(column, row); err != nil {
		log.Debug("move rejected", "player", player, "error", err)
		return that.Result(), fmt.Errorf("invalid turn: %w", err)
	}

	result := that.Result()
	log.Debug("move applied", "player", player, "status", result.Status)

	if result.IsFinished() {
		log.Info("game finished", "status", result.Status, "winner", result.Winner)
	}

	return result, nil
}

func (that *GameController) Result() Result {
	return Result{
		Status: that.board.Status(),
		Winner: that.board.Winner(),
		Filled: that.board.Filled(),
	}
}

func (that *GameController) IsFinished() bool {
	return that.board.IsFinished()
}

func (that *GameController) CurrentPlayer() string {
	return that.board.CurrentPlayer()
}

func (that *GameController) Board() *entity.Board {
	return that.board
}
