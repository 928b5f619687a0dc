package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	welcomeMessage  = "Welcome to the Tic Tac Toe game!"
	turnMessage     = "It's %s's turn."
	columnPrompt    = "What column would you like to use? "
	rowPrompt       = "What row would you like to use? "
	winnerMessage   = "%s is the winner!"
	drawMessage     = "It's a draw!"
	replayPrompt    = "Play again? (y/n) "
	replayRetry     = "Please answer y or n."
	scoreMessage    = "Score: %s"
	farewellMessage = "Thanks for playing!"
)

// playGame - runs one game from an empty board to a win or a draw.
func (that *Server) playGame(ctx context.Context) (tictactoe.Result, error) {
	that.controller.NewGame()
	that.out.println(that.styles.title(welcomeMessage))

	for !that.controller.IsFinished() {
		that.out.printf(turnMessage+"\n", that.controller.CurrentPlayer())

		column, err := that.readInt(ctx, columnPrompt)
		if err != nil {
			return tictactoe.Result{}, err
		}

		row, err := that.readInt(ctx, rowPrompt)
		if err != nil {
			return tictactoe.Result{}, err
		}

		if err = that.handleTurn(column, row); err != nil {
			return tictactoe.Result{}, err
		}

		if that.out.err != nil {
			return tictactoe.Result{}, fmt.Errorf("failed to write output: %w", that.out.err)
		}
	}

	result := that.controller.Result()
	that.announce(result)

	return result, nil
}

// handleTurn - applies one move and shows the board, invalid moves are reported and skipped.
func (that *Server) handleTurn(column, row int) error {
	log := that.logger.With("method", "handleTurn")

	result, err := that.controller.MakeTurn(column, row)

	var invalid *entity.InvalidMoveError
	switch {
	case errors.As(err, &invalid):
		log.Debug("invalid move", "column", invalid.Column, "row", invalid.Row, "error", err)
		that.out.println(that.styles.err(invalid.Error()))
		return nil
	case err != nil:
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn made", "column", column, "row", row, "filled", result.Filled)
	that.out.print(that.controller.Board().Render())

	return nil
}

func (that *Server) announce(result tictactoe.Result) {
	if result.Winner != entity.EmptyCell {
		that.out.println(that.styles.outcome(fmt.Sprintf(winnerMessage, result.Winner)))
		return
	}

	that.out.println(that.styles.outcome(drawMessage))
}

func (that *Server) askReplay(ctx context.Context) (bool, error) {
	for {
		that.out.print(replayPrompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			that.out.println(that.styles.err(replayRetry))
		}
	}
}

func (that *Server) farewell(scoreboard *tictactoe.Scoreboard) {
	if that.replay && scoreboard.Played() > 0 {
		that.out.printf(scoreMessage+"\n", scoreboard.String())
	}

	that.out.println(farewellMessage)
}
