package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed")

type gameController interface {
	NewGame()
	MakeTurn(column, row int) (tictactoe.Result, error)
	Result() tictactoe.Result
	IsFinished() bool
	CurrentPlayer() string
	Board() *entity.Board
}

type Options struct {
	// Color enables terminal styling of banners and messages.
	Color bool
	// Replay asks to play again after every game.
	Replay bool
}

// Server runs interactive games over a line-oriented reader and writer.
type Server struct {
	logger     *slog.Logger
	controller gameController

	in     io.Reader
	out    *stickyWriter
	styles styles
	replay bool

	lines   chan string
	readErr error
	done    chan struct{}
}

func New(logger *slog.Logger, controller gameController, in io.Reader, out io.Writer, opts Options) *Server {
	return &Server{
		logger:     logger.With("component", "console"),
		controller: controller,

		in:     in,
		out:    &stickyWriter{w: out},
		styles: newStyles(opts.Color),
		replay: opts.Replay,
	}
}

// Start - plays games until the player stops, input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	that.startReading()
	defer close(that.done)

	var scoreboard tictactoe.Scoreboard

	for {
		result, err := that.playGame(ctx)
		if err != nil {
			return that.stop(&scoreboard, err)
		}

		scoreboard.Record(result)
		log.Info("game over", "status", result.Status, "winner", result.Winner, "score", scoreboard.String())

		if !that.replay {
			break
		}

		again, err := that.askReplay(ctx)
		if err != nil {
			return that.stop(&scoreboard, err)
		}

		if !again {
			break
		}
	}

	that.farewell(&scoreboard)

	return that.out.err
}

// stop says goodbye when input ran out and passes err on.
func (that *Server) stop(scoreboard *tictactoe.Scoreboard, err error) error {
	if errors.Is(err, ErrInputClosed) {
		that.out.println("")
		that.farewell(scoreboard)
	}

	if that.out.err != nil {
		return fmt.Errorf("failed to write output: %w", that.out.err)
	}

	return err
}

// startReading - feeds input lines to the loop from a separate goroutine until done is closed.
func (that *Server) startReading() {
	that.lines = make(chan string)
	that.done = make(chan struct{})

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case that.lines <- scanner.Text():
			case <-that.done:
				return
			}
		}

		that.readErr = scanner.Err()
	}()
}
